package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inarasite/internal/kv"
	"github.com/inarasite/internal/service"
)

// ShowTestimonialsPage renders the public testimonial wall together with the
// submission form. Before anything has been persisted the wall shows the
// fixed sample records.
func (a *API) ShowTestimonialsPage(c *gin.Context) {
	items, err := a.testimonials.List(service.SeedSamples)
	if err != nil {
		c.Error(err)
		items = nil
	}

	a.renderHTML(c, http.StatusOK, "testimonials.html", gin.H{
		"testimonials":  items,
		"avatarOptions": service.AvatarOptions,
		"form":          service.TestimonialInput{Rating: 5, Avatar: service.DefaultAvatar},
	})
}

// TestimonialWall returns just the wall partial. Long-lived pages re-fetch it
// when the change event stream reports the collection key changed.
func (a *API) TestimonialWall(c *gin.Context) {
	items, err := a.testimonials.List(service.SeedSamples)
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}

	c.HTML(http.StatusOK, "testimonial_cards.html", gin.H{
		"testimonials": items,
	})
}

// SubmitTestimonial handles the public submission form. Submissions are never
// featured and every validation error is surfaced, not just the first.
func (a *API) SubmitTestimonial(c *gin.Context) {
	input := service.TestimonialInput{
		Name:    c.PostForm("name"),
		Company: c.PostForm("company"),
		Role:    c.PostForm("role"),
		Content: c.PostForm("content"),
		Rating:  parsePositiveInt(c.DefaultPostForm("rating", "5"), 5),
		Avatar:  c.PostForm("avatar"),
	}

	created, err := a.testimonials.Create(writerContext(c), input, service.SourcePublic)
	if err != nil {
		var validation *service.ValidationError
		switch {
		case errors.As(err, &validation):
			a.renderHTML(c, http.StatusBadRequest, "testimonials.html", gin.H{
				"testimonials":  a.wallOrNil(),
				"avatarOptions": service.AvatarOptions,
				"form":          input,
				"errors":        fieldErrorMap(validation.Fields),
			})
		case errors.Is(err, kv.ErrPersistenceUnavailable):
			a.renderHTML(c, http.StatusServiceUnavailable, "testimonials.html", gin.H{
				"testimonials":  a.wallOrNil(),
				"avatarOptions": service.AvatarOptions,
				"form":          input,
				"error":         "There was an error saving your testimonial. Please try again.",
			})
		default:
			a.renderHTML(c, http.StatusInternalServerError, "testimonials.html", gin.H{
				"testimonials":  a.wallOrNil(),
				"avatarOptions": service.AvatarOptions,
				"form":          input,
				"error":         "There was an error saving your testimonial. Please try again.",
			})
		}
		return
	}

	// The submitting page receives the fresh collection directly; other open
	// pages catch up through the change event stream.
	items, listErr := a.testimonials.List(service.SeedSamples)
	if listErr != nil {
		items = []service.Testimonial{*created}
	}

	a.renderHTML(c, http.StatusOK, "testimonials.html", gin.H{
		"testimonials":  items,
		"avatarOptions": service.AvatarOptions,
		"form":          service.TestimonialInput{Rating: 5, Avatar: service.DefaultAvatar},
		"submitted":     true,
	})
}

func (a *API) wallOrNil() []service.Testimonial {
	items, err := a.testimonials.List(service.SeedSamples)
	if err != nil {
		return nil
	}
	return items
}

// ShowTestimonialAdmin renders the admin testimonial manager. Unlike the
// public wall it starts from an empty collection: sample records are a
// display-only fallback and never appear here.
func (a *API) ShowTestimonialAdmin(c *gin.Context) {
	items, err := a.testimonials.List(service.SeedNone)
	if err != nil {
		items = nil
	}

	a.renderHTML(c, http.StatusOK, "admin_testimonials.html", gin.H{
		"title":         "Manage Testimonials",
		"testimonials":  items,
		"avatarOptions": service.AvatarOptions,
	})
}

// GetTestimonials returns the persisted collection as JSON (admin API).
func (a *API) GetTestimonials(c *gin.Context) {
	items, err := a.testimonials.List(service.SeedNone)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

type testimonialCreateRequest struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	Avatar   string `json:"avatar"`
	Featured bool   `json:"featured"`
}

type testimonialPatchRequest struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Role     *string `json:"role"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating"`
	Avatar   *string `json:"avatar"`
	Featured *bool   `json:"featured"`
}

// CreateTestimonial adds an admin-entered record; featured is settable and
// there is no content length floor.
func (a *API) CreateTestimonial(c *gin.Context) {
	var payload testimonialCreateRequest
	if !bindJSON(c, &payload, "Invalid testimonial payload") {
		return
	}

	created, err := a.testimonials.Create(writerContext(c), service.TestimonialInput{
		Name:     payload.Name,
		Company:  payload.Company,
		Role:     payload.Role,
		Content:  payload.Content,
		Rating:   payload.Rating,
		Avatar:   payload.Avatar,
		Featured: payload.Featured,
	}, service.SourceAdmin)
	if err != nil {
		respondTestimonialError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"testimonial": created})
}

// UpdateTestimonial merges the given fields into an existing record; fields
// absent from the payload keep their prior values.
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload testimonialPatchRequest
	if !bindJSON(c, &payload, "Invalid testimonial payload") {
		return
	}

	updated, err := a.testimonials.Update(writerContext(c), id, service.TestimonialPatch{
		Name:     payload.Name,
		Company:  payload.Company,
		Role:     payload.Role,
		Content:  payload.Content,
		Rating:   payload.Rating,
		Avatar:   payload.Avatar,
		Featured: payload.Featured,
	})
	if err != nil {
		respondTestimonialError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonial": updated})
}

// DeleteTestimonial removes a record by id. The admin UI asks for
// confirmation before calling this; deleting an absent id is 404, never a
// silent no-op.
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.testimonials.Delete(writerContext(c), id); err != nil {
		respondTestimonialError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

func respondTestimonialError(c *gin.Context, err error) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validation.Fields,
		})
	case errors.Is(err, service.ErrTestimonialNotFound):
		respondError(c, http.StatusNotFound, "Testimonial not found")
	case errors.Is(err, kv.ErrPersistenceUnavailable):
		respondError(c, http.StatusServiceUnavailable, "Storage is unavailable, nothing was saved")
	default:
		respondError(c, http.StatusInternalServerError, "Failed to save testimonial")
	}
}
