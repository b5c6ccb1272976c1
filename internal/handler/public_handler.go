package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inarasite/internal/db"
	"github.com/inarasite/internal/service"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const (
	visitorCookieName   = "it_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60

	themeCookieName = "theme"
)

// ShowHome renders the landing page: hero, services preview and the featured
// slice of the testimonial wall.
func (a *API) ShowHome(c *gin.Context) {
	a.ensureVisitorID(c)

	testimonials, err := a.testimonials.List(service.SeedSamples)
	if err != nil {
		c.Error(err)
		testimonials = nil
	}
	if len(testimonials) > 3 {
		testimonials = testimonials[:3]
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"testimonials": testimonials,
	})
}

// ShowAbout renders the about page.
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", nil)
}

// ShowServices renders the services page.
func (a *API) ShowServices(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "services.html", nil)
}

type blogListItem struct {
	Slug      string
	Title     string
	Excerpt   string
	Thumbnail string
	Tags      []string
	Date      string
	Views     int64
}

// ShowBlog lists all articles, optionally filtered by tag, newest first.
func (a *API) ShowBlog(c *gin.Context) {
	tag := strings.TrimSpace(c.Query("tag"))

	var (
		posts []blogListItem
		err   error
	)
	if tag != "" {
		posts, err = a.blogListItems(a.blog.ListByTag(tag))
	} else {
		posts, err = a.blogListItems(a.blog.List())
	}
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "blog.html", gin.H{
			"error": "Failed to load articles",
		})
		return
	}

	tags, err := a.blog.AllTags()
	if err != nil {
		tags = nil
	}

	a.renderHTML(c, http.StatusOK, "blog.html", gin.H{
		"posts":     posts,
		"tags":      tags,
		"activeTag": tag,
	})
}

// ShowBlogPost renders a single article and counts the view. Every render of
// the detail page increments the per-article counter.
func (a *API) ShowBlogPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := a.blog.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	a.ensureVisitorID(c)

	views, viewErr := a.analytics.RecordPostView(post.Slug)
	if viewErr != nil {
		c.Error(viewErr) // 不中断渲染，但记录错误
	}

	content, err := renderMarkdown(post.Content)
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "blog_post.html", gin.H{
			"error": "Failed to render article",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "blog_post.html", gin.H{
		"post":    post,
		"tags":    post.TagList(),
		"date":    post.PublishedAt.Format("January 2, 2006"),
		"content": content,
		"views":   post.BaseViews + views,
	})
}

// ShowContact renders the contact page with an empty form.
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"form": service.ContactInput{},
	})
}

// SubmitContact validates the form and forwards it to the relay endpoint.
// Every field error is surfaced next to its field, not just the first.
func (a *API) SubmitContact(c *gin.Context) {
	input := service.ContactInput{
		Name:      c.PostForm("name"),
		Email:     c.PostForm("email"),
		Subject:   c.PostForm("subject"),
		Phone:     c.PostForm("phone"),
		Message:   c.PostForm("message"),
		UserAgent: c.Request.UserAgent(),
	}

	if err := a.contact.Submit(c.Request.Context(), input); err != nil {
		var validation *service.ValidationError
		if errors.As(err, &validation) {
			a.renderHTML(c, http.StatusBadRequest, "contact.html", gin.H{
				"form":   input,
				"errors": fieldErrorMap(validation.Fields),
			})
			return
		}

		a.renderHTML(c, http.StatusBadGateway, "contact.html", gin.H{
			"form":  input,
			"error": "Something went wrong sending your message. Please try again.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"form":      service.ContactInput{},
		"submitted": true,
	})
}

// SetTheme stores the visitor's light/dark preference in a cookie and sends
// them back where they came from.
func (a *API) SetTheme(c *gin.Context) {
	theme := c.PostForm("theme")
	if theme != "dark" {
		theme = "light"
	}

	c.SetCookie(themeCookieName, theme, visitorCookieMaxAge, "/", "", c.Request.TLS != nil, false)

	target := c.GetHeader("Referer")
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}

func themeFromCookie(c *gin.Context) string {
	if theme, err := c.Cookie(themeCookieName); err == nil && theme == "dark" {
		return "dark"
	}
	return "light"
}

func (a *API) blogListItems(posts []db.Post, err error) ([]blogListItem, error) {
	if err != nil {
		return nil, err
	}

	items := make([]blogListItem, 0, len(posts))
	for _, post := range posts {
		views, viewErr := a.analytics.PostViews(post.Slug)
		if viewErr != nil {
			views = 0
		}
		items = append(items, blogListItem{
			Slug:      post.Slug,
			Title:     post.Title,
			Excerpt:   post.Excerpt,
			Thumbnail: post.Thumbnail,
			Tags:      post.TagList(),
			Date:      post.PublishedAt.Format("January 2, 2006"),
			Views:     post.BaseViews + views,
		})
	}
	return items, nil
}

func (a *API) ensureVisitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookieName); err == nil && strings.TrimSpace(id) != "" {
		return id
	}

	visitorID := uuid.NewString()
	secure := c.Request.TLS != nil

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     visitorCookieName,
		Value:    visitorID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   visitorCookieMaxAge,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})

	return visitorID
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}

func fieldErrorMap(fields []service.FieldError) map[string]string {
	errs := make(map[string]string, len(fields))
	for _, field := range fields {
		errs[field.Field] = field.Message
	}
	return errs
}
