package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inarasite/internal/kv"
	"github.com/inarasite/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers. Services are constructed
// once at startup and injected here instead of living as package globals.
type API struct {
	db           *gorm.DB
	store        *kv.Store
	testimonials *service.TestimonialService
	analytics    *service.AnalyticsService
	blog         *service.BlogService
	contact      *service.ContactService

	adminPassword     string
	adminPasswordHash string
}

// Options carries the configuration handlers need beyond their services.
type Options struct {
	AdminPassword     string
	AdminPasswordHash string
	ContactEndpoint   string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store *kv.Store, opts Options) *API {
	return &API{
		db:                gdb,
		store:             store,
		testimonials:      service.NewTestimonialService(store),
		analytics:         service.NewAnalyticsService(store),
		blog:              service.NewBlogService(gdb),
		contact:           service.NewContactService(opts.ContactEndpoint),
		adminPassword:     opts.AdminPassword,
		adminPasswordHash: opts.AdminPasswordHash,
	}
}

// Store exposes the persistence substrate for wiring (change events).
func (a *API) Store() *kv.Store {
	return a.store
}

// Testimonials exposes the testimonial service for tests and scripts.
func (a *API) Testimonials() *service.TestimonialService {
	return a.testimonials
}

const siteVisitsContextKey = "__site_visits"

// renderHTML renders a template with the shared site chrome attached: site
// name, current year, theme preference and the running visit counter.
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["title"]; !exists {
		// Page titles are always the site name, whatever the route.
		payload["title"] = "Inara Tech"
	}
	payload["siteName"] = "Inara Tech"
	payload["year"] = time.Now().Year()
	payload["theme"] = themeFromCookie(c)
	payload["siteViews"] = a.siteVisits(c)

	c.HTML(status, template, payload)
}

func (a *API) siteVisits(c *gin.Context) int64 {
	if cached, exists := c.Get(siteVisitsContextKey); exists {
		if views, ok := cached.(int64); ok {
			return views
		}
	}

	views, err := a.analytics.SiteVisits()
	if err != nil {
		c.Error(err)
		return 0
	}
	return views
}

// CountSiteVisit increments the site-wide visit counter on every page render.
// Reloads count again; there is deliberately no de-duplication.
func (a *API) CountSiteVisit() gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := a.analytics.RecordSiteVisit()
		if err != nil {
			c.Error(err)
		} else {
			c.Set(siteVisitsContextKey, views)
		}
		c.Next()
	}
}
