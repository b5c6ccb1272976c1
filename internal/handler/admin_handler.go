package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/inarasite/internal/service"
	"golang.org/x/crypto/bcrypt"
)

const sessionAuthenticatedKey = "admin_authenticated"

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	session := sessions.Default(c)
	if authed, ok := session.Get(sessionAuthenticatedKey).(bool); ok && authed {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{
		"title": "Admin Access",
	})
}

// Login checks the submitted password against the shared admin secret. By
// default this is a plain string comparison against a hard-coded password —
// a knowingly insecure single-operator gate, kept as-is. When an
// ADMIN_PASSWORD_HASH is configured a bcrypt comparison is used instead.
// On success the authenticated flag lands in the session with no expiry.
func (a *API) Login(c *gin.Context) {
	password := c.PostForm("password")

	if !a.passwordMatches(password) {
		a.renderHTML(c, http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Admin Access",
			"error": "Incorrect password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAuthenticatedKey, true)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_login.html", gin.H{
			"title": "Admin Access",
			"error": "Failed to save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *API) passwordMatches(password string) bool {
	if a.adminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(password)) == nil
	}
	return password == a.adminPassword
}

// Logout 处理登出并清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	items, err := a.testimonials.List(service.SeedNone)
	if err != nil {
		items = nil
	}

	siteVisits, err := a.analytics.SiteVisits()
	if err != nil {
		siteVisits = 0
	}

	posts, err := a.blogListItems(a.blog.List())
	if err != nil {
		posts = nil
	}

	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":            "Website Administration",
		"testimonialCount": len(items),
		"siteVisits":       siteVisits,
		"posts":            posts,
	})
}

// ResetSiteVisits 清零站点访问计数（后台页脚的重置入口）。
func (a *API) ResetSiteVisits(c *gin.Context) {
	if err := a.analytics.ResetSiteVisits(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to reset visit counter")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visit counter reset"})
}

// AuthRequired 是一个简单的认证中间件
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if authed, ok := session.Get(sessionAuthenticatedKey).(bool); !ok || !authed {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
