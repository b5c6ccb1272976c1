package router

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/inarasite/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("inarasite_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"times": func(n int) []int {
			seq := make([]int, n)
			for i := range seq {
				seq[i] = i
			}
			return seq
		},
	})
	r.LoadHTMLGlob("web/template/*.html")

	// 静态文件服务
	r.Static("/static", "./web/static")

	r.GET("/healthz", api.HealthCheck)

	// 前台页面，每次渲染均计入站点访问数
	public := r.Group("")
	public.Use(api.CountSiteVisit())
	{
		public.GET("/", api.ShowHome)
		public.GET("/about", api.ShowAbout)
		public.GET("/services", api.ShowServices)
		public.GET("/blog", api.ShowBlog)
		public.GET("/blog/:slug", api.ShowBlogPost)
		public.GET("/contact", api.ShowContact)
		public.POST("/contact", api.SubmitContact)
		public.GET("/testimonials", api.ShowTestimonialsPage)
		public.POST("/testimonials", api.SubmitTestimonial)
	}

	// 局部刷新与跨页面同步，不计入访问数
	r.GET("/partials/testimonials", api.TestimonialWall)
	r.GET("/events", api.ChangeEvents)
	r.POST("/theme", api.SetTheme)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/testimonials", api.ShowTestimonialAdmin)

			// API路由
			authAPI := auth.Group("/api")
			{
				authAPI.GET("/testimonials", api.GetTestimonials)
				authAPI.POST("/testimonials", api.CreateTestimonial)
				authAPI.PUT("/testimonials/:id", api.UpdateTestimonial)
				authAPI.DELETE("/testimonials/:id", api.DeleteTestimonial)

				authAPI.POST("/visits/reset", api.ResetSiteVisits)
			}
		}
	}

	return r
}
