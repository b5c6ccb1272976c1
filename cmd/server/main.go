package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/inarasite/internal/config"
	"github.com/inarasite/internal/db"
	"github.com/inarasite/internal/handler"
	"github.com/inarasite/internal/kv"
	"github.com/inarasite/internal/router"
	"github.com/inarasite/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	// 本地开发时允许通过 .env 注入配置，文件不存在则忽略
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 首次启动时填充示例博客文章
	if err := service.NewBlogService(db.DB).SeedSamplePosts(); err != nil {
		log.Fatalf("failed to seed sample posts: %v", err)
	}

	store := kv.NewStore(db.DB)
	api := handler.NewAPI(db.DB, store, handler.Options{
		AdminPassword:     cfg.AdminPassword,
		AdminPasswordHash: cfg.AdminPasswordHash,
		ContactEndpoint:   cfg.ContactEndpoint,
	})

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	log.Printf("starting server on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
