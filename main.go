package main

import (
	"log"
	"time"

	"weiblog/config"
	"weiblog/handler"
	"weiblog/service"
	"weiblog/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	// 服务端统一使用 UTC
	time.Local = time.UTC
}

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := utils.InitDB(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer utils.CloseDB()

	// 初始化 Redis（会话存储）
	if err := utils.InitRedis(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer utils.CloseRedis()

	// 创建服务
	svc := &handler.Services{
		Users:    service.NewUserService(utils.GetDB()),
		Sessions: service.NewSessionService(utils.GetRedis(), time.Duration(cfg.SessionTTL)*time.Hour),
		Blogs:    service.NewBlogService(utils.GetDB()),
		Comments: service.NewCommentService(utils.GetDB()),
		Follows:  service.NewFollowService(utils.GetDB()),
	}

	// 创建 Gin 路由并加载页面模板
	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)
	handler.RegisterRoutes(r, svc)

	// 启动服务
	log.Printf("🚀 weiblog starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
