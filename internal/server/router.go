package server

import (
	"net/http"
	"os"
	"path/filepath"

	"zh-mnemonic/internal/handler"
	"zh-mnemonic/internal/handler/response"
	"zh-mnemonic/internal/middleware"
	"zh-mnemonic/pkg/errno"
	"zh-mnemonic/pkg/monitor"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine。
// staticDir 非空时，未命中 API 的 GET 请求按静态文件处理。
func NewHTTPRouter(h *handler.ConvertHandler, staticDir string) *gin.Engine {
	// 0. 初始化监控指标
	monitor.Init()

	// 1. 创建 Engine，请求日志用自己的中间件，不打印 query
	r := gin.New()

	// 2. 注册通用中间件
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 旧前端页面使用的路径
	r.POST("/api/convert-bitcoin-key", h.Convert)

	// 4. 注册 API 路由组
	api := r.Group("/api/v1")
	{
		api.GET("/ping", func(c *gin.Context) {
			response.Success(c, gin.H{"pong": true})
		})
		api.POST("/convert", h.Convert)
		api.POST("/translate", h.Translate)
	}

	r.NoRoute(staticHandler(staticDir))
	return r
}

func staticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dir != "" && c.Request.Method == http.MethodGet {
			// Clean 以 "/" 开头，结果不会跳出 dir
			p := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(p); err == nil && info.IsDir() {
				p = filepath.Join(p, "index.html")
			}
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				c.File(p)
				return
			}
		}
		response.Error(c, errno.ErrNotFound)
	}
}
