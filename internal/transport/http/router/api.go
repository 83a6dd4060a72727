package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-gin-blog/internal/core/auth"
	mdw "go-gin-blog/internal/transport/http/middleware"
)

// NewAPIEngine 用户端引擎；模块先 Register 再调这里
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(), // 浏览器端直接 fetch + 订阅
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 鉴权子分组：需要 userId 的接口都挂这里
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	MountAllAPI(api, authed)

	return r
}
