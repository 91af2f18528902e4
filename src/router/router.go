package router

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/middleware"
	"NFTMarketLedger/src/svc"
)

// NewRouter 创建gin引擎并装配中间件与业务路由
func NewRouter(serverCtx *svc.ServerCtx) *gin.Engine {
	gin.ForceConsoleColor()
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.TraceID())
	router.Use(middleware.RLog())
	router.Use(middleware.Cors())
	pprof.Register(router)
	initV1Route(router, serverCtx)
	return router
}
