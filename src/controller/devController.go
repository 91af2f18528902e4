package controller

import (
	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xhttp"
)

// 开发环境水龙头入口,向进程内模拟链播种资金和资产

func MintNativeHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.MintNativeParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.MintNative(c.Request.Context(), serverCtx, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

func MintTokenHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.MintTokenParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.MintToken(c.Request.Context(), serverCtx, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

func ApproveTokenHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.ApproveTokenParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.ApproveToken(c.Request.Context(), serverCtx, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

func RegisterItemContractHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.RegisterContractParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.RegisterItemContract(c.Request.Context(), serverCtx, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

func MintItemHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.MintItemParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.MintItem(c.Request.Context(), serverCtx, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}
