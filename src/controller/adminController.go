package controller

import (
	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xhttp"
)

// 更新手续费条款
func SetFeeHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.SetFeeParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetFee(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 更新手续费收款地址
func SetFeeRecipientHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.SetFeeRecipientParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetFeeRecipient(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 查询当前手续费条款
func FeeInfoHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetFeeInfo(c.Request.Context(), serverCtx)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 挂单合约准入开关
func SetContractApprovalHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.ApprovalParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetContractApproval(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 结算币种准入开关
func SetCurrencyApprovalHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.ApprovalParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetCurrencyApproval(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 放开全部币种,单向操作
func ApproveAllCurrenciesHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.ApproveAllCurrenciesParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.ApproveAllCurrencies(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
