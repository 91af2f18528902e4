package controller

import (
	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xhttp"
)

// 查询可领取余额
func VaultBalanceHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := c.Param("account")
		currency := c.Query("currency")
		if account == "" || currency == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetVaultBalance(c.Request.Context(), serverCtx, account, currency)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 全额领取
func ClaimFundsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.ClaimParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if p.Account == "" || p.Currency == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.ClaimFunds(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
