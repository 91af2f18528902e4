package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xhttp"
)

// 解析路径上的记录id
func parseRecordId(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		xhttp.Error(c, errcode.ErrInvalidParams)
		return 0, false
	}
	return id, true
}

// 创建定价卖单
func CreateSaleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.CreateSaleParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.CreateSale(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 购买
func BuySaleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		saleID, ok := parseRecordId(c)
		if !ok {
			return
		}
		var p entity.BuyParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.BuySale(c.Request.Context(), serverCtx, saleID, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// 卖家取回未售资产
func ClaimSaleItemsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		saleID, ok := parseRecordId(c)
		if !ok {
			return
		}
		var p entity.ClaimSaleItemsParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.ClaimSaleItems(c.Request.Context(), serverCtx, saleID, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 取消卖单
func CancelSaleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		saleID, ok := parseRecordId(c)
		if !ok {
			return
		}
		var p entity.CancelParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.CancelSale(c.Request.Context(), serverCtx, saleID, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// 卖单详情
func SaleDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		saleID, ok := parseRecordId(c)
		if !ok {
			return
		}
		res, err := service.GetSale(c.Request.Context(), serverCtx, saleID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
