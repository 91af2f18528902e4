package controller

import (
	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xhttp"
)

// 创建拍卖
func CreateAuctionHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entity.CreateAuctionParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.CreateAuction(c.Request.Context(), serverCtx, p)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 出价
func PlaceBidHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID, ok := parseRecordId(c)
		if !ok {
			return
		}
		var p entity.BidParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.PlaceBid(c.Request.Context(), serverCtx, auctionID, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// 结算
func ResolveAuctionHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID, ok := parseRecordId(c)
		if !ok {
			return
		}
		var p entity.ResolveParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.ResolveAuction(c.Request.Context(), serverCtx, auctionID, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// 取消拍卖
func CancelAuctionHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID, ok := parseRecordId(c)
		if !ok {
			return
		}
		var p entity.CancelParam
		if err := c.ShouldBindJSON(&p); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.CancelAuction(c.Request.Context(), serverCtx, auctionID, p); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// 拍卖详情
func AuctionDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID, ok := parseRecordId(c)
		if !ok {
			return
		}
		res, err := service.GetAuction(c.Request.Context(), serverCtx, auctionID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// 查询指定出价人的累计出价
func BidDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID, ok := parseRecordId(c)
		if !ok {
			return
		}
		bidder := c.Param("bidder")
		if bidder == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetBid(c.Request.Context(), serverCtx, auctionID, bidder)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
