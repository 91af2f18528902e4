package router

import (
	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/controller"
	"NFTMarketLedger/src/middleware"
	"NFTMarketLedger/src/svc"
)

func initV1Route(router *gin.Engine, serverCtx *svc.ServerCtx) {
	apiV1 := router.Group("/api/v1")

	sales := apiV1.Group("/sales")
	sales.POST("", controller.CreateSaleHandler(serverCtx))                  // 定价挂单
	sales.GET("/:id", controller.SaleDetailHandler(serverCtx))               // 卖单详情
	sales.POST("/:id/buy", controller.BuySaleHandler(serverCtx))             // 购买
	sales.POST("/:id/claim-items", controller.ClaimSaleItemsHandler(serverCtx)) // 卖家取回未售资产
	sales.POST("/:id/cancel", controller.CancelSaleHandler(serverCtx))       // 取消挂单

	auctions := apiV1.Group("/auctions")
	auctions.POST("", controller.CreateAuctionHandler(serverCtx))                // 创建拍卖
	auctions.GET("/:id", controller.AuctionDetailHandler(serverCtx))             // 拍卖详情
	auctions.POST("/:id/bids", controller.PlaceBidHandler(serverCtx))            // 出价
	auctions.GET("/:id/bids/:bidder", controller.BidDetailHandler(serverCtx))    // 查询累计出价
	auctions.POST("/:id/resolve", controller.ResolveAuctionHandler(serverCtx))   // 结算
	auctions.POST("/:id/cancel", controller.CancelAuctionHandler(serverCtx))     // 取消拍卖

	vault := apiV1.Group("/vault")
	vault.GET("/:account", controller.VaultBalanceHandler(serverCtx)) // 查询可领取余额
	vault.POST("/claim", controller.ClaimFundsHandler(serverCtx))     // 全额领取

	admin := apiV1.Group("/admin")
	admin.GET("/fee", controller.FeeInfoHandler(serverCtx))                            // 当前手续费条款
	admin.POST("/fee", controller.SetFeeHandler(serverCtx))                            // 更新手续费
	admin.POST("/fee-recipient", controller.SetFeeRecipientHandler(serverCtx))         // 更新手续费收款地址
	admin.POST("/contracts/approval", controller.SetContractApprovalHandler(serverCtx))   // 挂单合约准入
	admin.POST("/currencies/approval", controller.SetCurrencyApprovalHandler(serverCtx))  // 结算币种准入
	admin.POST("/currencies/approve-all", controller.ApproveAllCurrenciesHandler(serverCtx)) // 放开全部币种

	activities := apiV1.Group("/activities")
	activities.GET("", middleware.CacheApi(serverCtx.KvStore, 10),
		controller.ActivitiesHandler(serverCtx)) // 批量获取操作流水

	dev := apiV1.Group("/dev")
	dev.POST("/native/mint", controller.MintNativeHandler(serverCtx))            // 原生币水龙头
	dev.POST("/tokens/mint", controller.MintTokenHandler(serverCtx))             // 代币水龙头
	dev.POST("/tokens/approve", controller.ApproveTokenHandler(serverCtx))       // 授权平台扣款
	dev.POST("/contracts/register", controller.RegisterItemContractHandler(serverCtx)) // 登记资产合约
	dev.POST("/items/mint", controller.MintItemHandler(serverCtx))               // 铸造资产
}
