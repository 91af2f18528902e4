package controller

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/service"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xhttp"
)

// 查询操作流水
func ActivitiesHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		//1、获取过滤参数
		filterParam := c.Query("filters")
		if filterParam == "" {
			xhttp.Error(c, errcode.NewCustomErr("Filter param is nil."))
			return
		}
		//2、解析过滤参数
		var filter entity.ActivityFilterParams
		if err := json.Unmarshal([]byte(filterParam), &filter); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		//3、将chainId转换为chain
		chain, ok := serverCtx.ChainIdToChain[filter.ChainID]
		if !ok {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		//4、调用service
		res, err := service.GetActivities(c.Request.Context(), serverCtx, chain, filter.ChainID, filter)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
