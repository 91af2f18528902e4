package entity

import (
	"github.com/shopspring/decimal"
)

type CreateSaleParam struct {
	Seller       string          `json:"seller"`        //卖家地址
	ItemContract string          `json:"item_contract"` //资产合约地址
	ItemId       uint64          `json:"item_id"`       //资产id
	Standard     uint8           `json:"standard"`      //资产数量模型:1 unique,2 fungible
	Amount       int64           `json:"amount"`        //挂单总量
	Price        decimal.Decimal `json:"price"`         //单价
	Currency     string          `json:"currency"`      //结算币种
	StartTime    int64           `json:"start_time"`    //开售时间
	EndTime      int64           `json:"end_time"`      //结束时间
}

type CreateSaleResp struct {
	SaleId uint64 `json:"sale_id"`
}

type BuyParam struct {
	Buyer          string          `json:"buyer"`           //买家地址
	Recipient      string          `json:"recipient"`       //收货地址,缺省为买家本人
	Quantity       int64           `json:"quantity"`        //购买数量
	FromVault      decimal.Decimal `json:"from_vault"`      //用可领取余额抵扣的金额
	NativeAttached decimal.Decimal `json:"native_attached"` //随请求附带的原生币金额
}

type ClaimSaleItemsParam struct {
	Seller string `json:"seller"` //卖家地址
}

type ClaimSaleItemsResp struct {
	Reclaimed int64 `json:"reclaimed"` //取回的未售数量
}

type CancelParam struct {
	Caller string `json:"caller"` //发起人,须为卖家或管理员
}

type SaleDetail struct {
	SaleId       uint64          `json:"sale_id"`       //卖单id
	ItemContract string          `json:"item_contract"` //资产合约地址
	ItemId       uint64          `json:"item_id"`       //资产id
	Standard     uint8           `json:"standard"`      //资产数量模型
	Seller       string          `json:"seller"`        //卖家
	Price        decimal.Decimal `json:"price"`         //单价
	Currency     string          `json:"currency"`      //结算币种
	Amount       int64           `json:"amount"`        //挂单总量
	Purchased    int64           `json:"purchased"`     //已售数量
	StartTime    int64           `json:"start_time"`    //开售时间
	EndTime      int64           `json:"end_time"`      //结束时间
	Status       string          `json:"status"`        //派生状态
}
