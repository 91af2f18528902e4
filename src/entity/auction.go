package entity

import (
	"github.com/shopspring/decimal"
)

type CreateAuctionParam struct {
	Seller       string          `json:"seller"`        //卖家地址
	ItemContract string          `json:"item_contract"` //资产合约地址
	ItemId       uint64          `json:"item_id"`       //资产id
	Standard     uint8           `json:"standard"`      //资产数量模型:1 unique,2 fungible
	Quantity     int64           `json:"quantity"`      //拍卖数量
	ReservePrice decimal.Decimal `json:"reserve_price"` //保留价
	Currency     string          `json:"currency"`      //结算币种
	StartTime    int64           `json:"start_time"`    //开拍时间
	EndTime      int64           `json:"end_time"`      //结束时间
}

type CreateAuctionResp struct {
	AuctionId uint64 `json:"auction_id"`
}

type BidParam struct {
	Bidder         string          `json:"bidder"`          //出价人
	FromVault      decimal.Decimal `json:"from_vault"`      //用可领取余额抵扣的金额
	Amount         decimal.Decimal `json:"amount"`          //本次外部注入金额
	NativeAttached decimal.Decimal `json:"native_attached"` //随请求附带的原生币金额
}

type ResolveParam struct {
	Caller string `json:"caller"` //发起人,须为赢家、卖家或管理员
}

type AuctionDetail struct {
	AuctionId     uint64          `json:"auction_id"`     //拍卖id
	ItemContract  string          `json:"item_contract"`  //资产合约地址
	ItemId        uint64          `json:"item_id"`        //资产id
	Standard      uint8           `json:"standard"`       //资产数量模型
	Seller        string          `json:"seller"`         //卖家
	ReservePrice  decimal.Decimal `json:"reserve_price"`  //保留价
	Currency      string          `json:"currency"`       //结算币种
	Quantity      int64           `json:"quantity"`       //拍卖数量
	StartTime     int64           `json:"start_time"`     //开拍时间
	EndTime       int64           `json:"end_time"`       //结束时间
	Status        string          `json:"status"`         //派生状态
	HighestBidder string          `json:"highest_bidder"` //当前最高出价人,无人出价为空
	HighestAmount decimal.Decimal `json:"highest_amount"` //当前最高累计出价
}

type BidDetail struct {
	AuctionId  uint64          `json:"auction_id"`  //拍卖id
	Bidder     string          `json:"bidder"`      //出价人
	Amount     decimal.Decimal `json:"amount"`      //累计出价
	UpdateTime int64           `json:"update_time"` //最后出价时间
}
