package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Auction 拍卖快照
type Auction struct {
	Id           int64           `gorm:"column:id;primaryKey;autoIncrement"`       //主键
	AuctionId    uint64          `gorm:"column:auction_id"`                        //拍卖id
	ItemContract string          `gorm:"column:item_contract"`                     //资产合约地址
	ItemId       uint64          `gorm:"column:item_id"`                           //资产id
	Standard     uint8           `gorm:"column:standard"`                          //资产数量模型
	Seller       string          `gorm:"column:seller"`                            //卖家
	ReservePrice decimal.Decimal `gorm:"column:reserve_price;type:decimal(36,18)"` //保留价
	Currency     string          `gorm:"column:currency"`                          //结算币种
	Quantity     int64           `gorm:"column:quantity"`                          //拍卖数量
	StartTime    int64           `gorm:"column:start_time"`                        //开拍时间
	EndTime      int64           `gorm:"column:end_time"`                          //结束时间
	Cancelled    bool            `gorm:"column:cancelled"`                         //取消标记
	Claimed      bool            `gorm:"column:claimed"`                           //已结算标记
	Status       string          `gorm:"column:status"`                            //落库时刻的派生状态
	UpdateTime   int64           `gorm:"column:update_time"`                       //更新时间
}

func AuctionTableName(chain string) string {
	return fmt.Sprintf("ml_%s_auction", chain)
}

// AuctionBid 出价快照,按(拍卖,出价人)累计
type AuctionBid struct {
	Id         int64           `gorm:"column:id;primaryKey;autoIncrement"` //主键
	AuctionId  uint64          `gorm:"column:auction_id"`                  //拍卖id
	Bidder     string          `gorm:"column:bidder"`                      //出价人
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(36,18)"`  //累计出价
	IsHighest  bool            `gorm:"column:is_highest"`                  //是否当前最高
	UpdateTime int64           `gorm:"column:update_time"`                 //更新时间
}

func AuctionBidTableName(chain string) string {
	return fmt.Sprintf("ml_%s_auction_bid", chain)
}
