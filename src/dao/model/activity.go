package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// 活动类型
const (
	ActivityListSale = iota + 1
	ActivityBuy
	ActivityClaimSaleItems
	ActivityCancelSale
	ActivityCreateAuction
	ActivityBid
	ActivityOutbidRefund
	ActivitySettleAuction
	ActivityCancelAuction
	ActivityClaimFunds
)

// Activity 账本操作流水,每笔成功的变更落一条
type Activity struct {
	Id           int64           `gorm:"column:id;primaryKey;autoIncrement"` //主键
	ActivityUid  string          `gorm:"column:activity_uid"`                //流水uuid
	ActivityType int             `gorm:"column:activity_type"`               //活动类型
	RecordId     uint64          `gorm:"column:record_id"`                   //卖单/拍卖id
	ItemContract string          `gorm:"column:item_contract"`               //资产合约地址
	ItemId       uint64          `gorm:"column:item_id"`                     //资产id
	Maker        string          `gorm:"column:maker"`                       //发起方
	Taker        string          `gorm:"column:taker"`                       //对手方
	Currency     string          `gorm:"column:currency"`                    //结算币种
	Price        decimal.Decimal `gorm:"column:price;type:decimal(36,18)"`   //金额
	Quantity     int64           `gorm:"column:quantity"`                    //数量
	EventTime    int64           `gorm:"column:event_time"`                  //事件时间
}

func ActivityTableName(chain string) string {
	return fmt.Sprintf("ml_%s_activity", chain)
}
