package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Sale 定价卖单快照,内存账本每次变更后整行覆盖
type Sale struct {
	Id           int64           `gorm:"column:id;primaryKey;autoIncrement"` //主键
	SaleId       uint64          `gorm:"column:sale_id"`                     //卖单id
	ItemContract string          `gorm:"column:item_contract"`               //资产合约地址
	ItemId       uint64          `gorm:"column:item_id"`                     //资产id
	Standard     uint8           `gorm:"column:standard"`                    //资产数量模型
	Seller       string          `gorm:"column:seller"`                      //卖家
	Price        decimal.Decimal `gorm:"column:price;type:decimal(36,18)"`   //单价
	Currency     string          `gorm:"column:currency"`                    //结算币种
	Amount       int64           `gorm:"column:amount"`                      //挂单总量
	Purchased    int64           `gorm:"column:purchased"`                   //已售数量
	StartTime    int64           `gorm:"column:start_time"`                  //开售时间
	EndTime      int64           `gorm:"column:end_time"`                    //结束时间
	Cancelled    bool            `gorm:"column:cancelled"`                   //取消标记
	Status       string          `gorm:"column:status"`                      //落库时刻的派生状态
	UpdateTime   int64           `gorm:"column:update_time"`                 //更新时间
}

func SaleTableName(chain string) string {
	return fmt.Sprintf("ml_%s_sale", chain)
}
