package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VaultBalance 可领取余额快照,(账户,币种)唯一
type VaultBalance struct {
	Id         int64           `gorm:"column:id;primaryKey;autoIncrement"` //主键
	Account    string          `gorm:"column:account"`                     //账户地址
	Currency   string          `gorm:"column:currency"`                    //币种
	Balance    decimal.Decimal `gorm:"column:balance;type:decimal(36,18)"` //可领取余额
	UpdateTime int64           `gorm:"column:update_time"`                 //更新时间
}

func VaultBalanceTableName(chain string) string {
	return fmt.Sprintf("ml_%s_vault_balance", chain)
}
