package ledger

import (
	"github.com/shopspring/decimal"
)

// ItemCustody 资产托管协作方。账本只关心两种转移语义(unique/fungible)
// 和版税查询能力,不关心链上细节
type ItemCustody interface {
	// SupportsRoyalty 检查资产合约是否实现了版税查询能力。
	// 创建挂单/拍卖前必须通过该检查
	SupportsRoyalty(contract string) bool

	// RoyaltyInfo 查询本次成交应付的版税。每次成交都重新查询,不做缓存,
	// 因为版税条款由资产合约定义且可能变化
	RoyaltyInfo(contract string, itemID uint64, salePrice decimal.Decimal) (artist string, royalty decimal.Decimal, err error)

	// TransferItem 在两个地址间转移资产。unique资产要求qty==1
	TransferItem(item ItemRef, from, to string, qty int64) error
}

// PaymentRail 资金通道协作方。原生币走推送(exact value),
// 代币走授权额度拉取(transfer-from)
type PaymentRail interface {
	PullNative(from string, amount decimal.Decimal) error
	PayNative(to string, amount decimal.Decimal) error
	PullToken(currency, from string, amount decimal.Decimal) error
	PayToken(currency, to string, amount decimal.Decimal) error
}
