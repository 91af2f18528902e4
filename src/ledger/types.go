package ledger

import (
	"github.com/shopspring/decimal"
)

// NativeCurrency 原生币的哨兵地址：结算币种等于该地址时走原生币支付通道，
// 否则走代币授权扣款通道
const NativeCurrency = "0x0000000000000000000000000000000000000000"

// TokenStandard 资产的数量模型标签
type TokenStandard int8

const (
	StandardUnique   TokenStandard = iota + 1 // 独一无二的资产,数量恒为1
	StandardFungible                          // 按数量转移的资产
)

func (s TokenStandard) Valid() bool {
	return s == StandardUnique || s == StandardFungible
}

func (s TokenStandard) String() string {
	switch s {
	case StandardUnique:
		return "unique"
	case StandardFungible:
		return "fungible"
	default:
		return "unknown"
	}
}

// ItemRef 指向外部资产合约中的一项资产
type ItemRef struct {
	Contract string        `json:"contract"` // 资产合约地址
	ItemID   uint64        `json:"item_id"`  // 资产id
	Standard TokenStandard `json:"standard"` // 数量模型
}

// Sale 固定价格挂单记录。记录永不删除,状态由字段和当前时间推导
type Sale struct {
	ID        uint64          `json:"id"`         // 顺序id,从1开始,0表示不存在
	Item      ItemRef         `json:"item"`       // 资产引用
	Seller    string          `json:"seller"`     // 卖家地址
	Price     decimal.Decimal `json:"price"`      // 单价
	Currency  string          `json:"currency"`   // 结算币种
	Amount    int64           `json:"amount"`     // 挂单总数量
	Purchased int64           `json:"purchased"`  // 已售出数量,单调递增且不超过Amount
	StartTime int64           `json:"start_time"` // 开售时间(unix秒)
	EndTime   int64           `json:"end_time"`   // 结束时间,创建时校验 EndTime > StartTime
	Cancelled bool            `json:"cancelled"`  // 取消标记,只能单向置真
}

// Auction 英式保留价拍卖记录
type Auction struct {
	ID           uint64          `json:"id"`            // 顺序id,与Sale各自独立计数
	Item         ItemRef         `json:"item"`          // 资产引用
	Quantity     int64           `json:"quantity"`      // 拍卖数量,unique资产恒为1
	Seller       string          `json:"seller"`        // 卖家地址
	ReservePrice decimal.Decimal `json:"reserve_price"` // 保留价
	Currency     string          `json:"currency"`      // 结算币种
	StartTime    int64           `json:"start_time"`    // 开拍时间
	EndTime      int64           `json:"end_time"`      // 结束时间
	Cancelled    bool            `json:"cancelled"`     // 取消标记,单向置真
	Claimed      bool            `json:"claimed"`       // 已结算标记,单向置真,阻止重复结算
}

// Bid 某个竞拍人在某场拍卖中当前仍被托管的累计出价。
// 被超越时Amount清零并把等额资金记入对方的可领取余额,
// 所以这是"当前托管额"账本,不是出价历史
type Bid struct {
	Bidder    string          `json:"bidder"`     // 竞拍人地址
	Amount    decimal.Decimal `json:"amount"`     // 累计托管金额
	UpdatedAt int64           `json:"updated_at"` // 最近一次更新时间
}
