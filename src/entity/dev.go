package entity

import (
	"github.com/shopspring/decimal"
)

// 开发环境水龙头/铸造入口参数,只在进程内模拟链上装配时可用

type MintNativeParam struct {
	Account string          `json:"account"` //入账地址
	Amount  decimal.Decimal `json:"amount"`  //铸入金额
}

type MintTokenParam struct {
	Currency string          `json:"currency"` //代币地址
	Account  string          `json:"account"`  //入账地址
	Amount   decimal.Decimal `json:"amount"`   //铸入金额
}

type ApproveTokenParam struct {
	Currency string          `json:"currency"` //代币地址
	Owner    string          `json:"owner"`    //授权人
	Amount   decimal.Decimal `json:"amount"`   //授权给平台的额度
}

type RegisterContractParam struct {
	Contract string `json:"contract"` //资产合约地址
	Artist   string `json:"artist"`   //版税收款人,可为空
	Rate     int64  `json:"rate"`     //版税率分子
	Scale    int64  `json:"scale"`    //版税率分母
}

type MintItemParam struct {
	Contract string `json:"contract"` //资产合约地址
	ItemId   uint64 `json:"item_id"`  //资产id
	Owner    string `json:"owner"`    //持有人
	Standard uint8  `json:"standard"` //资产数量模型
	Quantity int64  `json:"quantity"` //fungible铸入数量
}
