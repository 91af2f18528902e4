package entity

import (
	"github.com/shopspring/decimal"
)

type VaultBalanceResp struct {
	Account  string          `json:"account"`  //账户地址
	Currency string          `json:"currency"` //币种
	Balance  decimal.Decimal `json:"balance"`  //可领取余额
}

type ClaimParam struct {
	Account  string `json:"account"`  //领取人
	Currency string `json:"currency"` //币种
}

type ClaimResp struct {
	Paid decimal.Decimal `json:"paid"` //实际付出金额
}
