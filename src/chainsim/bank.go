// Package chainsim 提供账本外部协作方(资金通道、资产托管)的进程内实现,
// 语义对齐链上行为:原生币精确转账、代币授权额度拉取、两种资产转移模型。
// 服务默认装配它,测试也用它做确定性验证
package chainsim

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Bank 进程内资金账户簿。market地址是平台的收款账户,
// Pull*把资金收进平台账户,Pay*从平台账户付出
type Bank struct {
	mu     sync.Mutex
	market string
	// account → 原生币余额
	native map[string]decimal.Decimal
	// currency → account → 代币余额
	tokens map[string]map[string]decimal.Decimal
	// currency → owner → 授权给平台的可扣款额度
	allowances map[string]map[string]decimal.Decimal
}

func NewBank(market string) *Bank {
	return &Bank{
		market:     market,
		native:     make(map[string]decimal.Decimal),
		tokens:     make(map[string]map[string]decimal.Decimal),
		allowances: make(map[string]map[string]decimal.Decimal),
	}
}

// MintNative 给账户铸入原生币,测试和水龙头入口使用
func (b *Bank) MintNative(account string, amount decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.native[account] = b.native[account].Add(amount)
}

func (b *Bank) MintToken(currency, account string, amount decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tokens[currency] == nil {
		b.tokens[currency] = make(map[string]decimal.Decimal)
	}
	b.tokens[currency][account] = b.tokens[currency][account].Add(amount)
}

// Approve 账户授权平台从其代币余额中扣款的额度(覆盖式,非累加)
func (b *Bank) Approve(currency, owner string, amount decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.allowances[currency] == nil {
		b.allowances[currency] = make(map[string]decimal.Decimal)
	}
	b.allowances[currency][owner] = amount
}

func (b *Bank) NativeBalance(account string) decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.native[account]
}

func (b *Bank) TokenBalance(currency, account string) decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tokens[currency][account]
}

func (b *Bank) Allowance(currency, owner string) decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.allowances[currency][owner]
}

// PullNative 从付款人收取原生币到平台账户
func (b *Bank) PullNative(from string, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount.GreaterThan(b.native[from]) {
		return errors.Errorf("native balance of %s is %s, cannot pull %s", from, b.native[from], amount)
	}
	b.native[from] = b.native[from].Sub(amount)
	b.native[b.market] = b.native[b.market].Add(amount)
	return nil
}

func (b *Bank) PayNative(to string, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount.GreaterThan(b.native[b.market]) {
		return errors.Errorf("market native holdings %s cannot cover payout %s", b.native[b.market], amount)
	}
	b.native[b.market] = b.native[b.market].Sub(amount)
	b.native[to] = b.native[to].Add(amount)
	return nil
}

// PullToken 凭授权额度从付款人代币余额扣款到平台账户,额度同步扣减
func (b *Bank) PullToken(currency, from string, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount.IsZero() {
		return nil
	}
	allowance := b.allowances[currency][from]
	if amount.GreaterThan(allowance) {
		return errors.Errorf("allowance of %s for %s is %s, cannot pull %s", from, currency, allowance, amount)
	}
	balance := b.tokens[currency][from]
	if amount.GreaterThan(balance) {
		return errors.Errorf("token balance of %s for %s is %s, cannot pull %s", from, currency, balance, amount)
	}
	b.allowances[currency][from] = allowance.Sub(amount)
	b.tokens[currency][from] = balance.Sub(amount)
	b.tokens[currency][b.market] = b.tokens[currency][b.market].Add(amount)
	return nil
}

func (b *Bank) PayToken(currency, to string, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount.IsZero() {
		return nil
	}
	holdings := b.tokens[currency][b.market]
	if amount.GreaterThan(holdings) {
		return errors.Errorf("market holdings %s of %s cannot cover payout %s", holdings, currency, amount)
	}
	b.tokens[currency][b.market] = holdings.Sub(amount)
	b.tokens[currency][to] = b.tokens[currency][to].Add(amount)
	return nil
}
