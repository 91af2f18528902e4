package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

type balanceKey struct {
	account  string
	currency string
}

// ClaimVault (账户,币种)→可随时提取的余额。
// 两个账本是仅有的内部写入方(同包内未导出的credit/debit),
// 账户持有人通过Claim一次性提走全部余额
type ClaimVault struct {
	mu       sync.Mutex
	balances map[balanceKey]decimal.Decimal
	rail     PaymentRail
}

func NewClaimVault(rail PaymentRail) *ClaimVault {
	return &ClaimVault{
		balances: make(map[balanceKey]decimal.Decimal),
		rail:     rail,
	}
}

// Balance 查询某账户某币种的可领取余额
func (v *ClaimVault) Balance(account, currency string) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.balances[balanceKey{account, currency}]
}

func (v *ClaimVault) credit(account, currency string, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	k := balanceKey{account, currency}
	v.balances[k] = v.balances[k].Add(amount)
}

// debit 扣减余额,余额不足直接失败,绝不出现负余额
func (v *ClaimVault) debit(account, currency string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return failf(KindInvalidParams, "vault.debit", "negative amount %s", amount)
	}
	if amount.IsZero() {
		return nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	k := balanceKey{account, currency}
	bal := v.balances[k]
	if amount.GreaterThan(bal) {
		return failf(KindInsufficientFunds, "vault.debit", "balance %s < debit %s", bal, amount)
	}
	v.balances[k] = bal.Sub(amount)
	return nil
}

// Claim 提走账户在该币种下的全部余额。
// 先清零再对外转账,防止转账回调期间的重复领取;
// 转账失败则恢复余额,整个操作等同从未发生,由调用方重试
func (v *ClaimVault) Claim(account, currency string) (decimal.Decimal, error) {
	const op = "vault.Claim"
	v.mu.Lock()
	defer v.mu.Unlock()

	k := balanceKey{account, currency}
	amount := v.balances[k]
	if !amount.IsPositive() {
		return decimal.Zero, failf(KindInsufficientFunds, op, "nothing to claim for %s in %s", account, currency)
	}
	// 1、先清零
	delete(v.balances, k)

	// 2、再对外支付
	var err error
	if currency == NativeCurrency {
		err = v.rail.PayNative(account, amount)
	} else {
		err = v.rail.PayToken(currency, account, amount)
	}
	if err != nil {
		// 3、支付失败恢复余额,原因透传给调用方
		v.balances[k] = amount
		return decimal.Zero, wrapf(KindTransferFailure, op, err, "payout failed")
	}
	return amount, nil
}

// TotalOf 该币种下全部可领取余额之和,用于守恒检查
func (v *ClaimVault) TotalOf(currency string) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	total := decimal.Zero
	for k, bal := range v.balances {
		if k.currency == currency {
			total = total.Add(bal)
		}
	}
	return total
}
