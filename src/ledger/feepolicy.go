package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// FeePolicy 平台手续费策略: fee = floor(gross * rate / scale)。
// rate/scale 由管理员配置,默认 300/10000 即3%
type FeePolicy struct {
	mu        sync.RWMutex
	rate      int64
	scale     int64
	recipient string
}

const (
	DefaultFeeRate  = 300
	DefaultFeeScale = 10000
)

func NewFeePolicy(rate, scale int64, recipient string) (*FeePolicy, error) {
	if scale <= 0 || rate < 0 || rate > scale {
		return nil, failf(KindInvalidParams, "ledger.NewFeePolicy", "invalid fee rate %d/%d", rate, scale)
	}
	if recipient == "" {
		return nil, failf(KindInvalidParams, "ledger.NewFeePolicy", "empty fee recipient")
	}
	return &FeePolicy{rate: rate, scale: scale, recipient: recipient}, nil
}

// FeeInfo 计算gross对应的手续费和收款人。rate ≤ scale 由设置入口保证,
// 所以 fee ≤ gross 恒成立
func (p *FeePolicy) FeeInfo(gross decimal.Decimal) (string, decimal.Decimal) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	// QuoRem精度0等价于整数除法向下取整(gross非负)
	fee, _ := gross.Mul(decimal.NewFromInt(p.rate)).QuoRem(decimal.NewFromInt(p.scale), 0)
	return p.recipient, fee
}

// SetFee 设置费率。与当前值相同是幂等空操作,返回false且不触发变更通知
func (p *FeePolicy) SetFee(rate, scale int64) (bool, error) {
	if scale <= 0 || rate < 0 || rate > scale {
		return false, failf(KindInvalidParams, "ledger.SetFee", "invalid fee rate %d/%d", rate, scale)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rate == rate && p.scale == scale {
		return false, nil
	}
	p.rate, p.scale = rate, scale
	return true, nil
}

func (p *FeePolicy) SetRecipient(recipient string) (bool, error) {
	if recipient == "" {
		return false, failf(KindInvalidParams, "ledger.SetRecipient", "empty fee recipient")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.recipient == recipient {
		return false, nil
	}
	p.recipient = recipient
	return true, nil
}

// Fee 返回当前费率配置
func (p *FeePolicy) Fee() (rate, scale int64, recipient string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rate, p.scale, p.recipient
}
