package ledger

import (
	"sync"
)

// EligibilityRegistry 准入名单:允许挂单的资产合约和允许结算的币种。
// 两个账本在接收新挂单/拍卖前还会用它校验平台自身地址,
// 名单里把平台下线即可停止新增业务,不需要逐单的开关
type EligibilityRegistry struct {
	mu            sync.RWMutex
	contracts     map[string]bool
	currencies    map[string]bool
	allCurrencies bool // 一次性全量放开币种,设置后不可逆
}

func NewEligibilityRegistry() *EligibilityRegistry {
	return &EligibilityRegistry{
		contracts:  make(map[string]bool),
		currencies: make(map[string]bool),
	}
}

func (r *EligibilityRegistry) IsApprovedListingContract(addr string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contracts[addr]
}

func (r *EligibilityRegistry) IsApprovedCurrency(addr string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.allCurrencies || r.currencies[addr]
}

// SetListingContractApproval 设置合约准入状态。状态未变化时是幂等空操作,
// 返回false,调用方据此决定是否发变更通知
func (r *EligibilityRegistry) SetListingContractApproval(addr string, approved bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.contracts[addr] == approved {
		return false
	}
	if approved {
		r.contracts[addr] = true
	} else {
		delete(r.contracts, addr)
	}
	return true
}

func (r *EligibilityRegistry) SetCurrencyApproval(addr string, approved bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.currencies[addr] == approved {
		return false
	}
	if approved {
		r.currencies[addr] = true
	} else {
		delete(r.currencies, addr)
	}
	return true
}

// ApproveAllCurrencies 不可逆地放开全部币种
func (r *EligibilityRegistry) ApproveAllCurrencies() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.allCurrencies {
		return false
	}
	r.allCurrencies = true
	return true
}

func (r *EligibilityRegistry) AllCurrenciesApproved() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.allCurrencies
}
