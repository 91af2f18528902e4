package chainsim

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"NFTMarketLedger/src/ledger"
)

type royaltyTerms struct {
	artist string
	rate   int64
	scale  int64
}

// Custody 进程内资产托管簿,同时承担版税条款登记。
// unique资产记录唯一持有人,fungible资产按账户记数量
type Custody struct {
	mu sync.Mutex
	// contract → itemID → owner
	owners map[string]map[uint64]string
	// contract → itemID → account → 持有数量
	holdings map[string]map[uint64]map[string]int64
	// contract → 版税条款,登记即视为实现版税查询能力
	royalties map[string]royaltyTerms
}

func NewCustody() *Custody {
	return &Custody{
		owners:    make(map[string]map[uint64]string),
		holdings:  make(map[string]map[uint64]map[string]int64),
		royalties: make(map[string]royaltyTerms),
	}
}

// RegisterContract 登记资产合约的版税条款: royalty = floor(price * rate / scale)
func (c *Custody) RegisterContract(contract, artist string, rate, scale int64) error {
	if scale <= 0 || rate < 0 || rate > scale {
		return errors.Errorf("invalid royalty rate %d/%d for %s", rate, scale, contract)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.royalties[contract] = royaltyTerms{artist: artist, rate: rate, scale: scale}
	return nil
}

// MintUnique 铸造unique资产给owner
func (c *Custody) MintUnique(contract string, itemID uint64, owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owners[contract] == nil {
		c.owners[contract] = make(map[uint64]string)
	}
	if cur, ok := c.owners[contract][itemID]; ok {
		return errors.Errorf("item %d of %s already minted to %s", itemID, contract, cur)
	}
	c.owners[contract][itemID] = owner
	return nil
}

// MintQuantity 给账户铸入fungible资产数量
func (c *Custody) MintQuantity(contract string, itemID uint64, owner string, qty int64) error {
	if qty <= 0 {
		return errors.Errorf("mint quantity must be positive, got %d", qty)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.holdings[contract] == nil {
		c.holdings[contract] = make(map[uint64]map[string]int64)
	}
	if c.holdings[contract][itemID] == nil {
		c.holdings[contract][itemID] = make(map[string]int64)
	}
	c.holdings[contract][itemID][owner] += qty
	return nil
}

func (c *Custody) OwnerOf(contract string, itemID uint64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owners[contract][itemID]
}

func (c *Custody) QuantityOf(contract string, itemID uint64, account string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holdings[contract][itemID][account]
}

// SupportsRoyalty 登记过版税条款的合约视为实现了版税查询能力
func (c *Custody) SupportsRoyalty(contract string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.royalties[contract]
	return ok
}

// RoyaltyInfo 按登记条款计算本次成交的版税
func (c *Custody) RoyaltyInfo(contract string, itemID uint64, salePrice decimal.Decimal) (string, decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	terms, ok := c.royalties[contract]
	if !ok {
		return "", decimal.Zero, errors.Errorf("contract %s has no royalty terms", contract)
	}
	royalty, _ := salePrice.Mul(decimal.NewFromInt(terms.rate)).QuoRem(decimal.NewFromInt(terms.scale), 0)
	return terms.artist, royalty, nil
}

// TransferItem 在两个账户间转移资产,按数量模型分派
func (c *Custody) TransferItem(item ledger.ItemRef, from, to string, qty int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch item.Standard {
	case ledger.StandardUnique:
		if qty != 1 {
			return errors.Errorf("unique item transfer requires qty 1, got %d", qty)
		}
		if c.owners[item.Contract][item.ItemID] != from {
			return errors.Errorf("%s does not own item %d of %s", from, item.ItemID, item.Contract)
		}
		c.owners[item.Contract][item.ItemID] = to
		return nil
	case ledger.StandardFungible:
		if qty <= 0 {
			return errors.Errorf("transfer quantity must be positive, got %d", qty)
		}
		held := c.holdings[item.Contract][item.ItemID][from]
		if held < qty {
			return errors.Errorf("%s holds %d of item %d, cannot transfer %d", from, held, item.ItemID, qty)
		}
		c.holdings[item.Contract][item.ItemID][from] = held - qty
		c.holdings[item.Contract][item.ItemID][to] += qty
		return nil
	default:
		return errors.Errorf("unknown token standard %d", item.Standard)
	}
}
