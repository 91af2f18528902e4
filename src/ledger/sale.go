package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// ListingLedger 固定价格挂单账本。持有互斥锁把每个操作串行化执行,
// 锁内先完成校验和收款、再提交内部记账、最后做对外转移,
// 对外转移失败时按快照回滚,保证操作整体要么全部生效要么全部不生效
type ListingLedger struct {
	mu    sync.Mutex
	d     *deps
	sales map[uint64]*Sale
	// 每个挂单按买家统计的已购数量
	buyerTally map[uint64]map[string]int64
	nextID     uint64
}

func newListingLedger(d *deps) *ListingLedger {
	return &ListingLedger{
		d:          d,
		sales:      make(map[uint64]*Sale),
		buyerTally: make(map[uint64]map[string]int64),
		nextID:     1,
	}
}

// CreateSale 创建固定价格挂单。
// 前置条件:平台自身、资产合约、结算币种均在准入名单内,
// 资产合约实现版税查询能力,end > start,unique资产数量必须为1。
// 资产先移入平台托管,托管失败时不分配id、不留任何状态
func (l *ListingLedger) CreateSale(seller string, item ItemRef, amount int64, price decimal.Decimal, currency string, startTime, endTime int64) (uint64, error) {
	const op = "ledger.CreateSale"
	l.mu.Lock()
	defer l.mu.Unlock()

	// 1、参数校验
	if seller == "" || !item.Standard.Valid() {
		return 0, failf(KindInvalidParams, op, "invalid seller or item standard")
	}
	if endTime <= startTime {
		return 0, failf(KindInvalidParams, op, "end time %d must be after start time %d", endTime, startTime)
	}
	if amount <= 0 {
		return 0, failf(KindInvalidParams, op, "amount must be positive, got %d", amount)
	}
	if item.Standard == StandardUnique && amount != 1 {
		return 0, failf(KindInvalidParams, op, "unique item sale requires amount 1, got %d", amount)
	}
	if price.IsNegative() {
		return 0, failf(KindInvalidParams, op, "negative price %s", price)
	}
	// 2、准入检查
	if err := l.d.checkListable(op, item, currency); err != nil {
		return 0, err
	}
	// 3、资产移入平台托管,失败则整个操作不生效
	if err := l.d.custody.TransferItem(item, seller, l.d.self, amount); err != nil {
		return 0, wrapf(KindTransferFailure, op, err, "move item into custody")
	}
	// 4、分配id并落账
	id := l.nextID
	l.nextID++
	l.sales[id] = &Sale{
		ID:        id,
		Item:      item,
		Seller:    seller,
		Price:     price,
		Currency:  currency,
		Amount:    amount,
		StartTime: startTime,
		EndTime:   endTime,
	}
	return id, nil
}

// Buy 购买挂单中的quantity份。
// 支付 = 买家金库余额抵扣(fromVault) + 外部支付(原生币附带或代币授权拉取)。
// 分账顺序:手续费→版税→卖家余款,全部记入可领取余额
func (l *ListingLedger) Buy(saleID uint64, buyer, recipient string, quantity int64, fromVault, nativeAttached decimal.Decimal) error {
	const op = "ledger.Buy"
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sales[saleID]
	if !ok {
		return failf(KindNotFound, op, "sale %d does not exist", saleID)
	}
	// 1、状态检查:仅ACTIVE可买
	if st := saleStatus(s, l.d.now(), l.d.deprecated()); st != StatusActive {
		return failf(KindInvalidState, op, "sale %d is %s, not ACTIVE", saleID, st)
	}
	// 2、数量与余额检查
	if quantity <= 0 {
		return failf(KindInvalidParams, op, "quantity must be positive, got %d", quantity)
	}
	if recipient == "" {
		recipient = buyer
	}
	if quantity > s.Amount-s.Purchased {
		return failf(KindInsufficientFunds, op, "insufficient stock: want %d, remaining %d", quantity, s.Amount-s.Purchased)
	}
	gross := s.Price.Mul(decimal.NewFromInt(quantity))
	if fromVault.IsNegative() || fromVault.GreaterThan(gross) {
		return failf(KindInvalidParams, op, "vault portion %s out of range for gross %s", fromVault, gross)
	}
	if fromVault.GreaterThan(l.d.vault.Balance(buyer, s.Currency)) {
		return failf(KindInsufficientFunds, op, "vault balance below requested portion %s", fromVault)
	}
	// 3、分账计算(只读,含每次都重新查询的版税)
	sp, err := l.d.splitProceeds(op, s.Item, s.Seller, s.Currency, gross)
	if err != nil {
		return err
	}
	// 4、收取外部支付,失败则无任何状态变更
	external := gross.Sub(fromVault)
	if err := l.d.collect(op, s.Currency, buyer, external, nativeAttached); err != nil {
		return err
	}
	// 5、提交内部记账
	if err := l.d.vault.debit(buyer, s.Currency, fromVault); err != nil {
		// 余额已在前面校验过,到这一步失败属于内部一致性故障
		_ = l.d.refund(s.Currency, buyer, external)
		return err
	}
	s.Purchased += quantity
	if l.buyerTally[saleID] == nil {
		l.buyerTally[saleID] = make(map[string]int64)
	}
	l.buyerTally[saleID][buyer] += quantity

	// 6、资产交付,失败则回滚记账并退回已收款项
	if err := l.d.custody.TransferItem(s.Item, l.d.self, recipient, quantity); err != nil {
		s.Purchased -= quantity
		l.buyerTally[saleID][buyer] -= quantity
		l.d.vault.credit(buyer, s.Currency, fromVault)
		_ = l.d.refund(s.Currency, buyer, external)
		return wrapf(KindTransferFailure, op, err, "deliver item")
	}
	// 7、分账入账(纯内部操作,放在对外交付之后,不再有失败路径)
	l.d.creditSplit(sp)
	return nil
}

// ClaimSaleItems 卖家取回未售出的库存。
// 前置条件:状态为CANCELLED或ENDED、调用者是卖家、还有未售库存。
// purchased跳到amount标记库存已处置,前置条件天然保证至多执行一次
func (l *ListingLedger) ClaimSaleItems(saleID uint64, caller string) (int64, error) {
	const op = "ledger.ClaimSaleItems"
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sales[saleID]
	if !ok {
		return 0, failf(KindNotFound, op, "sale %d does not exist", saleID)
	}
	if caller != s.Seller {
		return 0, failf(KindUnauthorized, op, "caller %s is not the seller", caller)
	}
	st := saleStatus(s, l.d.now(), l.d.deprecated())
	if st != StatusCancelled && st != StatusEnded {
		return 0, failf(KindInvalidState, op, "sale %d is %s, not CANCELLED or ENDED", saleID, st)
	}
	remaining := s.Amount - s.Purchased
	if remaining <= 0 {
		return 0, failf(KindInvalidState, op, "sale %d has no unclaimed stock", saleID)
	}
	prev := s.Purchased
	s.Purchased = s.Amount
	if err := l.d.custody.TransferItem(s.Item, l.d.self, s.Seller, remaining); err != nil {
		s.Purchased = prev
		return 0, wrapf(KindTransferFailure, op, err, "return unsold stock")
	}
	return remaining, nil
}

// CancelSale 取消挂单。仅卖家或管理员可取消,且状态须为ACTIVE或PENDING。
// 再次取消会因状态前置条件失败(已是CANCELLED)
func (l *ListingLedger) CancelSale(saleID uint64, caller string) error {
	const op = "ledger.CancelSale"
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sales[saleID]
	if !ok {
		return failf(KindNotFound, op, "sale %d does not exist", saleID)
	}
	if caller != s.Seller && caller != l.d.admin {
		return failf(KindUnauthorized, op, "caller %s is neither seller nor admin", caller)
	}
	st := saleStatus(s, l.d.now(), l.d.deprecated())
	if st != StatusActive && st != StatusPending {
		return failf(KindInvalidState, op, "sale %d is %s, not ACTIVE or PENDING", saleID, st)
	}
	s.Cancelled = true
	return nil
}

// Get 返回挂单记录的副本和当前派生状态
func (l *ListingLedger) Get(saleID uint64) (Sale, Status, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sales[saleID]
	if !ok {
		return Sale{}, 0, failf(KindNotFound, "ledger.GetSale", "sale %d does not exist", saleID)
	}
	return *s, saleStatus(s, l.d.now(), l.d.deprecated()), nil
}

// PurchasedBy 某买家在某挂单中累计购得的数量
func (l *ListingLedger) PurchasedBy(saleID uint64, buyer string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buyerTally[saleID][buyer]
}
