package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// AuctionLedger 一口价保留价拍卖账本。
// 同一时刻每场拍卖只有一个竞拍人持有非零的托管出价(当前最高价),
// 其余人的资金在被超越时已转入可领取余额。
// escrow按币种累计所有仍在托管中的出价,随每次出价/取消/结算原子调整
type AuctionLedger struct {
	mu       sync.Mutex
	d        *deps
	auctions map[uint64]*Auction
	bids     map[uint64]map[string]*Bid
	highest  map[uint64]string // auctionID → 当前最高出价人,""表示尚无出价
	escrow   map[string]decimal.Decimal
	nextID   uint64
}

func newAuctionLedger(d *deps) *AuctionLedger {
	return &AuctionLedger{
		d:        d,
		auctions: make(map[uint64]*Auction),
		bids:     make(map[uint64]map[string]*Bid),
		highest:  make(map[uint64]string),
		escrow:   make(map[string]decimal.Decimal),
		nextID:   1,
	}
}

// CreateAuction 创建拍卖。准入检查与挂单一致;资产先移入平台托管
func (l *AuctionLedger) CreateAuction(seller string, item ItemRef, quantity int64, reservePrice decimal.Decimal, currency string, startTime, endTime int64) (uint64, error) {
	const op = "ledger.CreateAuction"
	l.mu.Lock()
	defer l.mu.Unlock()

	if seller == "" || !item.Standard.Valid() {
		return 0, failf(KindInvalidParams, op, "invalid seller or item standard")
	}
	if endTime <= startTime {
		return 0, failf(KindInvalidParams, op, "end time %d must be after start time %d", endTime, startTime)
	}
	if quantity <= 0 {
		return 0, failf(KindInvalidParams, op, "quantity must be positive, got %d", quantity)
	}
	if item.Standard == StandardUnique && quantity != 1 {
		return 0, failf(KindInvalidParams, op, "unique item auction requires quantity 1, got %d", quantity)
	}
	if reservePrice.IsNegative() {
		return 0, failf(KindInvalidParams, op, "negative reserve price %s", reservePrice)
	}
	if err := l.d.checkListable(op, item, currency); err != nil {
		return 0, err
	}
	if err := l.d.custody.TransferItem(item, seller, l.d.self, quantity); err != nil {
		return 0, wrapf(KindTransferFailure, op, err, "move item into custody")
	}
	id := l.nextID
	l.nextID++
	l.auctions[id] = &Auction{
		ID:           id,
		Item:         item,
		Quantity:     quantity,
		Seller:       seller,
		ReservePrice: reservePrice,
		Currency:     currency,
		StartTime:    startTime,
		EndTime:      endTime,
	}
	l.bids[id] = make(map[string]*Bid)
	return id, nil
}

// Bid 出价或在现有出价上追加。
// newTotal = 金库抵扣 + 外部支付 + 自己当前仍在托管的累计出价。
// 成为新的最高价要求 newTotal 严格大于他人的最高托管出价(相等不换人,先到者保位)。
// 保留价不在出价时拦截,而是在结算时判定,未达保留价的托管资金届时原额释放。
// 被超越者的托管资金立即转入其可领取余额。
// escrow按净增量 newTotal-之前最高托管额 调整,避免重复计入同一人已托管的资金
func (l *AuctionLedger) Bid(auctionID uint64, bidder string, fromVault, external, nativeAttached decimal.Decimal) error {
	const op = "ledger.Bid"
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[auctionID]
	if !ok {
		return failf(KindNotFound, op, "auction %d does not exist", auctionID)
	}
	// 1、状态检查:仅ACTIVE可出价
	if st := auctionStatus(a, l.d.now(), l.d.deprecated()); st != StatusActive {
		return failf(KindInvalidState, op, "auction %d is %s, not ACTIVE", auctionID, st)
	}
	if bidder == "" {
		return failf(KindInvalidParams, op, "empty bidder")
	}
	if fromVault.IsNegative() || external.IsNegative() {
		return failf(KindInvalidParams, op, "negative bid funds")
	}
	increment := fromVault.Add(external)
	if !increment.IsPositive() {
		return failf(KindInvalidParams, op, "bid must commit new funds")
	}
	if fromVault.GreaterThan(l.d.vault.Balance(bidder, a.Currency)) {
		return failf(KindInsufficientFunds, op, "vault balance below requested portion %s", fromVault)
	}

	// 2、计算累计出价并与他人的最高托管出价比较。
	// 自己追加出价时比较基线是他人的金额,不能拿自己当前的出价作门槛
	standing := decimal.Zero
	if b := l.bids[auctionID][bidder]; b != nil {
		standing = b.Amount
	}
	newTotal := standing.Add(increment)

	incumbent := l.highest[auctionID]
	baseline := decimal.Zero
	prevHighest := decimal.Zero
	if incumbent != "" {
		prevHighest = l.bids[auctionID][incumbent].Amount
		if incumbent != bidder {
			baseline = prevHighest
		}
	}
	if !newTotal.GreaterThan(baseline) {
		return failf(KindInsufficientFunds, op, "bid %s does not beat standing high bid %s", newTotal, baseline)
	}

	// 3、收取外部支付,失败则无任何状态变更
	if err := l.d.collect(op, a.Currency, bidder, external, nativeAttached); err != nil {
		return err
	}

	// 4、扣减金库抵扣部分。金库有自己的锁,上面的余额校验之后
	// 余额仍可能被并发的领取/购买花掉,所以这笔扣减必须在给被超越者
	// 退款等任何记账提交之前完成:此处失败只需退回已收外部资金即全额回滚
	if err := l.d.vault.debit(bidder, a.Currency, fromVault); err != nil {
		_ = l.d.refund(a.Currency, bidder, external)
		return err
	}

	// 5、提交记账,此后无失败路径:
	// 被超越者退款进可领取余额(不自动原路退回)、托管净增量、最高价指针
	if incumbent != "" && incumbent != bidder {
		prev := l.bids[auctionID][incumbent]
		l.d.vault.credit(incumbent, a.Currency, prev.Amount)
		prev.Amount = decimal.Zero
	}
	l.escrow[a.Currency] = l.escrow[a.Currency].Add(newTotal.Sub(prevHighest))

	b := l.bids[auctionID][bidder]
	if b == nil {
		b = &Bid{Bidder: bidder}
		l.bids[auctionID][bidder] = b
	}
	b.Amount = newTotal
	b.UpdatedAt = l.d.now()
	l.highest[auctionID] = bidder
	return nil
}

// Resolve 结算拍卖,赢家、卖家或管理员在状态为CANCELLED或ENDED后发起。
// 保留价达成且未取消:赢家得到资产,成交额按手续费/版税/卖家三方分账并移出托管;
// 否则资产退回卖家,不做任何支付处理(取消路径已释放托管资金,不能二次结算)。
// claimed标记单向置真,使拍卖终结并阻止重复结算
func (l *AuctionLedger) Resolve(auctionID uint64, caller string) error {
	const op = "ledger.Resolve"
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[auctionID]
	if !ok {
		return failf(KindNotFound, op, "auction %d does not exist", auctionID)
	}
	// 已取消的拍卖派生状态仍是CANCELLED,所以claimed要单独作为结算屏障检查
	if a.Claimed {
		return failf(KindInvalidState, op, "auction %d already settled", auctionID)
	}
	st := auctionStatus(a, l.d.now(), l.d.deprecated())
	if st != StatusCancelled && st != StatusEnded {
		return failf(KindInvalidState, op, "auction %d is %s, not CANCELLED or ENDED", auctionID, st)
	}

	winner := l.highest[auctionID]
	winning := decimal.Zero
	if winner != "" {
		winning = l.bids[auctionID][winner].Amount
	}
	if caller == "" || (caller != winner && caller != a.Seller && caller != l.d.admin) {
		return failf(KindUnauthorized, op, "caller %q may not settle auction %d", caller, auctionID)
	}
	// 取消过的拍卖托管资金已在取消时释放,这里绝不能再走支付分账
	pay := !a.Cancelled && winner != "" && !winning.LessThan(a.ReservePrice) && winning.IsPositive()

	var sp proceedsSplit
	if pay {
		var err error
		sp, err = l.d.splitProceeds(op, a.Item, a.Seller, a.Currency, winning)
		if err != nil {
			return err
		}
	}

	// 提交记账
	a.Claimed = true
	itemTo := a.Seller
	if pay {
		itemTo = winner
		l.bids[auctionID][winner].Amount = decimal.Zero
		l.escrow[a.Currency] = l.escrow[a.Currency].Sub(winning)
	}
	// 资产交付,失败则回滚记账
	if err := l.d.custody.TransferItem(a.Item, l.d.self, itemTo, a.Quantity); err != nil {
		a.Claimed = false
		if pay {
			l.bids[auctionID][winner].Amount = winning
			l.escrow[a.Currency] = l.escrow[a.Currency].Add(winning)
		}
		return wrapf(KindTransferFailure, op, err, "deliver auction item")
	}
	if pay {
		l.d.creditSplit(sp)
	} else if !a.Cancelled && winner != "" && winning.IsPositive() {
		// 保留价未达成:托管的最高出价释放为竞拍人的可领取余额,资金从未被花掉
		l.bids[auctionID][winner].Amount = decimal.Zero
		l.escrow[a.Currency] = l.escrow[a.Currency].Sub(winning)
		l.d.vault.credit(winner, a.Currency, winning)
	}
	return nil
}

// Cancel 取消拍卖。仅卖家或管理员,状态须为ACTIVE或PENDING。
// 当前最高出价的托管资金转入该竞拍人的可领取余额,与出价被超越的退款逻辑对称
func (l *AuctionLedger) Cancel(auctionID uint64, caller string) error {
	const op = "ledger.CancelAuction"
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[auctionID]
	if !ok {
		return failf(KindNotFound, op, "auction %d does not exist", auctionID)
	}
	if caller != a.Seller && caller != l.d.admin {
		return failf(KindUnauthorized, op, "caller %s is neither seller nor admin", caller)
	}
	st := auctionStatus(a, l.d.now(), l.d.deprecated())
	if st != StatusActive && st != StatusPending {
		return failf(KindInvalidState, op, "auction %d is %s, not ACTIVE or PENDING", auctionID, st)
	}
	a.Cancelled = true
	if incumbent := l.highest[auctionID]; incumbent != "" {
		b := l.bids[auctionID][incumbent]
		if b.Amount.IsPositive() {
			l.escrow[a.Currency] = l.escrow[a.Currency].Sub(b.Amount)
			l.d.vault.credit(incumbent, a.Currency, b.Amount)
			b.Amount = decimal.Zero
		}
	}
	return nil
}

// Get 返回拍卖记录副本和当前派生状态
func (l *AuctionLedger) Get(auctionID uint64) (Auction, Status, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.auctions[auctionID]
	if !ok {
		return Auction{}, 0, failf(KindNotFound, "ledger.GetAuction", "auction %d does not exist", auctionID)
	}
	return *a, auctionStatus(a, l.d.now(), l.d.deprecated()), nil
}

// BidOf 某竞拍人在某场拍卖中的托管出价详情
func (l *AuctionLedger) BidOf(auctionID uint64, bidder string) (Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.auctions[auctionID]; !ok {
		return Bid{}, failf(KindNotFound, "ledger.BidOf", "auction %d does not exist", auctionID)
	}
	b := l.bids[auctionID][bidder]
	if b == nil {
		return Bid{Bidder: bidder, Amount: decimal.Zero}, nil
	}
	return *b, nil
}

// HighestBid 当前最高出价人及其托管金额,无人出价时bidder为空串
func (l *AuctionLedger) HighestBid(auctionID uint64) (string, decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.auctions[auctionID]; !ok {
		return "", decimal.Zero, failf(KindNotFound, "ledger.HighestBid", "auction %d does not exist", auctionID)
	}
	bidder := l.highest[auctionID]
	if bidder == "" {
		return "", decimal.Zero, nil
	}
	return bidder, l.bids[auctionID][bidder].Amount, nil
}

// Escrow 该币种当前仍在托管中的资金总额
func (l *AuctionLedger) Escrow(currency string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.escrow[currency]
}
