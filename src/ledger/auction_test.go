package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"NFTMarketLedger/src/chainsim"
	"NFTMarketLedger/src/ledger"
)

// 规格场景:保留价100,A出200,B出300。
// A出价后escrow=200;B出价后escrow=300,A的可领取余额=200
func TestOutbidRefund(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 200)
	f.fundToken(addrBidderB, 300)

	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero); err != nil {
		t.Fatalf("bid A: %v", err)
	}
	wantDec(t, "escrow after A", f.m.Auctions.Escrow(tokenX), 200)
	bidder, amount, err := f.m.Auctions.HighestBid(auctionID)
	if err != nil {
		t.Fatalf("HighestBid: %v", err)
	}
	if bidder != addrBidderA {
		t.Fatalf("highest bidder = %s, want A", bidder)
	}
	wantDec(t, "highest amount", amount, 200)

	if err := f.m.Auctions.Bid(auctionID, addrBidderB, decimal.Zero, dec(300), decimal.Zero); err != nil {
		t.Fatalf("bid B: %v", err)
	}
	wantDec(t, "escrow after B", f.m.Auctions.Escrow(tokenX), 300)
	wantDec(t, "A refund claimable", f.m.Vault.Balance(addrBidderA, tokenX), 200)

	// A的托管记录清零,B是新的最高价
	bidA, err := f.m.Auctions.BidOf(auctionID, addrBidderA)
	if err != nil {
		t.Fatalf("BidOf: %v", err)
	}
	wantDec(t, "A standing bid", bidA.Amount, 0)
	bidder, amount, _ = f.m.Auctions.HighestBid(auctionID)
	if bidder != addrBidderB {
		t.Fatalf("highest bidder = %s, want B", bidder)
	}
	wantDec(t, "highest amount", amount, 300)
	f.checkConservation()
}

// 规格场景:追加出价。先出100,再追加150,
// 追加时的比较基线是他人的出价,不是自己已托管的100
func TestTopOffBid(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 250)

	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(100), decimal.Zero); err != nil {
		t.Fatalf("first bid: %v", err)
	}
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(150), decimal.Zero); err != nil {
		t.Fatalf("top-off bid: %v", err)
	}
	_, amount, _ := f.m.Auctions.HighestBid(auctionID)
	wantDec(t, "cumulative bid", amount, 250)
	wantDec(t, "escrow", f.m.Auctions.Escrow(tokenX), 250)
	// 自己没有被退款
	wantDec(t, "A claimable", f.m.Vault.Balance(addrBidderA, tokenX), 0)
	f.checkConservation()
}

// 相等的出价不换人:先到者保位
func TestEqualBidDoesNotSupplant(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 200)
	f.fundToken(addrBidderB, 200)

	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero); err != nil {
		t.Fatalf("bid A: %v", err)
	}
	err := f.m.Auctions.Bid(auctionID, addrBidderB, decimal.Zero, dec(200), decimal.Zero)
	wantKind(t, err, ledger.KindInsufficientFunds)
	bidder, _, _ := f.m.Auctions.HighestBid(auctionID)
	if bidder != addrBidderA {
		t.Fatalf("incumbent displaced by equal bid: highest = %s", bidder)
	}
	// 失败的出价不动B的资金
	wantDec(t, "B token balance", f.bank.TokenBalance(tokenX, addrBidderB), 200)
	f.checkConservation()
}

func TestBidPreconditions(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 1000)

	tests := []struct {
		name string
		fn   func() error
		kind ledger.Kind
	}{
		{"auction not found", func() error {
			return f.m.Auctions.Bid(99, addrBidderA, decimal.Zero, dec(200), decimal.Zero)
		}, ledger.KindNotFound},
		{"no new funds", func() error {
			return f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, decimal.Zero, decimal.Zero)
		}, ledger.KindInvalidParams},
		{"vault portion above balance", func() error {
			return f.m.Auctions.Bid(auctionID, addrBidderA, dec(50), dec(100), decimal.Zero)
		}, ledger.KindInsufficientFunds},
		{"native attached on token auction", func() error {
			return f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), dec(200))
		}, ledger.KindInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantKind(t, tt.fn(), tt.kind)
		})
	}

	// PENDING与ENDED都不可出价
	f.now = 100
	wantKind(t, f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero), ledger.KindInvalidState)
	f.now = 2500
	wantKind(t, f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero), ledger.KindInvalidState)
	f.now = 1000
	wantDec(t, "escrow untouched", f.m.Auctions.Escrow(tokenX), 0)
	f.checkConservation()
}

// 金库余额抵扣出价:被超越的退款可以直接用于追加
func TestBidFromVaultBalance(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 200)
	f.fundToken(addrBidderB, 300)

	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero); err != nil {
		t.Fatalf("bid A: %v", err)
	}
	if err := f.m.Auctions.Bid(auctionID, addrBidderB, decimal.Zero, dec(300), decimal.Zero); err != nil {
		t.Fatalf("bid B: %v", err)
	}
	// A被退了200,全部抵扣再补150外部,总价350
	f.fundToken(addrBidderA, 150)
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, dec(200), dec(150), decimal.Zero); err != nil {
		t.Fatalf("bid A with vault portion: %v", err)
	}
	wantDec(t, "A claimable spent", f.m.Vault.Balance(addrBidderA, tokenX), 0)
	wantDec(t, "B refunded", f.m.Vault.Balance(addrBidderB, tokenX), 300)
	wantDec(t, "escrow", f.m.Auctions.Escrow(tokenX), 350)
	bidder, amount, _ := f.m.Auctions.HighestBid(auctionID)
	if bidder != addrBidderA {
		t.Fatalf("highest = %s, want A", bidder)
	}
	wantDec(t, "highest amount", amount, 350)
	f.checkConservation()
}

// 正常结算:保留价达成,赢家得资产,成交额三方分账并移出托管
func TestResolveSettlement(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftRoyalty, 1, 100)
	f.fundToken(addrBidderA, 1000)
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(1000), decimal.Zero); err != nil {
		t.Fatalf("bid: %v", err)
	}
	// 进行中不可结算
	wantKind(t, f.m.Auctions.Resolve(auctionID, addrBidderA), ledger.KindInvalidState)

	f.now = 2500
	if err := f.m.Auctions.Resolve(auctionID, addrBidderA); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if owner := f.custody.OwnerOf(nftRoyalty, 1); owner != addrBidderA {
		t.Fatalf("item owner = %s, want winner", owner)
	}
	wantDec(t, "escrow drained", f.m.Auctions.Escrow(tokenX), 0)
	wantDec(t, "fee", f.m.Vault.Balance(addrFee, tokenX), 30)
	wantDec(t, "royalty", f.m.Vault.Balance(addrArtist, tokenX), 50)
	wantDec(t, "seller", f.m.Vault.Balance(addrSeller, tokenX), 920)

	_, st, _ := f.m.Auctions.Get(auctionID)
	if st != ledger.StatusEndedClaimed {
		t.Fatalf("status = %s, want ENDED_CLAIMED", st)
	}
	f.checkConservation()
}

// 至多结算一次:第二次Resolve失败且不产生任何支付变化
func TestAtMostOneSettlement(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 200)
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero); err != nil {
		t.Fatalf("bid: %v", err)
	}
	f.now = 2500
	if err := f.m.Auctions.Resolve(auctionID, addrSeller); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	sellerBefore := f.m.Vault.Balance(addrSeller, tokenX)

	err := f.m.Auctions.Resolve(auctionID, addrSeller)
	wantKind(t, err, ledger.KindInvalidState)
	wantDec(t, "seller balance unchanged", f.m.Vault.Balance(addrSeller, tokenX), sellerBefore.IntPart())
	f.checkConservation()
}

// 规格场景:保留价300,结束时最高出价250。
// 结算把资产退回卖家,不做支付分账,250原额释放为竞拍人的可领取余额
func TestReserveNotMet(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 300)
	f.fundToken(addrBidderA, 250)
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(250), decimal.Zero); err != nil {
		t.Fatalf("bid below reserve: %v", err)
	}
	wantDec(t, "escrow", f.m.Auctions.Escrow(tokenX), 250)

	f.now = 2500
	if err := f.m.Auctions.Resolve(auctionID, addrSeller); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if owner := f.custody.OwnerOf(nftPlain, 1); owner != addrSeller {
		t.Fatalf("item owner = %s, want seller", owner)
	}
	// 没有任何分账,250从托管释放、可随时领取
	wantDec(t, "seller claimable", f.m.Vault.Balance(addrSeller, tokenX), 0)
	wantDec(t, "bidder claimable", f.m.Vault.Balance(addrBidderA, tokenX), 250)
	wantDec(t, "escrow drained", f.m.Auctions.Escrow(tokenX), 0)
	f.checkConservation()
}

// 没有任何出价:结算直接退回卖家
func TestResolveNoBids(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 2, 300)
	f.now = 2500
	if err := f.m.Auctions.Resolve(auctionID, addrSeller); err != nil {
		t.Fatalf("Resolve no-bid auction: %v", err)
	}
	if owner := f.custody.OwnerOf(nftPlain, 2); owner != addrSeller {
		t.Fatalf("item owner = %s, want seller", owner)
	}
	f.checkConservation()
}

func TestCancelAuctionReleasesEscrow(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 200)
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero); err != nil {
		t.Fatalf("bid: %v", err)
	}
	// 无关人员不能取消
	wantKind(t, f.m.Auctions.Cancel(auctionID, addrBidderA), ledger.KindUnauthorized)

	if err := f.m.Auctions.Cancel(auctionID, addrSeller); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	// 托管释放,与被超越退款对称
	wantDec(t, "escrow", f.m.Auctions.Escrow(tokenX), 0)
	wantDec(t, "bidder claimable", f.m.Vault.Balance(addrBidderA, tokenX), 200)

	// 重复取消被状态前置条件挡住
	wantKind(t, f.m.Auctions.Cancel(auctionID, addrSeller), ledger.KindInvalidState)

	// 取消后的结算:资产退卖家,绝不二次处理支付
	if err := f.m.Auctions.Resolve(auctionID, addrSeller); err != nil {
		t.Fatalf("Resolve cancelled auction: %v", err)
	}
	if owner := f.custody.OwnerOf(nftPlain, 1); owner != addrSeller {
		t.Fatalf("item owner = %s, want seller", owner)
	}
	wantDec(t, "bidder claimable unchanged", f.m.Vault.Balance(addrBidderA, tokenX), 200)
	// 取消+已结算的拍卖再结算仍然失败
	wantKind(t, f.m.Auctions.Resolve(auctionID, addrSeller), ledger.KindInvalidState)
	f.checkConservation()
}

func TestResolveAuthorization(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 200)
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero); err != nil {
		t.Fatalf("bid: %v", err)
	}
	f.now = 2500
	// 与拍卖无关的地址不能发起结算
	wantKind(t, f.m.Auctions.Resolve(auctionID, addrBidderB), ledger.KindUnauthorized)
	// 管理员可以
	if err := f.m.Auctions.Resolve(auctionID, addrAdmin); err != nil {
		t.Fatalf("admin Resolve: %v", err)
	}
}

func TestAuctionStatusPrecedence(t *testing.T) {
	f := newFixture(t)
	auctionID := f.uniqueAuction(nftPlain, 1, 100)

	check := func(want ledger.Status) {
		t.Helper()
		_, st, err := f.m.Auctions.Get(auctionID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if st != want {
			t.Fatalf("status = %s, want %s", st, want)
		}
	}

	f.now = 100
	check(ledger.StatusPending)
	f.now = 1500
	check(ledger.StatusActive)
	f.now = 2000
	check(ledger.StatusEnded)

	f.m.Registry.SetListingContractApproval(addrMarket, false)
	check(ledger.StatusCancelled)
	f.m.Registry.SetListingContractApproval(addrMarket, true)

	if err := f.m.Auctions.Resolve(auctionID, addrSeller); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	check(ledger.StatusEndedClaimed)
}

func TestCreateAuctionValidation(t *testing.T) {
	f := newFixture(t)
	f.mintUnique(nftPlain, 1, addrSeller)
	item := ledger.ItemRef{Contract: nftPlain, ItemID: 1, Standard: ledger.StandardUnique}

	tests := []struct {
		name string
		fn   func() (uint64, error)
		kind ledger.Kind
	}{
		{"bad window", func() (uint64, error) {
			return f.m.Auctions.CreateAuction(addrSeller, item, 1, dec(100), tokenX, 2000, 2000)
		}, ledger.KindInvalidParams},
		{"unique qty 2", func() (uint64, error) {
			return f.m.Auctions.CreateAuction(addrSeller, item, 2, dec(100), tokenX, 500, 2000)
		}, ledger.KindInvalidParams},
		{"negative reserve", func() (uint64, error) {
			return f.m.Auctions.CreateAuction(addrSeller, item, 1, dec(-5), tokenX, 500, 2000)
		}, ledger.KindInvalidParams},
		{"unapproved currency", func() (uint64, error) {
			return f.m.Auctions.CreateAuction(addrSeller, item, 1, dec(100), "0xbadc02", 500, 2000)
		}, ledger.KindIneligibleAsset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			wantKind(t, err, tt.kind)
		})
	}

	// 挂单与拍卖的id各自独立计数
	saleID := f.uniqueSale(nftPlain, 2, 100)
	auctionID := f.uniqueAuction(nftPlain, 3, 100)
	if saleID != 1 || auctionID != 1 {
		t.Fatalf("ids not independent: sale %d, auction %d", saleID, auctionID)
	}
}

// drainRail 包装Bank,收款成功后立刻把目标账户的金库余额领走,
// 模拟出价校验与金库扣减之间并发Claim掏空余额的交错
type drainRail struct {
	*chainsim.Bank
	m      *ledger.Market
	target string
	armed  bool
}

func (r *drainRail) PullToken(currency, from string, amount decimal.Decimal) error {
	if err := r.Bank.PullToken(currency, from, amount); err != nil {
		return err
	}
	if r.armed && from == r.target {
		r.armed = false
		if _, err := r.m.Vault.Claim(r.target, currency); err != nil {
			return err
		}
	}
	return nil
}

// 金库余额在校验后被并发领走,扣减失败必须整体回滚:
// 不给被超越者重复退款、托管不变、外部资金原路退回、守恒保持
func TestBidVaultDrainedMidOperation(t *testing.T) {
	f := &fixture{t: t, now: 1000}
	f.bank = chainsim.NewBank(addrMarket)
	f.custody = chainsim.NewCustody()
	rail := &drainRail{Bank: f.bank, target: addrBidderA}

	m, err := ledger.NewMarket(ledger.Config{
		SelfAddress:  addrMarket,
		Admin:        addrAdmin,
		FeeRate:      300,
		FeeScale:     10000,
		FeeRecipient: addrFee,
		Custody:      f.custody,
		Rail:         rail,
		Now:          func() int64 { return f.now },
	})
	if err != nil {
		t.Fatalf("NewMarket: %v", err)
	}
	f.m = m
	rail.m = m
	m.Registry.SetListingContractApproval(addrMarket, true)
	m.Registry.SetListingContractApproval(nftPlain, true)
	m.Registry.SetCurrencyApproval(tokenX, true)
	if err := f.custody.RegisterContract(nftPlain, "", 0, 1); err != nil {
		t.Fatalf("RegisterContract: %v", err)
	}

	auctionID := f.uniqueAuction(nftPlain, 1, 100)
	f.fundToken(addrBidderA, 400)
	f.fundToken(addrBidderB, 300)
	if err := f.m.Auctions.Bid(auctionID, addrBidderA, decimal.Zero, dec(200), decimal.Zero); err != nil {
		t.Fatalf("bid A: %v", err)
	}
	if err := f.m.Auctions.Bid(auctionID, addrBidderB, decimal.Zero, dec(300), decimal.Zero); err != nil {
		t.Fatalf("bid B: %v", err)
	}
	wantDec(t, "A refund claimable", f.m.Vault.Balance(addrBidderA, tokenX), 200)

	// A用金库200+外部150再出价;收外部款时金库余额被领走,扣减必然失败
	rail.armed = true
	err = f.m.Auctions.Bid(auctionID, addrBidderA, dec(200), dec(150), decimal.Zero)
	wantKind(t, err, ledger.KindInsufficientFunds)

	bidder, amount, err := f.m.Auctions.HighestBid(auctionID)
	if err != nil {
		t.Fatalf("HighestBid: %v", err)
	}
	if bidder != addrBidderB {
		t.Fatalf("highest bidder = %s, want B", bidder)
	}
	wantDec(t, "highest amount", amount, 300)
	wantDec(t, "escrow", f.m.Auctions.Escrow(tokenX), 300)
	wantDec(t, "A claimable", f.m.Vault.Balance(addrBidderA, tokenX), 0)
	// 400 - 200(首次出价) - 150(外部) + 200(领取) + 150(退回) = 400
	wantDec(t, "A token balance", f.bank.TokenBalance(tokenX, addrBidderA), 400)
	f.checkConservation()

	// 失败的出价不留残留,拍卖照常结算
	f.now = 2000
	if err := f.m.Auctions.Resolve(auctionID, addrBidderB); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	f.checkConservation()
}
