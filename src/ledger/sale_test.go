package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"NFTMarketLedger/src/ledger"
)

// 规格场景:单价100、数量1、费率3%,买家全额外部支付,
// 卖家可领取余额97,买家得到资产,purchased到1,状态ACTIVE→ENDED
func TestSimpleSaleScenario(t *testing.T) {
	f := newFixture(t)
	saleID := f.uniqueSale(nftPlain, 1, 100)
	if saleID != 1 {
		t.Fatalf("first sale id = %d, want 1", saleID)
	}
	// 挂单后资产进入平台托管
	if owner := f.custody.OwnerOf(nftPlain, 1); owner != addrMarket {
		t.Fatalf("item owner after listing = %s, want market", owner)
	}
	_, st, err := f.m.Sales.Get(saleID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if st != ledger.StatusActive {
		t.Fatalf("status = %s, want ACTIVE", st)
	}

	f.fundToken(addrBuyer, 100)
	if err := f.m.Sales.Buy(saleID, addrBuyer, "", 1, decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("Buy: %v", err)
	}

	wantDec(t, "fee recipient claimable", f.m.Vault.Balance(addrFee, tokenX), 3)
	wantDec(t, "seller claimable", f.m.Vault.Balance(addrSeller, tokenX), 97)
	if owner := f.custody.OwnerOf(nftPlain, 1); owner != addrBuyer {
		t.Fatalf("item owner after buy = %s, want buyer", owner)
	}

	s, st, err := f.m.Sales.Get(saleID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Purchased != 1 {
		t.Fatalf("purchased = %d, want 1", s.Purchased)
	}
	// 库存售罄即视为ENDED
	if st != ledger.StatusEnded {
		t.Fatalf("status = %s, want ENDED", st)
	}
	if got := f.m.Sales.PurchasedBy(saleID, addrBuyer); got != 1 {
		t.Fatalf("PurchasedBy = %d, want 1", got)
	}
	f.checkConservation()
}

// 三方分账:gross=1000, fee=30(3%), royalty=50(5%), 卖家=920
func TestFeeRoyaltySplitExactness(t *testing.T) {
	f := newFixture(t)
	saleID := f.uniqueSale(nftRoyalty, 1, 1000)
	f.fundToken(addrBuyer, 1000)
	if err := f.m.Sales.Buy(saleID, addrBuyer, "", 1, decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	wantDec(t, "fee", f.m.Vault.Balance(addrFee, tokenX), 30)
	wantDec(t, "royalty", f.m.Vault.Balance(addrArtist, tokenX), 50)
	wantDec(t, "seller", f.m.Vault.Balance(addrSeller, tokenX), 920)
	f.checkConservation()
}

// 卖家即创作者时版税归零,不能给自己付版税造成重复计账
func TestRoyaltySkippedWhenArtistIsSeller(t *testing.T) {
	f := newFixture(t)
	const nftSelf = "0x00000000000000000000000000000000001f7a03"
	f.m.Registry.SetListingContractApproval(nftSelf, true)
	if err := f.custody.RegisterContract(nftSelf, addrSeller, 500, 10000); err != nil {
		t.Fatalf("RegisterContract: %v", err)
	}
	saleID := f.uniqueSale(nftSelf, 1, 1000)
	f.fundToken(addrBuyer, 1000)
	if err := f.m.Sales.Buy(saleID, addrBuyer, "", 1, decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	wantDec(t, "fee", f.m.Vault.Balance(addrFee, tokenX), 30)
	wantDec(t, "seller", f.m.Vault.Balance(addrSeller, tokenX), 970)
	f.checkConservation()
}

func TestCreateSaleValidation(t *testing.T) {
	f := newFixture(t)
	item := ledger.ItemRef{Contract: nftPlain, ItemID: 1, Standard: ledger.StandardUnique}
	f.mintUnique(nftPlain, 1, addrSeller)

	tests := []struct {
		name string
		fn   func() (uint64, error)
		kind ledger.Kind
	}{
		{"window end before start", func() (uint64, error) {
			return f.m.Sales.CreateSale(addrSeller, item, 1, dec(100), tokenX, 2000, 500)
		}, ledger.KindInvalidParams},
		{"zero amount", func() (uint64, error) {
			return f.m.Sales.CreateSale(addrSeller, item, 0, dec(100), tokenX, 500, 2000)
		}, ledger.KindInvalidParams},
		{"unique with amount 2", func() (uint64, error) {
			return f.m.Sales.CreateSale(addrSeller, item, 2, dec(100), tokenX, 500, 2000)
		}, ledger.KindInvalidParams},
		{"negative price", func() (uint64, error) {
			return f.m.Sales.CreateSale(addrSeller, item, 1, dec(-1), tokenX, 500, 2000)
		}, ledger.KindInvalidParams},
		{"unapproved currency", func() (uint64, error) {
			return f.m.Sales.CreateSale(addrSeller, item, 1, dec(100), "0xbadc01", 500, 2000)
		}, ledger.KindIneligibleAsset},
		{"unapproved contract", func() (uint64, error) {
			bad := ledger.ItemRef{Contract: "0xbadnft", ItemID: 1, Standard: ledger.StandardUnique}
			return f.m.Sales.CreateSale(addrSeller, bad, 1, dec(100), tokenX, 500, 2000)
		}, ledger.KindIneligibleAsset},
		{"seller does not own item", func() (uint64, error) {
			return f.m.Sales.CreateSale(addrBuyer, item, 1, dec(100), tokenX, 500, 2000)
		}, ledger.KindTransferFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			wantKind(t, err, tt.kind)
		})
	}

	// 没有版税能力的合约不能挂单
	const nftNoCap = "0x00000000000000000000000000000000001f7a04"
	f.m.Registry.SetListingContractApproval(nftNoCap, true)
	noCap := ledger.ItemRef{Contract: nftNoCap, ItemID: 1, Standard: ledger.StandardUnique}
	_, err := f.m.Sales.CreateSale(addrSeller, noCap, 1, dec(100), tokenX, 500, 2000)
	wantKind(t, err, ledger.KindIneligibleAsset)

	// 失败的创建不分配id
	id := f.uniqueSale(nftPlain, 2, 100)
	if id != 1 {
		t.Fatalf("failed creations must not consume ids, got %d", id)
	}
}

func TestSaleStatusPrecedence(t *testing.T) {
	f := newFixture(t)
	saleID := f.uniqueSale(nftPlain, 1, 100)

	check := func(want ledger.Status) {
		t.Helper()
		_, st, err := f.m.Sales.Get(saleID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if st != want {
			t.Fatalf("status = %s, want %s", st, want)
		}
	}

	f.now = 100
	check(ledger.StatusPending)
	f.now = 500
	check(ledger.StatusActive)
	f.now = 1999
	check(ledger.StatusActive)
	f.now = 2000
	check(ledger.StatusEnded)

	// 平台被资格名单下线后,一切挂单视同取消,优先级最高
	f.m.Registry.SetListingContractApproval(addrMarket, false)
	check(ledger.StatusCancelled)
	f.m.Registry.SetListingContractApproval(addrMarket, true)

	// 取消标记同样压过时间推导
	f.now = 600
	if err := f.m.Sales.CancelSale(saleID, addrSeller); err != nil {
		t.Fatalf("CancelSale: %v", err)
	}
	f.now = 100
	check(ledger.StatusCancelled)
	f.now = 3000
	check(ledger.StatusCancelled)
}

func TestBuyPreconditions(t *testing.T) {
	f := newFixture(t)
	f.mintQuantity(nftPlain, 9, addrSeller, 10)
	item := ledger.ItemRef{Contract: nftPlain, ItemID: 9, Standard: ledger.StandardFungible}
	saleID, err := f.m.Sales.CreateSale(addrSeller, item, 10, dec(10), tokenX, 500, 2000)
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	f.fundToken(addrBuyer, 1000)

	tests := []struct {
		name string
		fn   func() error
		kind ledger.Kind
	}{
		{"sale not found", func() error {
			return f.m.Sales.Buy(99, addrBuyer, "", 1, decimal.Zero, decimal.Zero)
		}, ledger.KindNotFound},
		{"zero sentinel id", func() error {
			return f.m.Sales.Buy(0, addrBuyer, "", 1, decimal.Zero, decimal.Zero)
		}, ledger.KindNotFound},
		{"zero quantity", func() error {
			return f.m.Sales.Buy(saleID, addrBuyer, "", 0, decimal.Zero, decimal.Zero)
		}, ledger.KindInvalidParams},
		{"over stock", func() error {
			return f.m.Sales.Buy(saleID, addrBuyer, "", 11, decimal.Zero, decimal.Zero)
		}, ledger.KindInsufficientFunds},
		{"vault portion above balance", func() error {
			return f.m.Sales.Buy(saleID, addrBuyer, "", 1, dec(5), decimal.Zero)
		}, ledger.KindInsufficientFunds},
		{"vault portion above gross", func() error {
			return f.m.Sales.Buy(saleID, addrBuyer, "", 1, dec(11), decimal.Zero)
		}, ledger.KindInvalidParams},
		{"native attached on token sale", func() error {
			return f.m.Sales.Buy(saleID, addrBuyer, "", 1, decimal.Zero, dec(10))
		}, ledger.KindInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantKind(t, tt.fn(), tt.kind)
		})
	}

	// PENDING和ENDED都不可买
	f.now = 100
	wantKind(t, f.m.Sales.Buy(saleID, addrBuyer, "", 1, decimal.Zero, decimal.Zero), ledger.KindInvalidState)
	f.now = 2500
	wantKind(t, f.m.Sales.Buy(saleID, addrBuyer, "", 1, decimal.Zero, decimal.Zero), ledger.KindInvalidState)
	f.now = 1000

	// 失败的购买不留任何痕迹
	s, _, _ := f.m.Sales.Get(saleID)
	if s.Purchased != 0 {
		t.Fatalf("failed buys must not mutate purchased, got %d", s.Purchased)
	}
	wantDec(t, "buyer token balance untouched", f.bank.TokenBalance(tokenX, addrBuyer), 1000)
	f.checkConservation()
}

// 部分用金库余额抵扣的购买
func TestBuyWithVaultBalancePortion(t *testing.T) {
	f := newFixture(t)
	// 先让买家通过卖单挣到金库余额
	firstSale := f.uniqueSale(nftPlain, 1, 100)
	f.fundToken(addrBuyer, 100)
	if err := f.m.Sales.Buy(firstSale, addrBuyer, "", 1, decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	// 卖家余额97,现在卖家反过来买,抵扣40、外部支付20
	f.mintUnique(nftPlain, 2, addrBuyer)
	item := ledger.ItemRef{Contract: nftPlain, ItemID: 2, Standard: ledger.StandardUnique}
	secondSale, err := f.m.Sales.CreateSale(addrBuyer, item, 1, dec(60), tokenX, 500, 2000)
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	f.fundToken(addrSeller, 20)
	if err := f.m.Sales.Buy(secondSale, addrSeller, "", 1, dec(40), decimal.Zero); err != nil {
		t.Fatalf("Buy with vault portion: %v", err)
	}
	// 97 - 40抵扣 + 无新入账
	wantDec(t, "seller vault after partial-vault buy", f.m.Vault.Balance(addrSeller, tokenX), 57)
	// 60成交额,fee=1(floor 1.8),买家(此单卖家)得59
	wantDec(t, "buyer vault credit", f.m.Vault.Balance(addrBuyer, tokenX), 59)
	f.checkConservation()
}

func TestMonotonicStock(t *testing.T) {
	f := newFixture(t)
	f.mintQuantity(nftPlain, 3, addrSeller, 5)
	item := ledger.ItemRef{Contract: nftPlain, ItemID: 3, Standard: ledger.StandardFungible}
	saleID, err := f.m.Sales.CreateSale(addrSeller, item, 5, dec(10), tokenX, 500, 2000)
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	f.fundToken(addrBuyer, 1000)

	prev := int64(0)
	for _, q := range []int64{2, 1, 2} {
		if err := f.m.Sales.Buy(saleID, addrBuyer, "", q, decimal.Zero, decimal.Zero); err != nil {
			t.Fatalf("Buy %d: %v", q, err)
		}
		s, _, _ := f.m.Sales.Get(saleID)
		if s.Purchased < prev {
			t.Fatalf("purchased decreased: %d -> %d", prev, s.Purchased)
		}
		if s.Purchased > s.Amount {
			t.Fatalf("purchased %d exceeds amount %d", s.Purchased, s.Amount)
		}
		prev = s.Purchased
	}
	// 售罄后继续买失败
	wantKind(t, f.m.Sales.Buy(saleID, addrBuyer, "", 1, decimal.Zero, decimal.Zero), ledger.KindInvalidState)
	if got := f.custody.QuantityOf(nftPlain, 3, addrBuyer); got != 5 {
		t.Fatalf("buyer holds %d, want 5", got)
	}
	f.checkConservation()
}

func TestBuyDeliversToRecipient(t *testing.T) {
	f := newFixture(t)
	saleID := f.uniqueSale(nftPlain, 1, 100)
	f.fundToken(addrBuyer, 100)
	// 收货地址可以与付款人不同
	if err := f.m.Sales.Buy(saleID, addrBuyer, addrBidderA, 1, decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if owner := f.custody.OwnerOf(nftPlain, 1); owner != addrBidderA {
		t.Fatalf("item owner = %s, want recipient", owner)
	}
}

func TestClaimSaleItems(t *testing.T) {
	f := newFixture(t)
	f.mintQuantity(nftPlain, 4, addrSeller, 10)
	item := ledger.ItemRef{Contract: nftPlain, ItemID: 4, Standard: ledger.StandardFungible}
	saleID, err := f.m.Sales.CreateSale(addrSeller, item, 10, dec(10), tokenX, 500, 2000)
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	f.fundToken(addrBuyer, 100)
	if err := f.m.Sales.Buy(saleID, addrBuyer, "", 3, decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("Buy: %v", err)
	}

	// ACTIVE状态不能取回
	_, err = f.m.Sales.ClaimSaleItems(saleID, addrSeller)
	wantKind(t, err, ledger.KindInvalidState)

	f.now = 2500 // ENDED
	// 只有卖家能取回
	_, err = f.m.Sales.ClaimSaleItems(saleID, addrBuyer)
	wantKind(t, err, ledger.KindUnauthorized)

	got, err := f.m.Sales.ClaimSaleItems(saleID, addrSeller)
	if err != nil {
		t.Fatalf("ClaimSaleItems: %v", err)
	}
	if got != 7 {
		t.Fatalf("reclaimed %d, want 7", got)
	}
	if held := f.custody.QuantityOf(nftPlain, 4, addrSeller); held != 7 {
		t.Fatalf("seller holds %d, want 7", held)
	}
	s, _, _ := f.m.Sales.Get(saleID)
	if s.Purchased != s.Amount {
		t.Fatalf("purchased = %d, want jumped to amount %d", s.Purchased, s.Amount)
	}
	// 前置条件保证至多一次
	_, err = f.m.Sales.ClaimSaleItems(saleID, addrSeller)
	wantKind(t, err, ledger.KindInvalidState)
}

func TestCancelSale(t *testing.T) {
	f := newFixture(t)
	saleID := f.uniqueSale(nftPlain, 1, 100)

	// 无关人员不能取消
	wantKind(t, f.m.Sales.CancelSale(saleID, addrBuyer), ledger.KindUnauthorized)
	wantKind(t, f.m.Sales.CancelSale(99, addrSeller), ledger.KindNotFound)

	if err := f.m.Sales.CancelSale(saleID, addrSeller); err != nil {
		t.Fatalf("CancelSale: %v", err)
	}
	// 重复取消被状态前置条件挡住
	wantKind(t, f.m.Sales.CancelSale(saleID, addrSeller), ledger.KindInvalidState)

	// 取消后卖家可以取回库存
	got, err := f.m.Sales.ClaimSaleItems(saleID, addrSeller)
	if err != nil || got != 1 {
		t.Fatalf("ClaimSaleItems after cancel: got %d, err %v", got, err)
	}
	if owner := f.custody.OwnerOf(nftPlain, 1); owner != addrSeller {
		t.Fatalf("item owner = %s, want seller", owner)
	}

	// 管理员也能取消(另一张挂单,PENDING状态)
	saleID2 := f.uniqueSale(nftPlain, 2, 100)
	f.now = 100
	if err := f.m.Sales.CancelSale(saleID2, addrAdmin); err != nil {
		t.Fatalf("admin CancelSale on PENDING: %v", err)
	}
}

// 已结束的挂单不可取消
func TestCancelSaleAfterEnd(t *testing.T) {
	f := newFixture(t)
	saleID := f.uniqueSale(nftPlain, 1, 100)
	f.now = 2500
	wantKind(t, f.m.Sales.CancelSale(saleID, addrSeller), ledger.KindInvalidState)
}
