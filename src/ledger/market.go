package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config 账本核心的装配配置。资格名单和手续费策略都是显式注入的服务对象,
// 只在系统启动时构造一次
type Config struct {
	SelfAddress  string      // 平台自身地址,同时作为资产托管账户
	Admin        string      // 管理员地址(授权判断视为不透明检查)
	FeeRate      int64       // 手续费率分子,0时取默认值
	FeeScale     int64       // 手续费率分母,0时取默认值
	FeeRecipient string      // 手续费收款地址
	Custody      ItemCustody // 资产托管协作方
	Rail         PaymentRail // 资金通道协作方
	Now          func() int64
}

// deps 两个账本共享的依赖。状态推导、支付收款和分账逻辑都收敛在这里
type deps struct {
	self     string
	admin    string
	custody  ItemCustody
	rail     PaymentRail
	fees     *FeePolicy
	registry *EligibilityRegistry
	vault    *ClaimVault
	now      func() int64
}

// Market 市场账本核心的聚合入口
type Market struct {
	Fees     *FeePolicy
	Registry *EligibilityRegistry
	Vault    *ClaimVault
	Sales    *ListingLedger
	Auctions *AuctionLedger

	admin string
}

func NewMarket(cfg Config) (*Market, error) {
	const op = "ledger.NewMarket"
	if cfg.SelfAddress == "" || cfg.Admin == "" {
		return nil, failf(KindInvalidParams, op, "self address and admin are required")
	}
	if cfg.Custody == nil || cfg.Rail == nil {
		return nil, failf(KindInvalidParams, op, "custody and payment rail are required")
	}
	rate, scale := cfg.FeeRate, cfg.FeeScale
	if scale == 0 {
		rate, scale = DefaultFeeRate, DefaultFeeScale
	}
	recipient := cfg.FeeRecipient
	if recipient == "" {
		recipient = cfg.Admin
	}
	fees, err := NewFeePolicy(rate, scale, recipient)
	if err != nil {
		return nil, err
	}
	now := cfg.Now
	if now == nil {
		now = func() int64 { return time.Now().Unix() }
	}

	registry := NewEligibilityRegistry()
	vault := NewClaimVault(cfg.Rail)
	d := &deps{
		self:     cfg.SelfAddress,
		admin:    cfg.Admin,
		custody:  cfg.Custody,
		rail:     cfg.Rail,
		fees:     fees,
		registry: registry,
		vault:    vault,
		now:      now,
	}
	return &Market{
		Fees:     fees,
		Registry: registry,
		Vault:    vault,
		Sales:    newListingLedger(d),
		Auctions: newAuctionLedger(d),
		admin:    d.admin,
	}, nil
}

func (m *Market) IsAdmin(addr string) bool {
	return addr == m.admin
}

// deprecated 平台自身是否已被资格名单下线
func (d *deps) deprecated() bool {
	return !d.registry.IsApprovedListingContract(d.self)
}

// checkListable 新挂单/新拍卖共用的准入检查
func (d *deps) checkListable(op string, item ItemRef, currency string) error {
	if d.deprecated() {
		return failf(KindIneligibleAsset, op, "marketplace %s is deprecated", d.self)
	}
	if !d.registry.IsApprovedListingContract(item.Contract) {
		return failf(KindIneligibleAsset, op, "contract %s not approved", item.Contract)
	}
	if !d.registry.IsApprovedCurrency(currency) {
		return failf(KindIneligibleAsset, op, "currency %s not approved", currency)
	}
	if !d.custody.SupportsRoyalty(item.Contract) {
		return failf(KindIneligibleAsset, op, "contract %s lacks royalty capability", item.Contract)
	}
	return nil
}

// collect 收取外部支付。原生币要求附带金额严格等于应付金额,
// 代币走授权额度拉取。该步骤在任何状态变更之前执行,失败不留痕
func (d *deps) collect(op, currency, payer string, need, nativeAttached decimal.Decimal) error {
	if currency == NativeCurrency {
		if !nativeAttached.Equal(need) {
			return failf(KindInsufficientFunds, op, "native payment mismatch: attached %s, need %s", nativeAttached, need)
		}
		if need.IsZero() {
			return nil
		}
		if err := d.rail.PullNative(payer, need); err != nil {
			return wrapf(KindTransferFailure, op, err, "collect native payment")
		}
		return nil
	}
	if !nativeAttached.IsZero() {
		return failf(KindInvalidParams, op, "native funds attached to token-settled operation")
	}
	if need.IsZero() {
		return nil
	}
	if err := d.rail.PullToken(currency, payer, need); err != nil {
		return wrapf(KindTransferFailure, op, err, "collect token payment")
	}
	return nil
}

// refund 回滚collect收取的外部支付,用于后续外部转移失败时的补偿
func (d *deps) refund(currency, payer string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	if currency == NativeCurrency {
		return d.rail.PayNative(payer, amount)
	}
	return d.rail.PayToken(currency, payer, amount)
}

// proceedsSplit 一笔成交金额的三方分账结果
type proceedsSplit struct {
	currency     string
	feeRecipient string
	fee          decimal.Decimal
	artist       string
	royalty      decimal.Decimal
	seller       string
	net          decimal.Decimal // 卖家实收 = gross - fee - royalty
}

// splitProceeds 计算 fee/royalty/seller 三方分账。只读,不产生任何状态变更。
// 卖家即创作者时版税归零,避免给自己付版税造成重复计账;
// 版税查询返回的金额若会使 fee+royalty 超过 gross,按剩余额度收窄
func (d *deps) splitProceeds(op string, item ItemRef, seller, currency string, gross decimal.Decimal) (proceedsSplit, error) {
	recipient, fee := d.fees.FeeInfo(gross)
	artist, royalty, err := d.custody.RoyaltyInfo(item.Contract, item.ItemID, gross)
	if err != nil {
		return proceedsSplit{}, wrapf(KindIneligibleAsset, op, err, "royalty lookup")
	}
	if royalty.IsNegative() {
		return proceedsSplit{}, failf(KindIneligibleAsset, op, "negative royalty %s from %s", royalty, item.Contract)
	}
	if artist == "" || artist == seller {
		royalty = decimal.Zero
	}
	if fee.Add(royalty).GreaterThan(gross) {
		royalty = gross.Sub(fee)
	}
	return proceedsSplit{
		currency:     currency,
		feeRecipient: recipient,
		fee:          fee,
		artist:       artist,
		royalty:      royalty,
		seller:       seller,
		net:          gross.Sub(fee).Sub(royalty),
	}, nil
}

// creditSplit 把分账结果记入可领取余额。纯内部记账,不会失败
func (d *deps) creditSplit(sp proceedsSplit) {
	d.vault.credit(sp.feeRecipient, sp.currency, sp.fee)
	if sp.royalty.IsPositive() {
		d.vault.credit(sp.artist, sp.currency, sp.royalty)
	}
	d.vault.credit(sp.seller, sp.currency, sp.net)
}
