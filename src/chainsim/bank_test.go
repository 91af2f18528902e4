package chainsim_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"NFTMarketLedger/src/chainsim"
)

const (
	simMarket = "0x00000000000000000000000000000000000a11ce"
	simAlice  = "0x000000000000000000000000000000000000a1ce"
	simBob    = "0x000000000000000000000000000000000000b0b0"
	simToken  = "0x000000000000000000000000000000000070ce11"
)

func eq(t *testing.T, name string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("%s = %s, want %d", name, got, want)
	}
}

func TestBankNativeFlow(t *testing.T) {
	b := chainsim.NewBank(simMarket)
	b.MintNative(simAlice, decimal.NewFromInt(100))

	if err := b.PullNative(simAlice, decimal.NewFromInt(60)); err != nil {
		t.Fatalf("PullNative: %v", err)
	}
	eq(t, "alice native", b.NativeBalance(simAlice), 40)
	eq(t, "market native", b.NativeBalance(simMarket), 60)

	// 余额不足拉取失败,账目不动
	if err := b.PullNative(simAlice, decimal.NewFromInt(41)); err == nil {
		t.Fatal("expected pull beyond balance to fail")
	}
	eq(t, "alice native unchanged", b.NativeBalance(simAlice), 40)

	if err := b.PayNative(simBob, decimal.NewFromInt(60)); err != nil {
		t.Fatalf("PayNative: %v", err)
	}
	eq(t, "bob native", b.NativeBalance(simBob), 60)
	if err := b.PayNative(simBob, decimal.NewFromInt(1)); err == nil {
		t.Fatal("expected payout beyond market holdings to fail")
	}
}

func TestBankTokenPullConsumesAllowance(t *testing.T) {
	b := chainsim.NewBank(simMarket)
	b.MintToken(simToken, simAlice, decimal.NewFromInt(500))
	b.Approve(simToken, simAlice, decimal.NewFromInt(300))

	if err := b.PullToken(simToken, simAlice, decimal.NewFromInt(200)); err != nil {
		t.Fatalf("PullToken: %v", err)
	}
	eq(t, "alice token", b.TokenBalance(simToken, simAlice), 300)
	eq(t, "market token", b.TokenBalance(simToken, simMarket), 200)
	eq(t, "remaining allowance", b.Allowance(simToken, simAlice), 100)

	// 余额够但额度不够
	if err := b.PullToken(simToken, simAlice, decimal.NewFromInt(101)); err == nil {
		t.Fatal("expected pull beyond allowance to fail")
	}

	// 额度覆盖式授权,余额不够时拉取也失败
	b.Approve(simToken, simAlice, decimal.NewFromInt(1000))
	eq(t, "allowance overwritten", b.Allowance(simToken, simAlice), 1000)
	if err := b.PullToken(simToken, simAlice, decimal.NewFromInt(301)); err == nil {
		t.Fatal("expected pull beyond balance to fail")
	}

	// 零额拉取无需授权
	if err := b.PullToken(simToken, simBob, decimal.Zero); err != nil {
		t.Fatalf("zero pull: %v", err)
	}
}

func TestBankTokenPayout(t *testing.T) {
	b := chainsim.NewBank(simMarket)
	b.MintToken(simToken, simMarket, decimal.NewFromInt(50))

	if err := b.PayToken(simToken, simBob, decimal.NewFromInt(50)); err != nil {
		t.Fatalf("PayToken: %v", err)
	}
	eq(t, "bob token", b.TokenBalance(simToken, simBob), 50)
	if err := b.PayToken(simToken, simBob, decimal.NewFromInt(1)); err == nil {
		t.Fatal("expected payout beyond holdings to fail")
	}
	if err := b.PayToken(simToken, simBob, decimal.Zero); err != nil {
		t.Fatalf("zero payout: %v", err)
	}
}
