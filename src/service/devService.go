package service

import (
	"context"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/ledger"
	"NFTMarketLedger/src/svc"
)

// 进程内链上模拟的播种入口,仅供开发/联调使用

func MintNative(ctx context.Context, serverCtx *svc.ServerCtx, p entity.MintNativeParam) error {
	if p.Account == "" || !p.Amount.IsPositive() {
		return errcode.ErrInvalidParams
	}
	serverCtx.Bank.MintNative(p.Account, p.Amount)
	return nil
}

func MintToken(ctx context.Context, serverCtx *svc.ServerCtx, p entity.MintTokenParam) error {
	if p.Currency == "" || p.Currency == ledger.NativeCurrency || p.Account == "" || !p.Amount.IsPositive() {
		return errcode.ErrInvalidParams
	}
	serverCtx.Bank.MintToken(p.Currency, p.Account, p.Amount)
	return nil
}

func ApproveToken(ctx context.Context, serverCtx *svc.ServerCtx, p entity.ApproveTokenParam) error {
	if p.Currency == "" || p.Owner == "" || p.Amount.IsNegative() {
		return errcode.ErrInvalidParams
	}
	serverCtx.Bank.Approve(p.Currency, p.Owner, p.Amount)
	return nil
}

func RegisterItemContract(ctx context.Context, serverCtx *svc.ServerCtx, p entity.RegisterContractParam) error {
	if p.Contract == "" {
		return errcode.ErrInvalidParams
	}
	if err := serverCtx.Custody.RegisterContract(p.Contract, p.Artist, p.Rate, p.Scale); err != nil {
		return errcode.NewCustomErr(err.Error())
	}
	return nil
}

func MintItem(ctx context.Context, serverCtx *svc.ServerCtx, p entity.MintItemParam) error {
	var err error
	switch ledger.TokenStandard(p.Standard) {
	case ledger.StandardUnique:
		err = serverCtx.Custody.MintUnique(p.Contract, p.ItemId, p.Owner)
	case ledger.StandardFungible:
		err = serverCtx.Custody.MintQuantity(p.Contract, p.ItemId, p.Owner, p.Quantity)
	default:
		return errcode.ErrInvalidParams
	}
	if err != nil {
		return errcode.NewCustomErr(err.Error())
	}
	return nil
}
