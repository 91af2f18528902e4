package service

import (
	"context"

	"go.uber.org/zap"

	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xzap"
)

// 管理操作统一在这里校验管理员身份,账本核心不感知调用方

func SetFee(ctx context.Context, serverCtx *svc.ServerCtx, p entity.SetFeeParam) (*entity.ChangedResp, error) {
	if !serverCtx.Market.IsAdmin(p.Caller) {
		return nil, errcode.ErrUnauthorized
	}
	changed, err := serverCtx.Market.Fees.SetFee(p.Rate, p.Scale)
	if err != nil {
		return nil, err
	}
	if changed {
		xzap.WithContext(ctx).Info("fee terms updated", zap.Int64("rate", p.Rate), zap.Int64("scale", p.Scale))
	}
	return &entity.ChangedResp{Changed: changed}, nil
}

func SetFeeRecipient(ctx context.Context, serverCtx *svc.ServerCtx, p entity.SetFeeRecipientParam) (*entity.ChangedResp, error) {
	if !serverCtx.Market.IsAdmin(p.Caller) {
		return nil, errcode.ErrUnauthorized
	}
	changed, err := serverCtx.Market.Fees.SetRecipient(p.Recipient)
	if err != nil {
		return nil, err
	}
	return &entity.ChangedResp{Changed: changed}, nil
}

func GetFeeInfo(ctx context.Context, serverCtx *svc.ServerCtx) (*entity.FeeInfoResp, error) {
	rate, scale, recipient := serverCtx.Market.Fees.Fee()
	return &entity.FeeInfoResp{
		Rate:      rate,
		Scale:     scale,
		Recipient: recipient,
	}, nil
}

func SetContractApproval(ctx context.Context, serverCtx *svc.ServerCtx, p entity.ApprovalParam) (*entity.ChangedResp, error) {
	if !serverCtx.Market.IsAdmin(p.Caller) {
		return nil, errcode.ErrUnauthorized
	}
	changed := serverCtx.Market.Registry.SetListingContractApproval(p.Address, p.Approved)
	if changed {
		xzap.WithContext(ctx).Info("listing contract approval updated",
			zap.String("address", p.Address), zap.Bool("approved", p.Approved))
	}
	return &entity.ChangedResp{Changed: changed}, nil
}

func SetCurrencyApproval(ctx context.Context, serverCtx *svc.ServerCtx, p entity.ApprovalParam) (*entity.ChangedResp, error) {
	if !serverCtx.Market.IsAdmin(p.Caller) {
		return nil, errcode.ErrUnauthorized
	}
	changed := serverCtx.Market.Registry.SetCurrencyApproval(p.Address, p.Approved)
	return &entity.ChangedResp{Changed: changed}, nil
}

// ApproveAllCurrencies 单向开关,打开后不可回退
func ApproveAllCurrencies(ctx context.Context, serverCtx *svc.ServerCtx, p entity.ApproveAllCurrenciesParam) (*entity.ChangedResp, error) {
	if !serverCtx.Market.IsAdmin(p.Caller) {
		return nil, errcode.ErrUnauthorized
	}
	changed := serverCtx.Market.Registry.ApproveAllCurrencies()
	if changed {
		xzap.WithContext(ctx).Warn("all currencies approved, switch is irreversible")
	}
	return &entity.ChangedResp{Changed: changed}, nil
}
