package service

import (
	"context"

	"NFTMarketLedger/src/dao/model"
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/ledger"
	"NFTMarketLedger/src/svc"
)

// GetVaultBalance 查询账户某币种的可领取余额
func GetVaultBalance(ctx context.Context, serverCtx *svc.ServerCtx, account, currency string) (*entity.VaultBalanceResp, error) {
	return &entity.VaultBalanceResp{
		Account:  account,
		Currency: currency,
		Balance:  serverCtx.Market.Vault.Balance(account, currency),
	}, nil
}

// ClaimFunds 全额领取,失败整体回滚
func ClaimFunds(ctx context.Context, serverCtx *svc.ServerCtx, p entity.ClaimParam) (*entity.ClaimResp, error) {
	paid, err := serverCtx.Market.Vault.Claim(p.Account, p.Currency)
	if err != nil {
		return nil, err
	}
	journalVault(ctx, serverCtx, p.Account, p.Currency)
	addActivity(ctx, serverCtx, model.ActivityClaimFunds, 0, ledger.ItemRef{}, p.Account, "", p.Currency, paid, 0)
	return &entity.ClaimResp{Paid: paid}, nil
}
