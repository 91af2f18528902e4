package service

import (
	"context"

	"github.com/shopspring/decimal"

	"NFTMarketLedger/src/dao/model"
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/ledger"
	"NFTMarketLedger/src/svc"
)

// CreateSale 定价挂单:资产先入托管,成功后才分配卖单id
func CreateSale(ctx context.Context, serverCtx *svc.ServerCtx, p entity.CreateSaleParam) (*entity.CreateSaleResp, error) {
	item := ledger.ItemRef{
		Contract: p.ItemContract,
		ItemID:   p.ItemId,
		Standard: ledger.TokenStandard(p.Standard),
	}
	saleID, err := serverCtx.Market.Sales.CreateSale(p.Seller, item, p.Amount, p.Price, p.Currency, p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}
	journalSale(ctx, serverCtx, saleID)
	addActivity(ctx, serverCtx, model.ActivityListSale, saleID, item, p.Seller, "", p.Currency, p.Price, p.Amount)
	return &entity.CreateSaleResp{SaleId: saleID}, nil
}

// BuySale 购买,recipient缺省为买家本人
func BuySale(ctx context.Context, serverCtx *svc.ServerCtx, saleID uint64, p entity.BuyParam) error {
	if err := serverCtx.Market.Sales.Buy(saleID, p.Buyer, p.Recipient, p.Quantity, p.FromVault, p.NativeAttached); err != nil {
		return err
	}
	sale, _, _ := serverCtx.Market.Sales.Get(saleID)
	journalSale(ctx, serverCtx, saleID)
	journalVault(ctx, serverCtx, p.Buyer, sale.Currency)
	journalVault(ctx, serverCtx, sale.Seller, sale.Currency)
	gross := sale.Price.Mul(decimal.NewFromInt(p.Quantity))
	addActivity(ctx, serverCtx, model.ActivityBuy, saleID, sale.Item, p.Buyer, sale.Seller, sale.Currency, gross, p.Quantity)
	return nil
}

// ClaimSaleItems 卖家一次性取回未售资产
func ClaimSaleItems(ctx context.Context, serverCtx *svc.ServerCtx, saleID uint64, p entity.ClaimSaleItemsParam) (*entity.ClaimSaleItemsResp, error) {
	reclaimed, err := serverCtx.Market.Sales.ClaimSaleItems(saleID, p.Seller)
	if err != nil {
		return nil, err
	}
	sale, _, _ := serverCtx.Market.Sales.Get(saleID)
	journalSale(ctx, serverCtx, saleID)
	addActivity(ctx, serverCtx, model.ActivityClaimSaleItems, saleID, sale.Item, p.Seller, "", sale.Currency, sale.Price, reclaimed)
	return &entity.ClaimSaleItemsResp{Reclaimed: reclaimed}, nil
}

// CancelSale 取消挂单,卖家或管理员可发起
func CancelSale(ctx context.Context, serverCtx *svc.ServerCtx, saleID uint64, p entity.CancelParam) error {
	if err := serverCtx.Market.Sales.CancelSale(saleID, p.Caller); err != nil {
		return err
	}
	sale, _, _ := serverCtx.Market.Sales.Get(saleID)
	journalSale(ctx, serverCtx, saleID)
	addActivity(ctx, serverCtx, model.ActivityCancelSale, saleID, sale.Item, p.Caller, "", sale.Currency, sale.Price, 0)
	return nil
}

// GetSale 查询卖单详情,状态为查询时刻派生
func GetSale(ctx context.Context, serverCtx *svc.ServerCtx, saleID uint64) (*entity.SaleDetail, error) {
	sale, status, err := serverCtx.Market.Sales.Get(saleID)
	if err != nil {
		return nil, err
	}
	return &entity.SaleDetail{
		SaleId:       sale.ID,
		ItemContract: sale.Item.Contract,
		ItemId:       sale.Item.ItemID,
		Standard:     uint8(sale.Item.Standard),
		Seller:       sale.Seller,
		Price:        sale.Price,
		Currency:     sale.Currency,
		Amount:       sale.Amount,
		Purchased:    sale.Purchased,
		StartTime:    sale.StartTime,
		EndTime:      sale.EndTime,
		Status:       status.String(),
	}, nil
}
