package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"NFTMarketLedger/src/dao/model"
	"NFTMarketLedger/src/ledger"
	"NFTMarketLedger/src/svc"
	"NFTMarketLedger/src/xzap"
)

// 内存账本是事实来源,落库只是快照与流水。
// 账本操作已提交后journal失败不能让请求失败,这里只告警

func journalSale(ctx context.Context, serverCtx *svc.ServerCtx, saleID uint64) {
	sale, status, err := serverCtx.Market.Sales.Get(saleID)
	if err != nil {
		xzap.WithContext(ctx).Warn("journal: sale lookup failed", zap.Uint64("sale_id", saleID), zap.Error(err))
		return
	}
	row := &model.Sale{
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
		Cancelled:    sale.Cancelled,
		Status:       status.String(),
		UpdateTime:   time.Now().Unix(),
	}
	if err := serverCtx.Dao.UpsertSale(ctx, serverCtx.JournalChain, row); err != nil {
		xzap.WithContext(ctx).Warn("journal: sale snapshot failed", zap.Uint64("sale_id", saleID), zap.Error(err))
	}
}

func journalAuction(ctx context.Context, serverCtx *svc.ServerCtx, auctionID uint64) {
	auction, status, err := serverCtx.Market.Auctions.Get(auctionID)
	if err != nil {
		xzap.WithContext(ctx).Warn("journal: auction lookup failed", zap.Uint64("auction_id", auctionID), zap.Error(err))
		return
	}
	row := &model.Auction{
		AuctionId:    auction.ID,
		ItemContract: auction.Item.Contract,
		ItemId:       auction.Item.ItemID,
		Standard:     uint8(auction.Item.Standard),
		Seller:       auction.Seller,
		ReservePrice: auction.ReservePrice,
		Currency:     auction.Currency,
		Quantity:     auction.Quantity,
		StartTime:    auction.StartTime,
		EndTime:      auction.EndTime,
		Cancelled:    auction.Cancelled,
		Claimed:      auction.Claimed,
		Status:       status.String(),
		UpdateTime:   time.Now().Unix(),
	}
	if err := serverCtx.Dao.UpsertAuction(ctx, serverCtx.JournalChain, row); err != nil {
		xzap.WithContext(ctx).Warn("journal: auction snapshot failed", zap.Uint64("auction_id", auctionID), zap.Error(err))
	}
}

func journalBid(ctx context.Context, serverCtx *svc.ServerCtx, auctionID uint64, bidder string) {
	bid, err := serverCtx.Market.Auctions.BidOf(auctionID, bidder)
	if err != nil {
		xzap.WithContext(ctx).Warn("journal: bid lookup failed", zap.Uint64("auction_id", auctionID), zap.Error(err))
		return
	}
	highestBidder, _, _ := serverCtx.Market.Auctions.HighestBid(auctionID)
	row := &model.AuctionBid{
		AuctionId:  auctionID,
		Bidder:     bidder,
		Amount:     bid.Amount,
		IsHighest:  highestBidder == bidder,
		UpdateTime: time.Now().Unix(),
	}
	if err := serverCtx.Dao.UpsertAuctionBid(ctx, serverCtx.JournalChain, row); err != nil {
		xzap.WithContext(ctx).Warn("journal: bid snapshot failed", zap.Uint64("auction_id", auctionID), zap.Error(err))
	}
}

func journalVault(ctx context.Context, serverCtx *svc.ServerCtx, account, currency string) {
	row := &model.VaultBalance{
		Account:    account,
		Currency:   currency,
		Balance:    serverCtx.Market.Vault.Balance(account, currency),
		UpdateTime: time.Now().Unix(),
	}
	if err := serverCtx.Dao.UpsertVaultBalance(ctx, serverCtx.JournalChain, row); err != nil {
		xzap.WithContext(ctx).Warn("journal: vault snapshot failed", zap.String("account", account), zap.Error(err))
	}
}

func addActivity(ctx context.Context, serverCtx *svc.ServerCtx, activityType int, recordID uint64,
	item ledger.ItemRef, maker, taker, currency string, price decimal.Decimal, quantity int64) {
	activity := &model.Activity{
		ActivityUid:  uuid.NewString(),
		ActivityType: activityType,
		RecordId:     recordID,
		ItemContract: item.Contract,
		ItemId:       item.ItemID,
		Maker:        maker,
		Taker:        taker,
		Currency:     currency,
		Price:        price,
		Quantity:     quantity,
		EventTime:    time.Now().Unix(),
	}
	if err := serverCtx.Dao.AddActivity(ctx, serverCtx.JournalChain, activity); err != nil {
		xzap.WithContext(ctx).Warn("journal: activity append failed", zap.Int("type", activityType), zap.Error(err))
	}
}
