package service

import (
	"context"

	"NFTMarketLedger/src/dao/model"
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/ledger"
	"NFTMarketLedger/src/svc"
)

// CreateAuction 创建保留价拍卖,资产先入托管
func CreateAuction(ctx context.Context, serverCtx *svc.ServerCtx, p entity.CreateAuctionParam) (*entity.CreateAuctionResp, error) {
	item := ledger.ItemRef{
		Contract: p.ItemContract,
		ItemID:   p.ItemId,
		Standard: ledger.TokenStandard(p.Standard),
	}
	auctionID, err := serverCtx.Market.Auctions.CreateAuction(p.Seller, item, p.Quantity, p.ReservePrice, p.Currency, p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}
	journalAuction(ctx, serverCtx, auctionID)
	addActivity(ctx, serverCtx, model.ActivityCreateAuction, auctionID, item, p.Seller, "", p.Currency, p.ReservePrice, p.Quantity)
	return &entity.CreateAuctionResp{AuctionId: auctionID}, nil
}

// PlaceBid 出价,支持余额抵扣与加价,被超越的前高直接退入可领取余额
func PlaceBid(ctx context.Context, serverCtx *svc.ServerCtx, auctionID uint64, p entity.BidParam) error {
	prevHighest, _, _ := serverCtx.Market.Auctions.HighestBid(auctionID)

	if err := serverCtx.Market.Auctions.Bid(auctionID, p.Bidder, p.FromVault, p.Amount, p.NativeAttached); err != nil {
		return err
	}

	auction, _, _ := serverCtx.Market.Auctions.Get(auctionID)
	journalAuction(ctx, serverCtx, auctionID)
	journalBid(ctx, serverCtx, auctionID, p.Bidder)
	journalVault(ctx, serverCtx, p.Bidder, auction.Currency)
	bid, _ := serverCtx.Market.Auctions.BidOf(auctionID, p.Bidder)
	addActivity(ctx, serverCtx, model.ActivityBid, auctionID, auction.Item, p.Bidder, auction.Seller, auction.Currency, bid.Amount, auction.Quantity)

	// 有人被挤下去,补一条退款流水和快照
	if prevHighest != "" && prevHighest != p.Bidder {
		journalBid(ctx, serverCtx, auctionID, prevHighest)
		journalVault(ctx, serverCtx, prevHighest, auction.Currency)
		refunded := serverCtx.Market.Vault.Balance(prevHighest, auction.Currency)
		addActivity(ctx, serverCtx, model.ActivityOutbidRefund, auctionID, auction.Item, prevHighest, p.Bidder, auction.Currency, refunded, 0)
	}
	return nil
}

// ResolveAuction 结算:赢家、卖家或管理员可发起
func ResolveAuction(ctx context.Context, serverCtx *svc.ServerCtx, auctionID uint64, p entity.ResolveParam) error {
	winner, winning, _ := serverCtx.Market.Auctions.HighestBid(auctionID)

	if err := serverCtx.Market.Auctions.Resolve(auctionID, p.Caller); err != nil {
		return err
	}

	auction, _, _ := serverCtx.Market.Auctions.Get(auctionID)
	journalAuction(ctx, serverCtx, auctionID)
	if winner != "" {
		journalBid(ctx, serverCtx, auctionID, winner)
		journalVault(ctx, serverCtx, winner, auction.Currency)
		journalVault(ctx, serverCtx, auction.Seller, auction.Currency)
	}
	addActivity(ctx, serverCtx, model.ActivitySettleAuction, auctionID, auction.Item, p.Caller, winner, auction.Currency, winning, auction.Quantity)
	return nil
}

// CancelAuction 取消拍卖并释放在押的最高出价
func CancelAuction(ctx context.Context, serverCtx *svc.ServerCtx, auctionID uint64, p entity.CancelParam) error {
	highest, amount, _ := serverCtx.Market.Auctions.HighestBid(auctionID)

	if err := serverCtx.Market.Auctions.Cancel(auctionID, p.Caller); err != nil {
		return err
	}

	auction, _, _ := serverCtx.Market.Auctions.Get(auctionID)
	journalAuction(ctx, serverCtx, auctionID)
	if highest != "" {
		journalBid(ctx, serverCtx, auctionID, highest)
		journalVault(ctx, serverCtx, highest, auction.Currency)
	}
	addActivity(ctx, serverCtx, model.ActivityCancelAuction, auctionID, auction.Item, p.Caller, highest, auction.Currency, amount, 0)
	return nil
}

// GetAuction 查询拍卖详情,状态为查询时刻派生
func GetAuction(ctx context.Context, serverCtx *svc.ServerCtx, auctionID uint64) (*entity.AuctionDetail, error) {
	auction, status, err := serverCtx.Market.Auctions.Get(auctionID)
	if err != nil {
		return nil, err
	}
	highestBidder, highestAmount, err := serverCtx.Market.Auctions.HighestBid(auctionID)
	if err != nil {
		return nil, err
	}
	return &entity.AuctionDetail{
		AuctionId:     auction.ID,
		ItemContract:  auction.Item.Contract,
		ItemId:        auction.Item.ItemID,
		Standard:      uint8(auction.Item.Standard),
		Seller:        auction.Seller,
		ReservePrice:  auction.ReservePrice,
		Currency:      auction.Currency,
		Quantity:      auction.Quantity,
		StartTime:     auction.StartTime,
		EndTime:       auction.EndTime,
		Status:        status.String(),
		HighestBidder: highestBidder,
		HighestAmount: highestAmount,
	}, nil
}

// GetBid 查询某个出价人的累计出价
func GetBid(ctx context.Context, serverCtx *svc.ServerCtx, auctionID uint64, bidder string) (*entity.BidDetail, error) {
	bid, err := serverCtx.Market.Auctions.BidOf(auctionID, bidder)
	if err != nil {
		return nil, err
	}
	return &entity.BidDetail{
		AuctionId:  auctionID,
		Bidder:     bidder,
		Amount:     bid.Amount,
		UpdateTime: bid.UpdatedAt,
	}, nil
}
