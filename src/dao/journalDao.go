package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"NFTMarketLedger/src/dao/model"
)

// 内存账本是事实来源,这里只做成功操作后的快照落库,整行覆盖

func (dao *Dao) UpsertSale(ctx context.Context, chain string, sale *model.Sale) error {
	err := dao.DB.WithContext(ctx).
		Table(model.SaleTableName(chain)).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sale_id"}},
			UpdateAll: true,
		}).
		Create(sale).Error
	if err != nil {
		return errors.Wrap(err, "failed on upsert sale snapshot")
	}
	return nil
}

func (dao *Dao) UpsertAuction(ctx context.Context, chain string, auction *model.Auction) error {
	err := dao.DB.WithContext(ctx).
		Table(model.AuctionTableName(chain)).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "auction_id"}},
			UpdateAll: true,
		}).
		Create(auction).Error
	if err != nil {
		return errors.Wrap(err, "failed on upsert auction snapshot")
	}
	return nil
}

func (dao *Dao) UpsertAuctionBid(ctx context.Context, chain string, bid *model.AuctionBid) error {
	err := dao.DB.WithContext(ctx).
		Table(model.AuctionBidTableName(chain)).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "auction_id"}, {Name: "bidder"}},
			UpdateAll: true,
		}).
		Create(bid).Error
	if err != nil {
		return errors.Wrap(err, "failed on upsert auction bid snapshot")
	}
	return nil
}

func (dao *Dao) UpsertVaultBalance(ctx context.Context, chain string, balance *model.VaultBalance) error {
	err := dao.DB.WithContext(ctx).
		Table(model.VaultBalanceTableName(chain)).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}, {Name: "currency"}},
			UpdateAll: true,
		}).
		Create(balance).Error
	if err != nil {
		return errors.Wrap(err, "failed on upsert vault balance snapshot")
	}
	return nil
}
