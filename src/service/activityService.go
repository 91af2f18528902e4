package service

import (
	"context"

	"github.com/pkg/errors"

	"NFTMarketLedger/src/dao"
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/svc"
)

// GetActivities 查询操作流水
func GetActivities(ctx context.Context, serverCtx *svc.ServerCtx, chain string, chainID int, filter entity.ActivityFilterParams) (*entity.ActivityResp, error) {
	activities, total, err := serverCtx.Dao.QueryActivities(ctx, chain, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed on query activities")
	}
	if len(activities) == 0 || total == 0 {
		return &entity.ActivityResp{
			Result: nil,
			Count:  0,
		}, nil
	}

	var result []entity.ActivityInfo
	for _, act := range activities {
		result = append(result, entity.ActivityInfo{
			EventType:    dao.EventTypeName(act.ActivityType),
			ActivityUid:  act.ActivityUid,
			RecordId:     act.RecordId,
			ItemContract: act.ItemContract,
			ItemId:       act.ItemId,
			Maker:        act.Maker,
			Taker:        act.Taker,
			Currency:     act.Currency,
			Price:        act.Price,
			Quantity:     act.Quantity,
			EventTime:    act.EventTime,
			ChainID:      chainID,
		})
	}
	return &entity.ActivityResp{
		Result: result,
		Count:  total,
	}, nil
}
