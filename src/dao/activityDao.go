package dao

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"NFTMarketLedger/src/dao/model"
	"NFTMarketLedger/src/entity"
	"NFTMarketLedger/src/utils"
)

var eventTypesToID = map[string]int{
	"list":           model.ActivityListSale,
	"buy":            model.ActivityBuy,
	"claim_items":    model.ActivityClaimSaleItems,
	"cancel_list":    model.ActivityCancelSale,
	"create_auction": model.ActivityCreateAuction,
	"bid":            model.ActivityBid,
	"outbid_refund":  model.ActivityOutbidRefund,
	"settle":         model.ActivitySettleAuction,
	"cancel_auction": model.ActivityCancelAuction,
	"claim_funds":    model.ActivityClaimFunds,
}

var idToEventTypes = map[int]string{
	model.ActivityListSale:       "list",
	model.ActivityBuy:            "buy",
	model.ActivityClaimSaleItems: "claim_items",
	model.ActivityCancelSale:     "cancel_list",
	model.ActivityCreateAuction:  "create_auction",
	model.ActivityBid:            "bid",
	model.ActivityOutbidRefund:   "outbid_refund",
	model.ActivitySettleAuction:  "settle",
	model.ActivityCancelAuction:  "cancel_auction",
	model.ActivityClaimFunds:     "claim_funds",
}

// EventTypeName 活动类型id转外部名称
func EventTypeName(activityType int) string {
	name, ok := idToEventTypes[activityType]
	if !ok {
		return "unknown"
	}
	return name
}

// 计数缓存key前缀
const CacheActivityNumPrefix = "cache:ml:activity:count:"

type activityCountCache struct {
	Chain       string   `json:"chain"`
	RecordId    uint64   `json:"record_id"`
	UserAddress string   `json:"user_address"`
	EventTypes  []string `json:"event_types"`
}

// 获取计数缓存key
func getActivityCountCacheKey(c *activityCountCache) (string, error) {
	uid, err := json.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "failed on marshal activity count key")
	}
	return CacheActivityNumPrefix + string(uid), nil
}

// AddActivity 落一条操作流水
func (dao *Dao) AddActivity(ctx context.Context, chain string, activity *model.Activity) error {
	err := dao.DB.WithContext(ctx).
		Table(model.ActivityTableName(chain)).
		Create(activity).Error
	if err != nil {
		return errors.Wrap(err, "failed on create activity")
	}
	return nil
}

// QueryActivities 按过滤条件分页查询流水,总数走30s的redis计数缓存
func (dao *Dao) QueryActivities(ctx context.Context, chain string, filter entity.ActivityFilterParams) ([]model.Activity, int64, error) {
	//1、事件类型名去重后转id
	var events []int
	for _, e := range utils.RemoveRepeatedElement(filter.EventTypes) {
		if id, ok := eventTypesToID[e]; ok {
			events = append(events, id)
		}
	}

	//2、构建过滤条件
	query := dao.DB.WithContext(ctx).Table(model.ActivityTableName(chain))
	if filter.RecordId != 0 {
		query = query.Where("record_id = ?", filter.RecordId)
	}
	if filter.UserAddress != "" {
		query = query.Where("maker = ? or taker = ?", filter.UserAddress, filter.UserAddress)
	}
	if len(events) > 0 {
		query = query.Where("activity_type in (?)", events)
	}

	//3、分页执行
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	var activities []model.Activity
	err := query.Order("event_time desc, id desc").
		Limit(pageSize).Offset(pageSize * (page - 1)).
		Scan(&activities).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on query activities")
	}

	//4、取总数,先查缓存再查库
	var total int64
	cacheKey, err := getActivityCountCacheKey(&activityCountCache{
		Chain:       chain,
		RecordId:    filter.RecordId,
		UserAddress: filter.UserAddress,
		EventTypes:  filter.EventTypes,
	})
	if err != nil {
		return nil, 0, err
	}
	strNum, err := dao.KvStore.Get(cacheKey)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on get activity number from cache")
	}
	if strNum != "" {
		total, _ = strconv.ParseInt(strNum, 10, 64)
	} else {
		countQuery := dao.DB.WithContext(ctx).Table(model.ActivityTableName(chain))
		if filter.RecordId != 0 {
			countQuery = countQuery.Where("record_id = ?", filter.RecordId)
		}
		if filter.UserAddress != "" {
			countQuery = countQuery.Where("maker = ? or taker = ?", filter.UserAddress, filter.UserAddress)
		}
		if len(events) > 0 {
			countQuery = countQuery.Where("activity_type in (?)", events)
		}
		if err := countQuery.Count(&total).Error; err != nil {
			return nil, 0, errors.Wrap(err, "failed on count activities")
		}
		if err := dao.KvStore.Setex(cacheKey, strconv.FormatInt(total, 10), 30); err != nil {
			return nil, 0, errors.Wrap(err, "failed on cache activities number")
		}
	}
	return activities, total, nil
}
