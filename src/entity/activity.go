package entity

import (
	"github.com/shopspring/decimal"
)

type ActivityFilterParams struct {
	ChainID     int      `json:"chain_id"`     //链id
	RecordId    uint64   `json:"record_id"`    //卖单/拍卖id,0表示不过滤
	UserAddress string   `json:"user_address"` //参与方地址过滤
	EventTypes  []string `json:"event_types"`  //事件类型过滤
	Page        int      `json:"page"`         //页码,从1开始
	PageSize    int      `json:"page_size"`    //每页条数
}

type ActivityInfo struct {
	EventType    string          `json:"event_type"`    //事件类型
	ActivityUid  string          `json:"activity_uid"`  //流水uuid
	RecordId     uint64          `json:"record_id"`     //卖单/拍卖id
	ItemContract string          `json:"item_contract"` //资产合约地址
	ItemId       uint64          `json:"item_id"`       //资产id
	Maker        string          `json:"maker"`         //发起方
	Taker        string          `json:"taker"`         //对手方
	Currency     string          `json:"currency"`      //结算币种
	Price        decimal.Decimal `json:"price"`         //金额
	Quantity     int64           `json:"quantity"`      //数量
	EventTime    int64           `json:"event_time"`    //事件时间
	ChainID      int             `json:"chain_id"`      //链id
}

type ActivityResp struct {
	Result interface{} `json:"result"`
	Count  int64       `json:"count"`
}
