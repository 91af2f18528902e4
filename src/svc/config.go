package svc

import (
	"github.com/zeromicro/go-zero/core/stores/kv"
	"gorm.io/gorm"

	"NFTMarketLedger/src/chainsim"
	"NFTMarketLedger/src/dao"
	"NFTMarketLedger/src/ledger"
)

/*
*
服务上下文的构建采用选项模式(Option Pattern),每个选项配置CtxConfig的一项
*/
type CtxConfig struct {
	db      *gorm.DB
	dao     *dao.Dao
	KvStore kv.Store
	Market  *ledger.Market
	Bank    *chainsim.Bank
	Custody *chainsim.Custody
}

type CtxOption func(conf *CtxConfig)

func NewServerCtx(options ...CtxOption) *ServerCtx {
	c := &CtxConfig{}
	for _, opt := range options {
		opt(c)
	}
	return &ServerCtx{
		DB:      c.db,
		Dao:     c.dao,
		KvStore: c.KvStore,
		Market:  c.Market,
		Bank:    c.Bank,
		Custody: c.Custody,
	}
}

func WithDB(db *gorm.DB) CtxOption {
	return func(conf *CtxConfig) {
		conf.db = db
	}
}

func WithDao(dao *dao.Dao) CtxOption {
	return func(conf *CtxConfig) {
		conf.dao = dao
	}
}

func WithKv(store kv.Store) CtxOption {
	return func(conf *CtxConfig) {
		conf.KvStore = store
	}
}

func WithMarket(market *ledger.Market) CtxOption {
	return func(conf *CtxConfig) {
		conf.Market = market
	}
}

func WithChainSim(bank *chainsim.Bank, custody *chainsim.Custody) CtxOption {
	return func(conf *CtxConfig) {
		conf.Bank = bank
		conf.Custody = custody
	}
}
