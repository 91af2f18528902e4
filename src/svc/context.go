package svc

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/kv"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"gorm.io/gorm"

	"NFTMarketLedger/src/chainsim"
	"NFTMarketLedger/src/config"
	"NFTMarketLedger/src/dao"
	"NFTMarketLedger/src/ledger"
	"NFTMarketLedger/src/utils"
	"NFTMarketLedger/src/xzap"
)

type ServerCtx struct {
	C       *config.Config
	DB      *gorm.DB
	Dao     *dao.Dao
	KvStore kv.Store
	Market  *ledger.Market
	Bank    *chainsim.Bank
	Custody *chainsim.Custody
	// chain id → 链名,来自配置,流水落库按链名分表
	ChainIdToChain utils.ChainIdMap
	// 快照/流水默认落到的链
	JournalChain string
}

func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	//1、使用zap初始化日志
	_, err := xzap.SetUp(c.Log)
	if err != nil {
		return nil, err
	}

	//2、初始化redis/kv存储
	var kvConf kv.KvConf
	for _, con := range c.Kv.Redis {
		kvConf = append(kvConf, cache.NodeConf{
			RedisConf: redis.RedisConf{
				Host: con.Host,
				Type: con.Type,
				Pass: con.Pass,
			},
			Weight: 1,
		})
	}
	store := kv.NewStore(kvConf)

	//3、初始化数据库
	db, err := dao.NewDB(&c.DB)
	if err != nil {
		return nil, err
	}

	//4、装配进程内链上协作方与账本核心
	bank := chainsim.NewBank(c.Market.SelfAddress)
	custody := chainsim.NewCustody()
	market, err := ledger.NewMarket(ledger.Config{
		SelfAddress:  c.Market.SelfAddress,
		Admin:        c.Market.Admin,
		FeeRate:      c.Market.FeeRate,
		FeeScale:     c.Market.FeeScale,
		FeeRecipient: c.Market.FeeRecipient,
		Custody:      custody,
		Rail:         bank,
		Now:          func() int64 { return time.Now().Unix() },
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed on build market ledger")
	}
	//配置中的初始准入名单,平台自身地址必须在挂单合约名单里
	market.Registry.SetListingContractApproval(c.Market.SelfAddress, true)
	for _, contract := range c.Market.ApprovedContracts {
		market.Registry.SetListingContractApproval(contract, true)
	}
	for _, currency := range c.Market.ApprovedCurrencies {
		market.Registry.SetCurrencyApproval(currency, true)
	}

	//5、dao层初始化
	d := dao.New(context.Background(), db, store)

	//6、创建服务上下文
	serverCtx := NewServerCtx(
		WithDao(d),
		WithDB(db),
		WithKv(store),
		WithMarket(market),
		WithChainSim(bank, custody),
	)
	serverCtx.C = c
	serverCtx.ChainIdToChain = make(utils.ChainIdMap)
	for _, supported := range c.ChainSupported {
		serverCtx.ChainIdToChain[supported.ChainId] = supported.Name
		if serverCtx.JournalChain == "" {
			serverCtx.JournalChain = supported.Name
		}
	}
	if len(serverCtx.ChainIdToChain) == 0 {
		serverCtx.ChainIdToChain = utils.DefaultChainIdToChain
		serverCtx.JournalChain = "eth"
	}
	return serverCtx, nil
}
