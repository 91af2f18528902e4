package dao

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/kv"
	"gorm.io/gorm"
)

type Dao struct {
	ctx     context.Context
	DB      *gorm.DB
	KvStore kv.Store
}

func New(ctx context.Context, db *gorm.DB, kvStore kv.Store) *Dao {
	return &Dao{
		ctx:     ctx,
		DB:      db,
		KvStore: kvStore,
	}
}
