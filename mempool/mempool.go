// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mempool 交易池: 去重, 容量限制, 按先后顺序打包
package mempool

import (
	"sync"
	"time"

	"github.com/33cn/critter/common"
	"github.com/33cn/critter/metrics"
	"github.com/33cn/critter/types"
	lru "github.com/hashicorp/golang-lru"
)

// Mempool 交易池
type Mempool struct {
	mu    sync.Mutex
	cache *txCache
	// 已经打包的交易, 重复发送时拒绝
	addedTx *lru.Cache
}

// New 创建交易池
func New(cfg *types.Mempool) *Mempool {
	size := poolCacheSize
	if cfg != nil && cfg.PoolCacheSize > 0 {
		size = cfg.PoolCacheSize
	}
	added, err := lru.New(mempoolAddedTxSize)
	if err != nil {
		panic(err)
	}
	return &Mempool{cache: newTxCache(size), addedTx: added}
}

// PushTx 检查交易并加入交易池
func (mem *Mempool) PushTx(tx *types.Transaction) error {
	if tx == nil {
		return types.ErrEmptyTx
	}
	if err := tx.Check(); err != nil {
		return err
	}
	hash := tx.Hash()
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if mem.addedTx.Contains(string(hash)) {
		return types.ErrTxDup
	}
	if err := mem.cache.Push(tx, time.Now().Unix()); err != nil {
		mlog.Debug("PushTx", "hash", common.ToHex(hash), "err", err)
		return err
	}
	metrics.Counter("mempool.tx.push").Inc(1)
	return nil
}

// GetTxList 取出最多 txListSize 条交易用于打包
func (mem *Mempool) GetTxList(txListSize int) []*types.Transaction {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	txs := mem.cache.Pop(txListSize)
	for _, tx := range txs {
		mem.addedTx.Add(string(tx.Hash()), nil)
	}
	return txs
}

// Size 交易池中的交易数
func (mem *Mempool) Size() int {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return mem.cache.Size()
}

// TxNumOfAccount 账户在交易池中的交易数
func (mem *Mempool) TxNumOfAccount(addr string) int64 {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return mem.cache.TxNumOfAccount(addr)
}

// GetLatestTx 最近加入的交易
func (mem *Mempool) GetLatestTx() []*types.Transaction {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return mem.cache.GetLatestTx()
}
