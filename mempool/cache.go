// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mempool

import (
	"container/list"

	"github.com/33cn/critter/types"
)

//--------------------------------------------------------------------------------
// Module txCache

type txCache struct {
	size       int
	txMap      map[string]*list.Element
	txList     *list.List
	txFrontTen []*types.Transaction
	accMap     map[string]int64
}

// Item为Mempool中包装交易的数据结构
type Item struct {
	value     *types.Transaction
	enterTime int64
}

// newTxCache初始化txCache
func newTxCache(cacheSize int) *txCache {
	return &txCache{
		size:       cacheSize,
		txMap:      make(map[string]*list.Element, cacheSize),
		txList:     list.New(),
		txFrontTen: make([]*types.Transaction, 0),
		accMap:     make(map[string]int64),
	}
}

// TxNumOfAccount 返回账户在Mempool中交易数量
func (cache *txCache) TxNumOfAccount(addr string) int64 {
	return cache.accMap[addr]
}

// Exists 判断txCache中是否存在给定tx
func (cache *txCache) Exists(hash []byte) bool {
	_, exists := cache.txMap[string(hash)]
	return exists
}

// Push 把给定tx添加到txCache；如果tx已经存在txCache中或Mempool已满则返回对应error
func (cache *txCache) Push(tx *types.Transaction, now int64) error {
	hash := tx.Hash()
	if cache.Exists(hash) {
		return types.ErrTxDup
	}
	if cache.txList.Len() >= cache.size {
		return types.ErrMemFull
	}
	it := &Item{value: tx, enterTime: now}
	cache.txMap[string(hash)] = cache.txList.PushBack(it)
	cache.accMap[tx.From()]++

	if len(cache.txFrontTen) >= latestTxNum {
		cache.txFrontTen = cache.txFrontTen[len(cache.txFrontTen)-latestTxNum+1:]
	}
	cache.txFrontTen = append(cache.txFrontTen, tx)
	return nil
}

// GetLatestTx 返回最新十条加入到txCache的交易
func (cache *txCache) GetLatestTx() []*types.Transaction {
	txs := make([]*types.Transaction, len(cache.txFrontTen))
	copy(txs, cache.txFrontTen)
	return txs
}

// Pop 按照进入的先后顺序取出最多 n 条交易
func (cache *txCache) Pop(n int) []*types.Transaction {
	var txs []*types.Transaction
	for len(txs) < n {
		e := cache.txList.Front()
		if e == nil {
			break
		}
		tx := e.Value.(*Item).value
		cache.Remove(tx.Hash())
		txs = append(txs, tx)
	}
	return txs
}

// Remove 移除txCache中给定tx
func (cache *txCache) Remove(hash []byte) {
	e, ok := cache.txMap[string(hash)]
	if !ok {
		return
	}
	cache.txList.Remove(e)
	delete(cache.txMap, string(hash))
	addr := e.Value.(*Item).value.From()
	// 账户交易数量减1
	if cache.accMap[addr] > 1 {
		cache.accMap[addr]--
	} else {
		delete(cache.accMap, addr)
	}
}

// Size 返回txCache中已存tx数目
func (cache *txCache) Size() int {
	return cache.txList.Len()
}
