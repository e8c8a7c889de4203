// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain 保存区块, 维护高度和最近的区块哈希.
// 上一个区块的哈希作为下一个区块中交易的随机源
package blockchain

import (
	"sync"
	"sync/atomic"

	"github.com/33cn/critter/common"
	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/executor"
	"github.com/33cn/critter/metrics"
	"github.com/33cn/critter/types"
	lru "github.com/hashicorp/golang-lru"
)

var chainlog = log.New("module", "blockchain")

// BlockChain 链
type BlockChain struct {
	mu         sync.Mutex
	blockStore *BlockStore
	exec       *executor.Executor
	//最近区块的 height -> hash
	hashCache *lru.Cache
	closed    int32
}

// New 打开链, db 保存区块
func New(cfg *types.BlockChain, db dbm.DB, exec *executor.Executor) (*BlockChain, error) {
	store, err := NewBlockStore(db)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New(cfg.RecentHashCount)
	if err != nil {
		return nil, err
	}
	return &BlockChain{blockStore: store, exec: exec, hashCache: cache}, nil
}

// InitGenesis 没有区块时生成创世区块并给创世账户分配余额
func (chain *BlockChain) InitGenesis(genesis *types.Genesis, blocktime int64) error {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	if chain.blockStore.Height() >= 0 {
		return nil
	}
	if err := chain.exec.Genesis(genesis.Accounts); err != nil {
		return err
	}
	block := &types.Block{
		ParentHash: make([]byte, 32),
		Height:     0,
		BlockTime:  blocktime,
		TxHash:     types.CalcTxRoot(nil),
	}
	chainlog.Info("InitGenesis", "accounts", len(genesis.Accounts), "blocktime", blocktime)
	return chain.saveBlock(&types.BlockDetail{Block: block})
}

// ProcessBlock 用交易池中取出的交易生成并执行下一个区块
func (chain *BlockChain) ProcessBlock(txs []*types.Transaction, blocktime int64) (*types.BlockDetail, error) {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	if atomic.LoadInt32(&chain.closed) == 1 {
		return nil, types.ErrChainClosed
	}
	last := chain.blockStore.LastBlock()
	if last == nil {
		return nil, types.ErrBlockNotFound
	}
	// 区块时间不能回退
	if blocktime < last.BlockTime {
		blocktime = last.BlockTime
	}
	parentHash := last.Hash()
	block := &types.Block{
		ParentHash: parentHash,
		Height:     last.Height + 1,
		BlockTime:  blocktime,
		TxHash:     types.CalcTxRoot(txs),
		Txs:        txs,
	}
	receipts, err := chain.exec.ExecBlock(block, parentHash)
	if err != nil {
		chainlog.Error("ProcessBlock exec", "height", block.Height, "err", err)
		return nil, err
	}
	detail := &types.BlockDetail{Block: block, Receipts: receipts}
	if err := chain.saveBlock(detail); err != nil {
		return nil, err
	}
	chainlog.Debug("ProcessBlock", "height", block.Height, "txs", len(txs), "parent", common.ToHex(parentHash))
	return detail, nil
}

func (chain *BlockChain) saveBlock(detail *types.BlockDetail) error {
	batch := chain.blockStore.NewBatch(true)
	if err := chain.blockStore.SaveBlock(batch, detail); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		chainlog.Error("saveBlock", "height", detail.Block.Height, "err", err)
		return err
	}
	chain.blockStore.UpdateLastBlock(detail.Block)
	chain.hashCache.Add(detail.Block.Height, detail.Block.Hash())
	metrics.Gauge("blockchain.height").Update(detail.Block.Height)
	return nil
}

// GetBlockHash 高度对应的区块哈希, 最近的区块从缓存中读取
func (chain *BlockChain) GetBlockHash(height int64) ([]byte, error) {
	if v, ok := chain.hashCache.Get(height); ok {
		return v.([]byte), nil
	}
	hash, err := chain.blockStore.GetBlockHashByHeight(height)
	if err != nil {
		return nil, err
	}
	chain.hashCache.Add(height, hash)
	return hash, nil
}

// GetBlock 按高度查询区块和收据
func (chain *BlockChain) GetBlock(height int64) (*types.BlockDetail, error) {
	return chain.blockStore.LoadBlockByHeight(height)
}

// LastHeader 最新区块头
func (chain *BlockChain) LastHeader() *types.Header {
	return chain.blockStore.LastHeader()
}

// Height 当前高度
func (chain *BlockChain) Height() int64 {
	return chain.blockStore.Height()
}

// Close 关闭之后不再接受新的区块
func (chain *BlockChain) Close() {
	atomic.StoreInt32(&chain.closed, 1)
	chainlog.Info("blockchain module closed")
}
