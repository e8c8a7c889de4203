// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/33cn/critter/common"
	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/types"
)

var (
	blockLastHeight = []byte("blockLastHeight")
	storeLog        = chainlog.New("submodule", "store")
)

// 存储block hash对应的block和收据
func calcHashToBlockBodyKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("Body:%v", hash))
}

// 存储block hash对应的header信息
func calcHashToBlockHeaderKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("Header:%v", hash))
}

// 存储block height 对应的block  hash
func calcHeightToHashKey(height int64) []byte {
	return []byte(fmt.Sprintf("Height:%v", height))
}

// BlockStore 区块存储
type BlockStore struct {
	db        dbm.DB
	height    int64
	mu        sync.Mutex
	lastBlock *types.Block
}

// NewBlockStore 打开区块存储, 从数据库中恢复最新高度
func NewBlockStore(db dbm.DB) (*BlockStore, error) {
	height, err := LoadBlockStoreHeight(db)
	if err != nil && err != types.ErrHeightNotExist {
		return nil, err
	}
	blockStore := &BlockStore{
		height: height,
		db:     db,
	}
	if height == -1 {
		chainlog.Info("load block height error, may be init database", "height", height)
		return blockStore, nil
	}
	blockdetail, err := blockStore.LoadBlockByHeight(height)
	if err != nil {
		chainlog.Error("init::LoadBlockByHeight::database may be crash", "err", err)
		return nil, err
	}
	blockStore.lastBlock = blockdetail.Block
	return blockStore, nil
}

// Height 返回BlockStore保存的当前block高度, 没有区块时为 -1
func (bs *BlockStore) Height() int64 {
	return atomic.LoadInt64(&bs.height)
}

// LastHeader 返回BlockStore保存的当前blockheader
func (bs *BlockStore) LastHeader() *types.Header {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if bs.lastBlock == nil {
		return &types.Header{Height: -1}
	}
	header := bs.lastBlock.GetHeader()
	header.Hash = bs.lastBlock.Hash()
	return header
}

// LastBlock 获取最新的block信息
func (bs *BlockStore) LastBlock() *types.Block {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return bs.lastBlock
}

// LoadBlockByHeight 通过height高度获取BlockDetail信息
func (bs *BlockStore) LoadBlockByHeight(height int64) (*types.BlockDetail, error) {
	hash, err := bs.GetBlockHashByHeight(height)
	if err != nil {
		return nil, err
	}
	return bs.LoadBlockByHash(hash)
}

// LoadBlockByHash 通过hash获取BlockDetail信息
func (bs *BlockStore) LoadBlockByHash(hash []byte) (*types.BlockDetail, error) {
	body, err := bs.db.Get(calcHashToBlockBodyKey(hash))
	if body == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("LoadBlockByHash calcHashToBlockBodyKey ", "hash", common.ToHex(hash), "err", err)
		}
		return nil, types.ErrHashNotExist
	}
	var blockdetail types.BlockDetail
	if err := types.Decode(body, &blockdetail); err != nil {
		storeLog.Error("LoadBlockByHash", "err", err)
		return nil, err
	}
	return &blockdetail, nil
}

// GetBlockHeaderByHash 区块头
func (bs *BlockStore) GetBlockHeaderByHash(hash []byte) (*types.Header, error) {
	value, err := bs.db.Get(calcHashToBlockHeaderKey(hash))
	if err != nil {
		return nil, types.ErrHashNotExist
	}
	var header types.Header
	if err := types.Decode(value, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// SaveBlock 批量保存blocks信息到db数据库中
func (bs *BlockStore) SaveBlock(storeBatch dbm.Batch, blockdetail *types.BlockDetail) error {
	height := blockdetail.Block.Height
	if len(blockdetail.Receipts) != len(blockdetail.Block.Txs) {
		storeLog.Error("SaveBlock Receipts mismatch", "height", height)
		return types.ErrBlockExec
	}
	hash := blockdetail.Block.Hash()
	storeBatch.Set(calcHashToBlockBodyKey(hash), types.Encode(blockdetail))

	header := blockdetail.Block.GetHeader()
	header.Hash = hash
	storeBatch.Set(calcHashToBlockHeaderKey(hash), types.Encode(header))

	//更新最新的block 高度
	storeBatch.Set(blockLastHeight, []byte(strconv.FormatInt(height, 10)))

	//存储block height和block hash的对应关系，便于通过height查询block
	storeBatch.Set(calcHeightToHashKey(height), hash)

	storeLog.Debug("SaveBlock success", "blockheight", height, "hash", common.ToHex(hash))
	return nil
}

// UpdateLastBlock 区块写入数据库之后更新缓存的高度和最新区块
func (bs *BlockStore) UpdateLastBlock(block *types.Block) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastBlock = block
	atomic.StoreInt64(&bs.height, block.Height)
}

// GetBlockHashByHeight 高度对应的区块哈希
func (bs *BlockStore) GetBlockHashByHeight(height int64) ([]byte, error) {
	hash, err := bs.db.Get(calcHeightToHashKey(height))
	if hash == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("GetBlockHashByHeight", "height", height, "err", err)
		}
		return nil, types.ErrHeightNotExist
	}
	return hash, nil
}

// NewBatch 新建批量写
func (bs *BlockStore) NewBatch(sync bool) dbm.Batch {
	return bs.db.NewBatch(sync)
}

// LoadBlockStoreHeight 数据库中保存的最新高度
func LoadBlockStoreHeight(db dbm.DB) (int64, error) {
	bytes, err := db.Get(blockLastHeight)
	if bytes == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("LoadBlockStoreHeight", "error", err)
		}
		return -1, types.ErrHeightNotExist
	}
	return strconv.ParseInt(string(bytes), 10, 64)
}
