// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/33cn/critter/common/address"
	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/executor"
	"github.com/33cn/critter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemDB(t *testing.T, name string) dbm.DB {
	db, err := dbm.NewGoMemDB(name, "", 0)
	require.NoError(t, err)
	return db
}

func newTestChain(t *testing.T, blockDB dbm.DB) *BlockChain {
	exec := executor.New(newMemDB(t, "state"), newMemDB(t, "local"))
	chain, err := New(&types.BlockChain{RecentHashCount: 4}, blockDB, exec)
	require.NoError(t, err)
	return chain
}

func TestInitGenesis(t *testing.T) {
	chain := newTestChain(t, newMemDB(t, "blocks"))
	assert.Equal(t, int64(-1), chain.Height())
	_, err := chain.ProcessBlock(nil, 1)
	assert.Equal(t, types.ErrBlockNotFound, err)

	alice := address.ExecAddress("alice")
	genesis := &types.Genesis{Accounts: []*types.GenesisAccount{{Addr: alice, Amount: 10 * types.Coin}}}
	require.NoError(t, chain.InitGenesis(genesis, 1000))
	assert.Equal(t, int64(0), chain.Height())
	assert.Equal(t, 10*types.Coin, chain.exec.GetBalance(alice).Balance)

	// 已经有区块时不会重复分配
	require.NoError(t, chain.InitGenesis(genesis, 1000))
	assert.Equal(t, 10*types.Coin, chain.exec.GetBalance(alice).Balance)
}

func TestProcessBlock(t *testing.T) {
	blocks := newMemDB(t, "blocks")
	chain := newTestChain(t, blocks)
	require.NoError(t, chain.InitGenesis(&types.Genesis{}, 1000))

	var prev []byte
	for i := 1; i <= 6; i++ {
		// 时间回退时沿用上一个区块的时间
		detail, err := chain.ProcessBlock(nil, int64(1000+i*10-20))
		require.NoError(t, err)
		assert.Equal(t, int64(i), detail.Block.Height)
		if prev != nil {
			assert.Equal(t, prev, detail.Block.ParentHash)
		}
		assert.True(t, detail.Block.BlockTime >= 1000)
		prev = detail.Block.Hash()
	}
	assert.Equal(t, int64(6), chain.Height())
	header := chain.LastHeader()
	assert.Equal(t, prev, header.Hash)

	// 超出缓存大小的高度从数据库读取
	hash0, err := chain.GetBlockHash(0)
	require.NoError(t, err)
	detail0, err := chain.GetBlock(0)
	require.NoError(t, err)
	assert.Equal(t, hash0, detail0.Block.Hash())
	_, err = chain.GetBlockHash(100)
	assert.Equal(t, types.ErrHeightNotExist, err)

	// 重新打开时恢复高度
	reopened := newTestChain(t, blocks)
	assert.Equal(t, int64(6), reopened.Height())
	assert.Equal(t, prev, reopened.LastHeader().Hash)

	chain.Close()
	_, err = chain.ProcessBlock(nil, 2000)
	assert.Equal(t, types.ErrChainClosed, err)
}

func TestProcessBlockWithTxs(t *testing.T) {
	chain := newTestChain(t, newMemDB(t, "blocks"))
	require.NoError(t, chain.InitGenesis(&types.Genesis{}, 1000))
	tx := &types.Transaction{Execer: "nosuch", Payload: []byte("{}")}
	detail, err := chain.ProcessBlock([]*types.Transaction{tx}, 1001)
	require.NoError(t, err)
	require.Len(t, detail.Receipts, 1)
	assert.Equal(t, int32(types.ExecErr), detail.Receipts[0].Ty)

	saved, err := chain.GetBlock(1)
	require.NoError(t, err)
	assert.Equal(t, types.CalcTxRoot([]*types.Transaction{tx}), saved.Block.TxHash)
	require.Len(t, saved.Receipts, 1)
}
