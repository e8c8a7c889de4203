// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solo

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/33cn/critter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPool struct {
	mock.Mock
}

func (m *mockPool) GetTxList(n int) []*types.Transaction {
	args := m.Called(n)
	return args.Get(0).([]*types.Transaction)
}

type countingChain struct {
	height int64
}

func (c *countingChain) ProcessBlock(txs []*types.Transaction, blocktime int64) (*types.BlockDetail, error) {
	h := atomic.AddInt64(&c.height, 1)
	return &types.BlockDetail{Block: &types.Block{Height: h, BlockTime: blocktime, Txs: txs}}, nil
}

func TestCreateBlock(t *testing.T) {
	pool := &mockPool{}
	txs := []*types.Transaction{{Execer: "critter", Payload: []byte("{}")}}
	pool.On("GetTxList", 5).Return(txs).Once()
	chain := &countingChain{}
	client := New(&types.Consensus{MaxTxNumber: 5, BlockInterval: 10}, pool, chain)
	client.now = func() time.Time { return time.Unix(1234, 0) }

	detail, err := client.CreateBlock()
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Block.Height)
	assert.Equal(t, int64(1234), detail.Block.BlockTime)
	assert.Equal(t, txs, detail.Block.Txs)
	pool.AssertExpectations(t)
}

func TestStartClose(t *testing.T) {
	pool := &mockPool{}
	pool.On("GetTxList", 10).Return([]*types.Transaction{})
	chain := &countingChain{}
	client := New(&types.Consensus{MaxTxNumber: 10, BlockInterval: 5}, pool, chain)
	client.Start()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&chain.height) >= 2
	}, time.Second, 5*time.Millisecond)
	client.Close()
	// 重复关闭
	client.Close()
	h := atomic.LoadInt64(&chain.height)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, h, atomic.LoadInt64(&chain.height))
}
