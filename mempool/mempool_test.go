// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"

	"github.com/33cn/critter/common/crypto"
	"github.com/33cn/critter/types"
	"github.com/33cn/critter/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyA  = util.TestPrivkeyList[0]
	keyB  = util.TestPrivkeyList[1]
	addrA = util.PrivkeyToAddr(keyA)
)

func newTx(priv crypto.PrivKey, nonce int64) *types.Transaction {
	tx := &types.Transaction{Execer: "critter", Payload: []byte("{}"), Nonce: nonce}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func TestPushTx(t *testing.T) {
	mem := New(&types.Mempool{PoolCacheSize: 3})
	require.NoError(t, mem.PushTx(newTx(keyA, 1)))
	assert.Equal(t, types.ErrTxDup, mem.PushTx(newTx(keyA, 1)))
	require.NoError(t, mem.PushTx(newTx(keyA, 2)))
	require.NoError(t, mem.PushTx(newTx(keyB, 3)))
	assert.Equal(t, types.ErrMemFull, mem.PushTx(newTx(keyB, 4)))
	assert.Equal(t, 3, mem.Size())
	assert.Equal(t, int64(2), mem.TxNumOfAccount(addrA))

	assert.Equal(t, types.ErrEmptyTx, mem.PushTx(nil))
	assert.Equal(t, types.ErrEmptyTx, mem.PushTx(&types.Transaction{Execer: "critter"}))
	assert.Equal(t, types.ErrExecNameNotAllow, mem.PushTx(&types.Transaction{Payload: []byte("{}")}))
	assert.Equal(t, types.ErrSign, mem.PushTx(&types.Transaction{Execer: "critter", Payload: []byte("{}"), Nonce: 9}))
}

func TestGetTxList(t *testing.T) {
	mem := New(nil)
	for i := int64(0); i < 5; i++ {
		require.NoError(t, mem.PushTx(newTx(keyA, i)))
	}
	txs := mem.GetTxList(3)
	require.Len(t, txs, 3)
	for i, tx := range txs {
		assert.Equal(t, int64(i), tx.Nonce)
	}
	assert.Equal(t, 2, mem.Size())
	assert.Equal(t, int64(2), mem.TxNumOfAccount(addrA))

	// 已经打包的交易不能再次加入
	assert.Equal(t, types.ErrTxDup, mem.PushTx(newTx(keyA, 0)))

	txs = mem.GetTxList(10)
	assert.Len(t, txs, 2)
	assert.Equal(t, 0, mem.Size())
	assert.Equal(t, int64(0), mem.TxNumOfAccount(addrA))
	assert.Empty(t, mem.GetTxList(10))
}

func TestGetLatestTx(t *testing.T) {
	mem := New(nil)
	for i := int64(0); i < 15; i++ {
		require.NoError(t, mem.PushTx(newTx(keyA, i)))
	}
	latest := mem.GetLatestTx()
	require.Len(t, latest, 10)
	assert.Equal(t, int64(5), latest[0].Nonce)
	assert.Equal(t, int64(14), latest[9].Nonce)
}
