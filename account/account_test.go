// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/common/db"
	"github.com/33cn/critter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.ExecAddress("account.test.1")
	addr2 = address.ExecAddress("account.test.2")
	addr3 = address.ExecAddress("account.test.3")
)

func GenerAccDb() *DB {
	//构造账户数据库
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	return NewCoinsAccount(stroedb)
}

func (acc *DB) GenerAccData() {
	// 加入账户
	acc.SaveAccount(&types.Account{Balance: 1000 * types.Coin, Addr: addr1})
	acc.SaveAccount(&types.Account{Balance: 900 * types.Coin, Addr: addr2})
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("bad-exec", "crt", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("coins", "bad-symbol", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)

	acc := GenerAccDb()
	assert.Equal(t, []byte("mavl-coins-crt-"+addr1), acc.AccountKey(addr1))
}

func TestLoadAccount(t *testing.T) {
	acc := GenerAccDb()
	acc.GenerAccData()
	assert.Equal(t, 1000*types.Coin, acc.GetBalance(addr1))
	assert.Equal(t, uint64(0), acc.GetBalance(addr3))

	accs := acc.LoadAccounts([]string{addr1, addr2, addr3})
	require.Len(t, accs, 3)
	assert.Equal(t, addr3, accs[2].Addr)
}

func TestCheckTransfer(t *testing.T) {
	acc := GenerAccDb()
	acc.GenerAccData()

	require.NoError(t, acc.CheckTransfer(addr1, addr2, 10*types.Coin))
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addr3, addr2, 1))
	assert.Equal(t, types.ErrAmount, acc.CheckTransfer(addr1, addr2, 0))
	assert.Equal(t, types.ErrSendSameToRecv, acc.CheckTransfer(addr1, addr1, 1))
}

func TestTransfer(t *testing.T) {
	acc := GenerAccDb()
	acc.GenerAccData()

	receipt, err := acc.Transfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)

	var r types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &r))
	assert.Equal(t, 1000*types.Coin, r.Prev.Balance)
	assert.Equal(t, 990*types.Coin, r.Current.Balance)

	assert.Equal(t, 990*types.Coin, acc.GetBalance(addr1))
	assert.Equal(t, 910*types.Coin, acc.GetBalance(addr2))

	_, err = acc.Transfer(addr3, addr1, 1)
	assert.Equal(t, types.ErrNoBalance, err)
	// 失败的转账不修改余额
	assert.Equal(t, 990*types.Coin, acc.GetBalance(addr1))
}

func TestGenesisInit(t *testing.T) {
	acc := GenerAccDb()
	receipt, err := acc.GenesisInit(addr3, 100*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, 100*types.Coin, acc.GetBalance(addr3))

	_, err = acc.GenesisInit(addr3, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.GenesisInit(addr3, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestMergeReceipt(t *testing.T) {
	r1 := &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: []byte("a")}}}
	r2 := &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{{Ty: 1}}}
	assert.Equal(t, r2, MergeReceipt(nil, r2))
	assert.Equal(t, r1, MergeReceipt(r1, nil))
	m := MergeReceipt(r1, r2)
	assert.Len(t, m.KV, 1)
	assert.Len(t, m.Logs, 1)
}
