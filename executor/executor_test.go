// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	"github.com/33cn/critter/common/address"
	dbm "github.com/33cn/critter/common/db"
	drivers "github.com/33cn/critter/system/dapp"
	"github.com/33cn/critter/types"
	"github.com/33cn/critter/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kvName = "kvtest"

type kvSet struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type kvAction struct {
	Ty   int32  `json:"ty"`
	Set  *kvSet `json:"set,omitempty"`
	Fail *kvSet `json:"fail,omitempty"`
}

func (a *kvAction) GetTy() int32 { return a.Ty }

func (a *kvAction) GetValue() interface{} {
	if a.Ty == 1 {
		return a.Set
	}
	return a.Fail
}

type kvType struct{}

func (kvType) GetName() string                     { return kvName }
func (kvType) NewPayload() types.ActionMessage     { return &kvAction{} }
func (kvType) GetTypeMap() map[string]int32        { return map[string]int32{"Set": 1, "Fail": 2} }
func (kvType) GetLogMap() map[int32]*types.LogInfo { return nil }

type kvDriver struct {
	drivers.DriverBase
}

func newKV() drivers.Driver {
	d := &kvDriver{}
	d.SetChild(d)
	d.SetExecutorType(kvType{})
	return d
}

func (d *kvDriver) GetDriverName() string { return kvName }

func (d *kvDriver) Exec_Set(set *kvSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	kv := drivers.NewKVCreator(d.GetStateDB())
	kv.Add([]byte("mavl-kvtest-"+set.Key), []byte(set.Value))
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList()}, nil
}

// Exec_Fail 先写入状态再失败, 写入不能生效
func (d *kvDriver) Exec_Fail(set *kvSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := d.GetStateDB().Set([]byte("mavl-kvtest-"+set.Key), []byte(set.Value)); err != nil {
		return nil, err
	}
	return nil, errors.New("kvtest fail")
}

func (d *kvDriver) ExecLocal_Set(set *kvSet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-kvtest-" + set.Key), Value: []byte(set.Value)}}}, nil
}

func (d *kvDriver) Query_Get(req *kvSet) (types.Message, error) {
	v, err := d.GetStateDB().Get([]byte("mavl-kvtest-" + req.Key))
	if err != nil {
		return nil, types.ErrNotFound
	}
	return &kvSet{Key: req.Key, Value: string(v)}, nil
}

func init() {
	types.RegistorExecutor(kvName, kvType{})
	drivers.Register(kvName, newKV)
}

func newTestExecutor(t *testing.T) (*Executor, dbm.DB, dbm.DB) {
	state, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	return New(state, local), state, local
}

func kvTx(ty int32, key, value string) *types.Transaction {
	action := &kvAction{Ty: ty}
	set := &kvSet{Key: key, Value: value}
	if ty == 1 {
		action.Set = set
	} else {
		action.Fail = set
	}
	tx := types.NewTransaction(kvName, action)
	tx.Sign(types.SECP256K1, util.TestPrivkeyList[0])
	return tx
}

func TestGenesis(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	alice := address.ExecAddress("alice")
	err := exec.Genesis([]*types.GenesisAccount{{Addr: alice, Amount: 100 * types.Coin}})
	require.NoError(t, err)
	assert.Equal(t, 100*types.Coin, exec.GetBalance(alice).Balance)

	// 金额非法时整体回滚
	bob := address.ExecAddress("bob")
	err = exec.Genesis([]*types.GenesisAccount{{Addr: bob, Amount: 1}, {Addr: alice, Amount: 0}})
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, uint64(0), exec.GetBalance(bob).Balance)
}

func TestExecBlock(t *testing.T) {
	exec, state, local := newTestExecutor(t)
	ok := kvTx(1, "a", "1")
	fail := kvTx(2, "b", "2")
	unknown := &types.Transaction{Execer: "nosuch", Payload: []byte("{}")}
	unknown.Sign(types.SECP256K1, util.TestPrivkeyList[0])
	unsigned := types.NewTransaction(kvName, &kvAction{Ty: 1, Set: &kvSet{Key: "c", Value: "3"}})
	block := &types.Block{Height: 1, BlockTime: 100, Txs: []*types.Transaction{ok, fail, unknown, unsigned}}

	receipts, err := exec.ExecBlock(block, []byte("entropy"))
	require.NoError(t, err)
	require.Len(t, receipts, 4)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, int32(types.ExecErr), receipts[1].Ty)
	assert.Equal(t, int32(types.ExecErr), receipts[2].Ty)
	assert.Equal(t, int32(types.ExecErr), receipts[3].Ty)

	_, v, err := types.DecodeLog(kvName, receipts[3].Logs[0])
	require.NoError(t, err)
	assert.Equal(t, types.ErrSign.Error(), v.(*types.ReceiptLogErr).Err)
	_, err = state.Get([]byte("mavl-kvtest-c"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	name, v, err := types.DecodeLog(kvName, receipts[1].Logs[0])
	require.NoError(t, err)
	assert.Equal(t, "LogErr", name)
	assert.Equal(t, "kvtest fail", v.(*types.ReceiptLogErr).Err)

	value, err := state.Get([]byte("mavl-kvtest-a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)
	_, err = state.Get([]byte("mavl-kvtest-b"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	value, err = local.Get([]byte("LODB-kvtest-a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)

	result, err := exec.GetTx(ok.Hash())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int32(0), result.Index)
	assert.Equal(t, int32(types.ExecOk), result.Receipt.Ty)

	result, err = exec.GetTx(fail.Hash())
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecErr), result.Receipt.Ty)

	_, err = exec.GetTx([]byte("nosuch"))
	assert.Equal(t, types.ErrHashNotExist, err)
}

func TestQuery(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	_, err := exec.ExecBlock(&types.Block{Height: 1, Txs: []*types.Transaction{kvTx(1, "q", "v")}}, nil)
	require.NoError(t, err)

	msg, err := exec.Query(kvName, "Get", types.Encode(&kvSet{Key: "q"}))
	require.NoError(t, err)
	assert.Equal(t, "v", msg.(*kvSet).Value)

	_, err = exec.Query(kvName, "Get", types.Encode(&kvSet{Key: "none"}))
	assert.Equal(t, types.ErrNotFound, err)
	_, err = exec.Query(kvName, "Nosuch", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = exec.Query("nosuch", "Get", nil)
	assert.Equal(t, types.ErrUnknownDriver, err)
}
