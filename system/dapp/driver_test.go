// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"testing"

	"github.com/33cn/critter/common/db"
	"github.com/33cn/critter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoName = "demo"

type demoSet struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type demoAction struct {
	Ty   int32    `json:"ty"`
	Set  *demoSet `json:"set,omitempty"`
	Fail *demoSet `json:"fail,omitempty"`
}

func (a *demoAction) GetTy() int32 { return a.Ty }

func (a *demoAction) GetValue() interface{} {
	switch a.Ty {
	case 1:
		return a.Set
	case 2:
		return a.Fail
	}
	return nil
}

type demoType struct{}

func (demoType) GetName() string                     { return demoName }
func (demoType) NewPayload() types.ActionMessage     { return &demoAction{} }
func (demoType) GetTypeMap() map[string]int32        { return map[string]int32{"Set": 1, "Fail": 2} }
func (demoType) GetLogMap() map[int32]*types.LogInfo { return nil }

type demo struct {
	DriverBase
}

func newDemo() Driver {
	d := &demo{}
	d.SetChild(d)
	d.SetExecutorType(demoType{})
	return d
}

func (d *demo) GetDriverName() string { return demoName }

func (d *demo) Exec_Set(set *demoSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	kv := NewKVCreator(d.GetStateDB())
	kv.Add([]byte(set.Key), []byte(set.Value))
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList()}, nil
}

func (d *demo) Exec_Fail(set *demoSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, errors.New("demo fail")
}

func (d *demo) ExecLocal_Set(set *demoSet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("local-" + set.Key), Value: []byte(set.Value)}}}, nil
}

func (d *demo) Query_Get(req *demoSet) (types.Message, error) {
	v, err := d.GetStateDB().Get([]byte(req.Key))
	if err != nil {
		return nil, err
	}
	return &demoSet{Key: req.Key, Value: string(v)}, nil
}

func init() {
	types.RegistorExecutor(demoName, demoType{})
	Register(demoName, newDemo)
}

func demoTx(ty int32, set *demoSet) *types.Transaction {
	action := &demoAction{Ty: ty}
	if ty == 1 {
		action.Set = set
	} else {
		action.Fail = set
	}
	return types.NewTransaction(demoName, action)
}

func TestRegister(t *testing.T) {
	assert.True(t, IsRegistered(demoName))
	assert.Contains(t, ListDrivers(), demoName)
	assert.True(t, IsDriverAddress(ExecAddress(demoName)))
	assert.Panics(t, func() { Register(demoName, newDemo) })

	_, err := LoadDriver("nosuch")
	assert.Equal(t, types.ErrUnknownDriver, err)
}

func TestDriverExec(t *testing.T) {
	d, err := LoadDriver(demoName)
	require.NoError(t, err)
	mem, _ := db.NewGoMemDB("demo", "", 0)
	d.SetStateDB(mem)
	d.SetEnv(10, 1000, []byte("entropy"))
	assert.Equal(t, demoName, d.GetName())

	tx := demoTx(1, &demoSet{Key: "k", Value: "v"})
	receipt, err := d.Exec(tx, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.KV, 1)

	_, err = d.Exec(demoTx(2, &demoSet{Key: "k"}), 0)
	assert.EqualError(t, err, "demo fail")

	// 动作值为空
	_, err = d.Exec(demoTx(1, nil), 0)
	assert.Error(t, err)

	set, err := d.ExecLocal(tx, &types.ReceiptData{Ty: types.ExecOk}, 0)
	require.NoError(t, err)
	require.Len(t, set.KV, 1)
	assert.Equal(t, []byte("local-k"), set.KV[0].Key)

	// 没有实现 ExecLocal_Fail, 返回空集合
	set, err = d.ExecLocal(demoTx(2, &demoSet{Key: "k"}), &types.ReceiptData{}, 0)
	require.NoError(t, err)
	assert.Empty(t, set.KV)
}

func TestDriverQuery(t *testing.T) {
	d, _ := LoadDriver(demoName)
	mem, _ := db.NewGoMemDB("demo", "", 0)
	mem.Set([]byte("k"), []byte("v"))
	d.SetStateDB(mem)

	reply, err := d.Query("Get", types.Encode(&demoSet{Key: "k"}))
	require.NoError(t, err)
	assert.Equal(t, "v", reply.(*demoSet).Value)

	_, err = d.Query("Get", types.Encode(&demoSet{Key: "nokey"}))
	assert.Equal(t, db.ErrNotFoundInDb, err)

	_, err = d.Query("Nothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)

	_, err = d.Query("Get", []byte("{bad json"))
	assert.Error(t, err)
}
