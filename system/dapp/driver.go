// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动框架: 交易按照动作名字分发到子类的
// Exec_xxx, ExecLocal_xxx 方法, 查询分发到 Query_xxx 方法
package dapp

import (
	"reflect"

	"github.com/33cn/critter/account"
	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/types"
	"github.com/pkg/errors"
)

var blog = log.New("module", "execs.base")

// 方法名前缀
const (
	ExecPrefix      = "Exec_"
	ExecLocalPrefix = "ExecLocal_"
	QueryPrefix     = "Query_"
)

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	// SetEnv 设置区块环境: 高度, 区块时间, 以及上一个区块的哈希(不可预测的随机源)
	SetEnv(height, blocktime int64, entropy []byte)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetExecutorType() types.ExecutorType
}

// DriverBase 执行器的公共部分, 子类通过 SetChild 注册自己
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	entropy      []byte
	child        Driver
	ety          types.ExecutorType
	execFuncs    map[string]reflect.Method
	localFuncs   map[string]reflect.Method
	queryFuncs   map[string]reflect.Method
}

// SetChild 设置子类, 并且收集子类的 Exec_, ExecLocal_, Query_ 方法
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.execFuncs = types.ListPrefixMethod(e, ExecPrefix)
	d.localFuncs = types.ListPrefixMethod(e, ExecLocalPrefix)
	d.queryFuncs = types.ListPrefixMethod(e, QueryPrefix)
}

// SetExecutorType 设置执行器类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType 获取执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// SetEnv 设置区块环境
func (d *DriverBase) SetEnv(height, blocktime int64, entropy []byte) {
	d.height = height
	d.blocktime = blocktime
	d.entropy = entropy
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetEntropy 上一个区块的哈希
func (d *DriverBase) GetEntropy() []byte {
	return d.entropy
}

// SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(db)
	}
	d.coinsaccount.SetDB(db)
}

// GetStateDB 获取状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB 获取本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetCoinsAccount 主币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(d.statedb)
	}
	return d.coinsaccount
}

// GetName 执行器名字
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

// CheckTx 默认不做检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

func (d *DriverBase) decodeAction(tx *types.Transaction) (string, interface{}, error) {
	if d.ety == nil {
		return "", nil, types.ErrActionNotSupport
	}
	name, payload, err := types.DecodePayload(tx)
	if err != nil {
		return "", nil, err
	}
	value := payload.GetValue()
	if types.IsNilVal(reflect.ValueOf(value)) {
		return "", nil, errors.Wrapf(types.ErrInvalidParam, "empty action %s", name)
	}
	return name, value, nil
}

// Exec 调用子类的 Exec_xxx
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", tx.Execer, "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.decodeAction(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.execFuncs[name]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	ret, err := types.CallMethod(d.child, method, value, tx, index)
	if err != nil {
		return nil, err
	}
	receipt, ok = ret.(*types.Receipt)
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	return receipt, nil
}

// ExecLocal 调用子类的 ExecLocal_xxx, 没有实现时返回空的集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call localexec error", "tx.exec", tx.Execer, "info", r)
			err = types.ErrActionNotSupport
			set = nil
		}
	}()
	set = &types.LocalDBSet{}
	name, value, err := d.decodeAction(tx)
	if err != nil {
		return set, nil
	}
	method, ok := d.localFuncs[name]
	if !ok {
		return set, nil
	}
	ret, err := types.CallMethod(d.child, method, value, tx, receipt, index)
	if err != nil {
		blog.Debug("call ExecLocal", "tx.Execer", tx.Execer, "err", err)
		return nil, err
	}
	if lset, ok := ret.(*types.LocalDBSet); ok && lset != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return set, nil
}

// Query 调用子类的 Query_xxx, 参数按照方法的参数类型解码
func (d *DriverBase) Query(funcName string, params []byte) (msg types.Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call query error", "func", funcName, "info", r)
			err = types.ErrQueryNotSupport
			msg = nil
		}
	}()
	method, ok := d.queryFuncs[funcName]
	if !ok {
		return nil, types.ErrQueryNotSupport
	}
	if method.Type.NumIn() != 2 {
		return nil, types.ErrQueryNotSupport
	}
	argType := method.Type.In(1)
	if argType.Kind() != reflect.Ptr {
		return nil, types.ErrQueryNotSupport
	}
	arg := reflect.New(argType.Elem())
	if len(params) > 0 {
		if err := types.Decode(params, arg.Interface()); err != nil {
			return nil, errors.Wrapf(types.ErrInvalidParam, "decode %s: %v", funcName, err)
		}
	}
	return types.CallMethod(d.child, method, arg.Interface())
}

// QueryNames 支持的查询
func (d *DriverBase) QueryNames() []string {
	names := make([]string, 0, len(d.queryFuncs))
	for name := range d.queryFuncs {
		names = append(names, name)
	}
	return names
}
