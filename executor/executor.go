// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 按顺序执行区块中的交易, 维护状态数据库和本地索引数据库
package executor

import (
	"sync"

	"github.com/33cn/critter/account"
	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/metrics"
	drivers "github.com/33cn/critter/system/dapp"
	"github.com/33cn/critter/types"
)

var elog = log.New("module", "execs")

// Executor 执行器, 状态数据库保存账户和各个 dapp 的记录,
// 本地数据库保存交易结果和 dapp 的索引
type Executor struct {
	mu      sync.RWMutex
	stateDB dbm.DB
	localDB dbm.DB

	height    int64
	blocktime int64
	entropy   []byte
}

// New 创建执行器
func New(stateDB, localDB dbm.DB) *Executor {
	return &Executor{stateDB: stateDB, localDB: localDB}
}

// Genesis 创世区块: 给配置中的账户分配余额
func (exec *Executor) Genesis(accounts []*types.GenesisAccount) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	cache := dbm.NewStateDB(exec.stateDB)
	coins := account.NewCoinsAccount(cache)
	for _, acc := range accounts {
		if _, err := coins.GenesisInit(acc.Addr, acc.Amount); err != nil {
			elog.Error("Genesis", "addr", acc.Addr, "amount", acc.Amount, "err", err)
			cache.Rollback()
			return err
		}
	}
	return cache.Commit()
}

// ExecBlock 执行区块, entropy 是上一个区块的哈希. 每一笔交易的结果
// 都记录在返回的收据中, 单笔交易失败不影响整个区块
func (exec *Executor) ExecBlock(block *types.Block, entropy []byte) ([]*types.ReceiptData, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	timer := metrics.Timer("executor.block")
	var receipts []*types.ReceiptData
	var err error
	timer.Time(func() {
		e := newExecutor(exec, block, entropy)
		receipts, err = e.execTxs()
	})
	if err != nil {
		return nil, err
	}
	exec.height = block.Height
	exec.blocktime = block.BlockTime
	exec.entropy = entropy
	return receipts, nil
}

// Query 执行器查询, 在最新的状态上执行
func (exec *Executor) Query(execer, funcName string, params []byte) (types.Message, error) {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	driver, err := drivers.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(dbm.NewStateDB(exec.stateDB))
	driver.SetLocalDB(dbm.NewStateDB(exec.localDB))
	driver.SetEnv(exec.height, exec.blocktime, exec.entropy)
	return driver.Query(funcName, params)
}

// GetBalance 主币余额
func (exec *Executor) GetBalance(addr string) *types.Account {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	return account.NewCoinsAccount(exec.stateDB).LoadAccount(addr)
}

// GetTx 交易执行结果
func (exec *Executor) GetTx(hash []byte) (*types.TxResult, error) {
	exec.mu.RLock()
	defer exec.mu.RUnlock()
	value, err := exec.localDB.Get(types.TxHashKey(hash))
	if err != nil {
		return nil, types.ErrHashNotExist
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
