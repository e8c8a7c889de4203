// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/metrics"
	drivers "github.com/33cn/critter/system/dapp"
	"github.com/33cn/critter/types"
)

// 执行器 -> db 环境
type executor struct {
	stateDB   dbm.DB
	localDB   dbm.DB
	height    int64
	blocktime int64
	entropy   []byte
	txs       []*types.Transaction
	receipts  []*types.ReceiptData
	execCache map[string]drivers.Driver
}

func newExecutor(exec *Executor, block *types.Block, entropy []byte) *executor {
	return &executor{
		stateDB:   exec.stateDB,
		localDB:   exec.localDB,
		height:    block.Height,
		blocktime: block.BlockTime,
		entropy:   entropy,
		txs:       block.Txs,
		execCache: make(map[string]drivers.Driver),
	}
}

func (e *executor) loadDriver(tx *types.Transaction) (drivers.Driver, error) {
	if c, ok := e.execCache[tx.Execer]; ok {
		return c, nil
	}
	c, err := drivers.LoadDriver(tx.Execer)
	if err != nil {
		return nil, err
	}
	c.SetEnv(e.height, e.blocktime, e.entropy)
	e.execCache[tx.Execer] = c
	return c, nil
}

func (e *executor) execTxs() ([]*types.ReceiptData, error) {
	for i, tx := range e.txs {
		receipt := e.execTx(tx, i)
		e.receipts = append(e.receipts, receipt)
		if err := e.execLocalTx(tx, receipt, i); err != nil {
			return nil, err
		}
	}
	return e.receipts, nil
}

func errReceipt(err error) *types.ReceiptData {
	metrics.Counter("executor.tx.err").Inc(1)
	log := &types.ReceiptLog{Ty: types.TyLogErr, Log: types.Encode(&types.ReceiptLogErr{Err: err.Error()})}
	return &types.ReceiptData{Ty: types.ExecErr, Logs: []*types.ReceiptLog{log}}
}

// execTx 在写缓存上执行交易, 成功才提交. 失败的交易只留下一条错误日志
func (e *executor) execTx(tx *types.Transaction, index int) *types.ReceiptData {
	if err := tx.Check(); err != nil {
		return errReceipt(err)
	}
	exec, err := e.loadDriver(tx)
	if err != nil {
		return errReceipt(err)
	}
	cache := dbm.NewStateDB(e.stateDB)
	exec.SetStateDB(cache)
	exec.SetLocalDB(dbm.NewStateDB(e.localDB))
	if err := exec.CheckTx(tx, index); err != nil {
		return errReceipt(err)
	}
	receipt, err := exec.Exec(tx, index)
	if err != nil {
		elog.Debug("exec tx failed", "execer", tx.Execer, "index", index, "err", err)
		return errReceipt(err)
	}
	if receipt == nil {
		return errReceipt(types.ErrActionNotSupport)
	}
	for _, kv := range receipt.KV {
		if err := cache.Set(kv.Key, kv.Value); err != nil {
			return errReceipt(err)
		}
	}
	if err := cache.Commit(); err != nil {
		elog.Error("commit state", "height", e.height, "index", index, "err", err)
		return errReceipt(err)
	}
	metrics.Counter("executor.tx.ok").Inc(1)
	return &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
}

// execLocalTx 成功的交易建立 dapp 索引, 所有交易都保存执行结果
func (e *executor) execLocalTx(tx *types.Transaction, r *types.ReceiptData, index int) error {
	local := dbm.NewStateDB(e.localDB)
	if r.Ty == types.ExecOk {
		exec, err := e.loadDriver(tx)
		if err != nil {
			return err
		}
		exec.SetLocalDB(local)
		set, err := exec.ExecLocal(tx, r, index)
		if err != nil {
			// 索引失败不影响状态
			elog.Error("execLocal", "execer", tx.Execer, "index", index, "err", err)
		} else {
			for _, kv := range set.KV {
				if err := local.Set(kv.Key, kv.Value); err != nil {
					return err
				}
			}
		}
	}
	result := &types.TxResult{
		Height:    e.height,
		Index:     int32(index),
		BlockTime: e.blocktime,
		Tx:        tx,
		Receipt:   r,
	}
	if err := local.Set(types.TxHashKey(tx.Hash()), types.Encode(result)); err != nil {
		return err
	}
	return local.Commit()
}
