// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	drivers "github.com/33cn/critter/system/dapp"
	"github.com/33cn/critter/types"
)

// 本地索引完全由收据中的日志推导

func (c *Critter) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	kv := drivers.NewKVCreator(c.GetLocalDB())
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogCritterCreate:
			var log pty.ReceiptCritterCreate
			if err := types.Decode(item.Log, &log); err != nil {
				return nil, err
			}
			kv.AddKV(calcGameStatusKey(pty.GameStatusOpen, log.Index), []byte(log.GameID))
		case pty.TyLogCritterBet:
			var log pty.ReceiptCritterBet
			if err := types.Decode(item.Log, &log); err != nil {
				return nil, err
			}
			kv.AddKV(calcGameBetKey(log.GameID, log.Index), []byte(log.BetID))
			kv.AddKV(calcAddrBetKey(log.Bettor, log.Index), []byte(log.BetID))
		case pty.TyLogCritterClose:
			var log pty.ReceiptCritterClose
			if err := types.Decode(item.Log, &log); err != nil {
				return nil, err
			}
			kv.DelKV(calcGameStatusKey(pty.GameStatusOpen, log.CreateIndex))
			kv.AddKV(calcGameStatusKey(pty.GameStatusClosed, log.CreateIndex), []byte(log.GameID))
		case pty.TyLogCritterEnd:
			var log pty.ReceiptCritterEnd
			if err := types.Decode(item.Log, &log); err != nil {
				return nil, err
			}
			kv.DelKV(calcGameStatusKey(pty.GameStatusClosed, log.CreateIndex))
			kv.AddKV(calcGameStatusKey(pty.GameStatusSettled, log.CreateIndex), []byte(log.GameID))
		}
	}
	set.KV = kv.KVList()
	return set, nil
}

// ExecLocal_Create 开放游戏索引
func (c *Critter) ExecLocal_Create(payload *pty.CritterCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}

// ExecLocal_Bet 投注索引, 或者游戏状态从开放变为结束
func (c *Critter) ExecLocal_Bet(payload *pty.CritterBet, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}

// ExecLocal_Claim 结算完成时更新状态索引
func (c *Critter) ExecLocal_Claim(payload *pty.CritterClaim, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}
