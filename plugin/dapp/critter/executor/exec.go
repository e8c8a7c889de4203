// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/critter/common/address"
	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	"github.com/33cn/critter/types"
)

// CheckTx 发起者必须是合法地址
func (c *Critter) CheckTx(tx *types.Transaction, index int) error {
	if err := address.CheckAddress(tx.From()); err != nil {
		return types.ErrInvalidAddress
	}
	return nil
}

// Exec_Create 创建游戏
func (c *Critter) Exec_Create(payload *pty.CritterCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameCreate(payload)
}

// Exec_Bet 投注, 也可能结束投注期
func (c *Critter) Exec_Bet(payload *pty.CritterBet, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameBet(payload)
}

// Exec_Claim 领奖
func (c *Critter) Exec_Claim(payload *pty.CritterClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.GameClaim(payload)
}
