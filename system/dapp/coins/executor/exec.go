// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/critter/common/address"
	drivers "github.com/33cn/critter/system/dapp"
	cty "github.com/33cn/critter/system/dapp/coins/types"
	"github.com/33cn/critter/types"
)

// Exec_Transfer 转账, 不允许直接转入执行器地址
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(transfer.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if drivers.IsDriverAddress(transfer.To) {
		return nil, types.ErrActionNotSupport
	}
	clog.Debug("Exec_Transfer", "from", tx.From(), "to", transfer.To, "amount", transfer.Amount)
	return c.GetCoinsAccount().Transfer(tx.From(), transfer.To, transfer.Amount)
}
