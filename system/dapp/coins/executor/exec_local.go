// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/critter/system/dapp/coins/types"
	"github.com/33cn/critter/types"
)

// ExecLocal_Transfer 累计收款地址收到的金额
func (c *Coins) ExecLocal_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	kv, err := updateAddrReciver(c.GetLocalDB(), transfer.To, transfer.Amount)
	if err != nil {
		return nil, err
	}
	set.KV = append(set.KV, kv)
	return set, nil
}
