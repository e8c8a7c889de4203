// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供一种操作：
EventTransfer -> 转移资产
*/

import (
	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/common/log"
	drivers "github.com/33cn/critter/system/dapp"
	cty "github.com/33cn/critter/system/dapp/coins/types"
	"github.com/33cn/critter/types"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

// Init 注册执行器
func Init(name string, sub []byte) error {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	if !drivers.IsRegistered(driverName) {
		drivers.Register(driverName, newCoins)
	}
	return nil
}

// GetName 执行器名
func GetName() string {
	return driverName
}

// Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(cty.NewType())
	return c
}

// GetDriverName 驱动名
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx 发起者必须是合法地址
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	if err := address.CheckAddress(tx.From()); err != nil {
		return types.ErrInvalidAddress
	}
	return nil
}
