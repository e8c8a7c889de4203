// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 系统的转账执行器
package coins

import (
	"github.com/33cn/critter/pluginmgr"
	"github.com/33cn/critter/system/dapp/coins/executor"
	ty "github.com/33cn/critter/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     ty.CoinsX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
	})
}
