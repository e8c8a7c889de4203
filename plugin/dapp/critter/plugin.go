// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critter 25 个号码的彩池游戏
package critter

import (
	"github.com/33cn/critter/plugin/dapp/critter/commands"
	"github.com/33cn/critter/plugin/dapp/critter/executor"
	ty "github.com/33cn/critter/plugin/dapp/critter/types"
	"github.com/33cn/critter/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     ty.CritterX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.CritterCmd,
	})
}
