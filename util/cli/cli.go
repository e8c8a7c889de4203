// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	clog "github.com/33cn/critter/common/log"
	"github.com/33cn/critter/pluginmgr"
	"github.com/33cn/critter/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "critter-cli",
	Short: "critter client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.BlockCmd(),
		commands.TxCmd(),
		commands.VersionCmd(),
	)
}

// NewRootCmd 命令行根命令, 包含所有插件的命令
func NewRootCmd(rpcAddr string) *cobra.Command {
	pluginmgr.AddCmd(rootCmd)
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	return rootCmd
}

// Run :
func Run(rpcAddr string) {
	clog.SetLogLevel("error")
	if err := NewRootCmd(rpcAddr).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
