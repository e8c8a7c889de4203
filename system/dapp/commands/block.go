// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/critter/rpc/jsonclient"
	rpctypes "github.com/33cn/critter/rpc/types"
	"github.com/spf13/cobra"
)

// BlockCmd block command
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Get block header or body info",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetLastHeaderCmd(),
		GetBlockCmd(),
	)

	return cmd
}

// GetLastHeaderCmd get information of latest header
func GetLastHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last",
		Short: "View last block header",
		Run:   lastHeader,
	}
	return cmd
}

func lastHeader(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res rpctypes.Header
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Critter.GetLastHeader", nil, &res)
	ctx.Run()
}

// GetBlockCmd get block with its transactions and receipts
func GetBlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get block by height",
		Run:   blockBodyCmd,
	}
	addBlockBodyCmdFlags(cmd)
	return cmd
}

func addBlockBodyCmdFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("height", "t", 0, "block height")
	cmd.MarkFlagRequired("height")
}

func blockBodyCmd(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	height, _ := cmd.Flags().GetInt64("height")
	params := rpctypes.ReqHeight{Height: height}
	var res rpctypes.BlockDetail
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Critter.GetBlockByHeight", params, &res)
	ctx.Run()
}
