// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/critter/common"
	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/common/crypto"
	"github.com/33cn/critter/common/crypto/secp256k1"
	"github.com/33cn/critter/rpc/jsonclient"
	rpctypes "github.com/33cn/critter/rpc/types"
	cty "github.com/33cn/critter/system/dapp/coins/types"
	commandtypes "github.com/33cn/critter/system/dapp/commands/types"
	"github.com/33cn/critter/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account keys, balance and transfer",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenKeyCmd(),
		AddrCmd(),
		GetBalanceCmd(),
		TransferCmd(),
		ReceivedCmd(),
	)

	return cmd
}

// GenKeyCmd 生成私钥文件
func GenKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a secp256k1 private key file and print its address",
		Run:   genKey,
	}
	cmd.Flags().StringP("out", "o", "", "key file to write")
	cmd.MarkFlagRequired("out")
	return cmd
}

func genKey(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")
	addr, err := writeKeyFile(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(addr)
}

// writeKeyFile 不覆盖已有文件
func writeKeyFile(path string) (string, error) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return "", err
	}
	priv, err := c.GenKey()
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, common.ToHex(priv.Bytes())); err != nil {
		return "", err
	}
	return address.PubKeyToAddr(priv.PubKey().Bytes()), nil
}

// AddrCmd 私钥文件对应的地址
func AddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Print the address of a private key file",
		Run:   keyAddr,
	}
	cmd.Flags().StringP("key", "k", "", "key file")
	cmd.MarkFlagRequired("key")
	return cmd
}

func keyAddr(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("key")
	priv, err := commandtypes.LoadPrivKey(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(address.PubKeyToAddr(priv.PubKey().Bytes()))
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	params := rpctypes.ReqAddr{Addr: addr}
	var res rpctypes.Account
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Critter.GetBalance", params, &res)
	ctx.SetResultCb(parseBalance)
	ctx.Run()
}

func parseBalance(res interface{}) (interface{}, error) {
	return commandtypes.DecodeAccount(res.(*rpctypes.Account)), nil
}

// TransferCmd create and send a transfer transaction
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   transfer,
	}
	addTransferFlags(cmd)
	return cmd
}

func addTransferFlags(cmd *cobra.Command) {
	commandtypes.AddKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "m", "", "transaction amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		commandtypes.SignAndSendTx(cmd, nil, err)
		return
	}
	tx, err := cty.CreateRawTransferTx(&cty.CoinsTransfer{To: to, Amount: amount, Note: note})
	commandtypes.SignAndSendTx(cmd, tx, err)
}

// ReceivedCmd 地址累计收到的转账
func ReceivedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "received",
		Short: "Get the total amount an address has received by transfer",
		Run:   received,
	}
	addBalanceFlags(cmd)
	return cmd
}

func received(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	params := rpctypes.Query4Jrpc{
		Execer:   cty.CoinsX,
		FuncName: "GetAddrReciver",
		Payload:  types.Encode(&cty.ReqAddr{Addr: addr}),
	}
	var res cty.ReplyAddrReciver
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Critter.Query", params, &res)
	ctx.Run()
}
