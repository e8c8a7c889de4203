// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 命令行共用的结构和工具
package types

import (
	"fmt"
	"math/big"
	"os"

	"github.com/33cn/critter/common/crypto"
	"github.com/33cn/critter/common/crypto/secp256k1"
	"github.com/33cn/critter/rpc/jsonclient"
	rpctypes "github.com/33cn/critter/rpc/types"
	"github.com/33cn/critter/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	coinPrecision = decimal.NewFromInt(int64(types.Coin))
	maxCoin       = decimal.NewFromBigInt(new(big.Int).SetUint64(types.MaxCoin), 0)
)

// AccountResult 账户余额, 以币为单位显示
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
}

// FormatAmountValue2Display 最小单位 -> 币, 保留 4 位小数
func FormatAmountValue2Display(amount uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0).Div(coinPrecision).StringFixed(4)
}

// FormatAmountDisplay2Value 币 -> 最小单位, 超出精度的部分截断
func FormatAmountDisplay2Value(amount string) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "parse amount %s", amount)
	}
	if d.Sign() < 0 {
		return 0, errors.Wrapf(types.ErrAmount, "negative amount %s", amount)
	}
	value := d.Mul(coinPrecision).Truncate(0)
	if value.GreaterThan(maxCoin) {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s too large", amount)
	}
	return value.BigInt().Uint64(), nil
}

// GetAmountValue 读取以币为单位的参数
func GetAmountValue(cmd *cobra.Command, field string) (uint64, error) {
	amount, err := cmd.Flags().GetString(field)
	if err != nil {
		return 0, err
	}
	return FormatAmountDisplay2Value(amount)
}

// DecodeAccount 账户余额转换为显示格式
func DecodeAccount(acc *rpctypes.Account) *AccountResult {
	return &AccountResult{Addr: acc.Addr, Balance: FormatAmountValue2Display(acc.Balance)}
}

// SendTx 发送交易, 打印交易哈希
func SendTx(rpcAddr string, tx *types.Transaction, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	ctx := jsonclient.NewRPCCtx(rpcAddr, "Critter.SendTransaction", tx, nil)
	ctx.RunWithoutMarshal()
}

// AddKeyFlag 签名用的私钥文件
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "file holding the hex private key that signs the transaction")
	cmd.MarkFlagRequired("key")
}

// LoadPrivKey 读取私钥文件, 内容为 hex, 可以带 0x 前缀
func LoadPrivKey(path string) (crypto.PrivKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read key file")
	}
	priv, err := secp256k1.PrivKeyFromHex(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "key file %s", path)
	}
	return priv, nil
}

// SignTx 用 --key 指定的私钥签名
func SignTx(cmd *cobra.Command, tx *types.Transaction) error {
	path, _ := cmd.Flags().GetString("key")
	priv, err := LoadPrivKey(path)
	if err != nil {
		return err
	}
	tx.Sign(types.SECP256K1, priv)
	return nil
}

// SignAndSendTx 签名后发送
func SignAndSendTx(cmd *cobra.Command, tx *types.Transaction, err error) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	if err == nil {
		err = SignTx(cmd, tx)
	}
	SendTx(rpcLaddr, tx, err)
}
