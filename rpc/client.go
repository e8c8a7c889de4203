// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/33cn/critter/types"
)

// ChannelClient rpc 访问节点的接口, 由节点实现
type ChannelClient interface {
	// SendTx 交易进入 mempool, 返回交易哈希
	SendTx(tx *types.Transaction) ([]byte, error)
	GetTx(hash []byte) (*types.TxResult, error)
	LastHeader() (*types.Header, error)
	GetBlock(height int64) (*types.BlockDetail, error)
	GetBalance(addr string) *types.Account
	Query(execer, funcName string, params []byte) (types.Message, error)
	Title() string
}
