// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的交易和查询结构
package types

import (
	"github.com/33cn/critter/types"
)

// action
const (
	CoinsActionTransfer = 1
)

var (
	// CoinsX 执行器名
	CoinsX     = types.CoinsX
	actionName = map[string]int32{
		"Transfer": CoinsActionTransfer,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType 执行器类型
type CoinsType struct{}

// NewType new coins type
func NewType() *CoinsType {
	return &CoinsType{}
}

// GetName 执行器名
func (c *CoinsType) GetName() string {
	return CoinsX
}

// NewPayload 空的 payload
func (c *CoinsType) NewPayload() types.ActionMessage {
	return &CoinsAction{}
}

// GetTypeMap 动作
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap 转账日志由 types.DecodeLog 统一处理
func (c *CoinsType) GetLogMap() map[int32]*types.LogInfo {
	return nil
}

// CoinsAction payload
type CoinsAction struct {
	Ty       int32          `json:"ty"`
	Transfer *CoinsTransfer `json:"transfer,omitempty"`
}

// GetTy 动作类型
func (a *CoinsAction) GetTy() int32 {
	return a.Ty
}

// GetValue 动作的值
func (a *CoinsAction) GetValue() interface{} {
	if a.Ty == CoinsActionTransfer {
		return a.Transfer
	}
	return nil
}

// CoinsTransfer 转账
type CoinsTransfer struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// ReqAddr 按地址查询
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReplyAddrReciver 地址累计收到的金额
type ReplyAddrReciver struct {
	Addr   string `json:"addr"`
	Amount uint64 `json:"amount"`
}

// CreateRawTransferTx 转账交易
func CreateRawTransferTx(parm *CoinsTransfer) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	action := &CoinsAction{Ty: CoinsActionTransfer, Transfer: parm}
	return types.NewTransaction(CoinsX, action), nil
}
