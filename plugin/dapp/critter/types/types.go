// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 彩票游戏 critter 的数据结构, 日志和交易构造
package types

import (
	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/types"
)

var (
	clog = log.New("module", "exectype."+CritterX)

	actionTypeMap = map[string]int32{
		"Create": CritterActionCreate,
		"Bet":    CritterActionBet,
		"Claim":  CritterActionClaim,
	}

	logMap = map[int32]*types.LogInfo{
		TyLogCritterCreate: {Name: "LogCritterCreate", New: func() interface{} { return &ReceiptCritterCreate{} }},
		TyLogCritterBet:    {Name: "LogCritterBet", New: func() interface{} { return &ReceiptCritterBet{} }},
		TyLogCritterClose:  {Name: "LogCritterClose", New: func() interface{} { return &ReceiptCritterClose{} }},
		TyLogCritterClaim:  {Name: "LogCritterClaim", New: func() interface{} { return &ReceiptCritterClaim{} }},
		TyLogCritterEnd:    {Name: "LogCritterEnd", New: func() interface{} { return &ReceiptCritterEnd{} }},
	}
)

func init() {
	types.RegistorExecutor(CritterX, NewType())
}

// CritterType 执行器类型
type CritterType struct{}

// NewType 创建执行器类型
func NewType() *CritterType {
	return &CritterType{}
}

// GetName 执行器名
func (t *CritterType) GetName() string {
	return CritterX
}

// NewPayload 空的 payload
func (t *CritterType) NewPayload() types.ActionMessage {
	return &CritterAction{}
}

// GetTypeMap 动作名 -> 动作类型
func (t *CritterType) GetTypeMap() map[string]int32 {
	return actionTypeMap
}

// GetLogMap 日志类型
func (t *CritterType) GetLogMap() map[int32]*types.LogInfo {
	return logMap
}

// CreateRawCreateTx 创建游戏的交易, 签名后发送
func CreateRawCreateTx(parm *CritterCreate) (*types.Transaction, error) {
	if parm == nil {
		clog.Error("CreateRawCreateTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	create := &CritterAction{
		Ty:     CritterActionCreate,
		Create: parm,
	}
	return types.NewTransaction(CritterX, create), nil
}

// CreateRawBetTx 投注交易
func CreateRawBetTx(parm *CritterBet) (*types.Transaction, error) {
	if parm == nil {
		clog.Error("CreateRawBetTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	bet := &CritterAction{
		Ty:  CritterActionBet,
		Bet: parm,
	}
	return types.NewTransaction(CritterX, bet), nil
}

// CreateRawClaimTx 领奖交易
func CreateRawClaimTx(parm *CritterClaim) (*types.Transaction, error) {
	if parm == nil {
		clog.Error("CreateRawClaimTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	claim := &CritterAction{
		Ty:    CritterActionClaim,
		Claim: parm,
	}
	return types.NewTransaction(CritterX, claim), nil
}
