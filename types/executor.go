// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
)

// ActionMessage 执行器交易的 payload, 只有一个动作字段非空
type ActionMessage interface {
	GetTy() int32
	GetValue() interface{}
}

// ExecutorType 执行器在 types 层的描述, rpc 和命令行通过它解析交易
type ExecutorType interface {
	GetName() string
	// NewPayload 返回一个空的 payload 用于解码
	NewPayload() ActionMessage
	// GetTypeMap 动作名 -> 动作类型
	GetTypeMap() map[string]int32
	GetLogMap() map[int32]*LogInfo
}

// LogInfo 日志类型对应的结构和名字
type LogInfo struct {
	Name string
	New  func() interface{}
}

var executorMap = map[string]ExecutorType{}

// RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType")
	}
	executorMap[exec] = util
}

// LoadExecutorType 获取执行器类型, 不存在返回 nil
func LoadExecutorType(exec string) ExecutorType {
	if exec, exist := executorMap[exec]; exist {
		return exec
	}
	return nil
}

// DecodePayload 解码交易的 payload, 返回动作名字和动作值
func DecodePayload(tx *Transaction) (string, ActionMessage, error) {
	etype := LoadExecutorType(tx.Execer)
	if etype == nil {
		return "", nil, ErrUnknownDriver
	}
	payload := etype.NewPayload()
	if err := Decode(tx.Payload, payload); err != nil {
		return "", nil, ErrDecode
	}
	for name, ty := range etype.GetTypeMap() {
		if ty == payload.GetTy() {
			return name, payload, nil
		}
	}
	return "", nil, ErrActionNotSupport
}

// DecodeLog 按执行器注册的日志类型解码日志
func DecodeLog(execer string, log *ReceiptLog) (string, interface{}, error) {
	if log.Ty == TyLogErr {
		var e ReceiptLogErr
		err := Decode(log.Log, &e)
		return "LogErr", &e, err
	}
	if log.Ty == TyLogTransfer || log.Ty == TyLogGenesisTransfer || log.Ty == TyLogDeposit {
		var r ReceiptAccountTransfer
		err := Decode(log.Log, &r)
		return "LogTransfer", &r, err
	}
	etype := LoadExecutorType(execer)
	if etype == nil {
		return "", nil, ErrUnknownDriver
	}
	info, ok := etype.GetLogMap()[log.Ty]
	if !ok {
		return "", nil, fmt.Errorf("unknown log type %d", log.Ty)
	}
	v := info.New()
	if err := Decode(log.Log, v); err != nil {
		return "", nil, err
	}
	return info.Name, v, nil
}
