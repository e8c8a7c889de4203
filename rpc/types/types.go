// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types json rpc 的请求和返回
package types

import (
	"github.com/33cn/critter/common"
	"github.com/33cn/critter/types"
	json "github.com/goccy/go-json"
)

// ReqNil 没有参数
type ReqNil struct{}

// QueryParm 按哈希查询交易
type QueryParm struct {
	Hash string `json:"hash"`
}

// ReqAddr 地址
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReqHeight 区块高度
type ReqHeight struct {
	Height int64 `json:"height"`
}

// Query4Jrpc 执行器查询, payload 是查询函数参数的 json
type Query4Jrpc struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload"`
}

// Header 区块头
type Header struct {
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blockTime"`
	ParentHash string `json:"parentHash"`
	TxHash     string `json:"txHash"`
	Hash       string `json:"hash"`
	TxCount    int64  `json:"txCount"`
}

// Transaction 交易
type Transaction struct {
	Execer  string          `json:"execer"`
	Payload json.RawMessage `json:"payload"`
	From    string          `json:"from"`
	Nonce   int64           `json:"nonce"`
	Hash    string          `json:"hash"`
}

// ReceiptLog 解码后的日志
type ReceiptLog struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
	RawLog string      `json:"rawLog"`
}

// ReceiptData 交易的执行结果
type ReceiptData struct {
	Ty     int32         `json:"ty"`
	TyName string        `json:"tyName"`
	Logs   []*ReceiptLog `json:"logs"`
}

// TransactionDetail 交易详情
type TransactionDetail struct {
	Tx         *Transaction `json:"tx"`
	Receipt    *ReceiptData `json:"receipt"`
	Height     int64        `json:"height"`
	Index      int32        `json:"index"`
	BlockTime  int64        `json:"blockTime"`
	ActionName string       `json:"actionName"`
}

// BlockDetail 区块详情
type BlockDetail struct {
	Header   *Header        `json:"header"`
	Txs      []*Transaction `json:"txs"`
	Receipts []*ReceiptData `json:"receipts"`
}

// Account 账户
type Account struct {
	Addr    string `json:"addr"`
	Balance uint64 `json:"balance"`
}

// VersionInfo 版本
type VersionInfo struct {
	Title   string `json:"title"`
	App     string `json:"app"`
	Critter string `json:"critter"`
}

// ConvertHeader types.Header -> Header
func ConvertHeader(h *types.Header) *Header {
	if h == nil {
		return nil
	}
	return &Header{
		Height:     h.Height,
		BlockTime:  h.BlockTime,
		ParentHash: common.ToHex(h.ParentHash),
		TxHash:     common.ToHex(h.TxHash),
		Hash:       common.ToHex(h.Hash),
		TxCount:    h.TxCount,
	}
}

// ConvertTransaction payload 本身就是 json, 原样输出
func ConvertTransaction(tx *types.Transaction) *Transaction {
	if tx == nil {
		return nil
	}
	return &Transaction{
		Execer:  tx.Execer,
		Payload: json.RawMessage(tx.Payload),
		From:    tx.From(),
		Nonce:   tx.Nonce,
		Hash:    common.ToHex(tx.Hash()),
	}
}

// DecodeReceipt 按执行器的日志类型解码收据
func DecodeReceipt(execer string, r *types.ReceiptData) *ReceiptData {
	if r == nil {
		return nil
	}
	rd := &ReceiptData{Ty: r.Ty, TyName: receiptTyName(r.Ty)}
	for _, l := range r.Logs {
		item := &ReceiptLog{Ty: l.Ty, RawLog: common.ToHex(l.Log)}
		name, v, err := types.DecodeLog(execer, l)
		if err == nil {
			item.TyName = name
			item.Log = v
		}
		rd.Logs = append(rd.Logs, item)
	}
	return rd
}

func receiptTyName(ty int32) string {
	switch ty {
	case types.ExecOk:
		return "ExecOk"
	case types.ExecPack:
		return "ExecPack"
	}
	return "ExecErr"
}
