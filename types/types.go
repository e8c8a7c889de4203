// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 定义节点和各个执行器共用的数据结构
package types

import (
	"github.com/33cn/critter/common"
	json "github.com/goccy/go-json"
)

// Message 所有可以编码的结构体
type Message interface{}

// Encode 编码一个结构体, 出错说明结构定义有问题, 直接panic
func Encode(data Message) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 解码
func Decode(data []byte, msg Message) error {
	if len(data) == 0 {
		return ErrDecode
	}
	return json.Unmarshal(data, msg)
}

// MustDecode 解码, 失败时 panic
func MustDecode(data []byte, msg Message) {
	if err := Decode(data, msg); err != nil {
		panic(err)
	}
}

// KeyValue 状态数据库中的一条记录, Value 为 nil 表示删除
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// ReceiptLog 执行器产生的日志
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt 执行器 Exec 的返回
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// ReceiptData 保存在区块中的交易执行结果
type ReceiptData struct {
	Ty   int32         `json:"ty"`
	Logs []*ReceiptLog `json:"logs"`
}

// LocalDBSet ExecLocal 的返回, 写入本地索引数据库
type LocalDBSet struct {
	KV []*KeyValue `json:"kv"`
}

// ReceiptLogErr 交易执行失败时的日志
type ReceiptLogErr struct {
	Err string `json:"err"`
}

// Account 账户
type Account struct {
	Addr    string `json:"addr"`
	Balance uint64 `json:"balance"`
}

// ReceiptAccountTransfer 转账日志
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// Header 区块头
type Header struct {
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blockTime"`
	ParentHash []byte `json:"parentHash"`
	TxHash     []byte `json:"txHash"`
	Hash       []byte `json:"hash"`
	TxCount    int64  `json:"txCount"`
}

// Block 区块
type Block struct {
	ParentHash []byte         `json:"parentHash"`
	Height     int64          `json:"height"`
	BlockTime  int64          `json:"blockTime"`
	TxHash     []byte         `json:"txHash"`
	Txs        []*Transaction `json:"txs"`
}

// Hash 区块哈希, 对区块头(不含哈希本身)编码后做 sha256
func (block *Block) Hash() []byte {
	header := block.GetHeader()
	header.Hash = nil
	return common.Sha256(Encode(header))
}

// GetHeader 区块头, 不计算哈希
func (block *Block) GetHeader() *Header {
	return &Header{
		Height:     block.Height,
		BlockTime:  block.BlockTime,
		ParentHash: block.ParentHash,
		TxHash:     block.TxHash,
		TxCount:    int64(len(block.Txs)),
	}
}

// BlockDetail 区块以及交易执行结果
type BlockDetail struct {
	Block    *Block         `json:"block"`
	Receipts []*ReceiptData `json:"receipts"`
}

// TxResult 交易查询结果
type TxResult struct {
	Height    int64        `json:"height"`
	Index     int32        `json:"index"`
	BlockTime int64        `json:"blockTime"`
	Tx        *Transaction `json:"tx"`
	Receipt   *ReceiptData `json:"receipt"`
}

// TxHashKey 交易结果在本地数据库中的key
func TxHashKey(hash []byte) []byte {
	return append([]byte("TX:"), hash...)
}

// CalcTxRoot 交易列表的摘要
func CalcTxRoot(txs []*Transaction) []byte {
	var buf []byte
	for _, tx := range txs {
		buf = append(buf, tx.Hash()...)
	}
	return common.Sha256(buf)
}

// ReqAddr 按地址查询
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReqInt 按高度查询
type ReqInt struct {
	Height int64 `json:"height"`
}

// ReqHash 按哈希查询, 十六进制字符串
type ReqHash struct {
	Hash string `json:"hash"`
}

// Query 执行器查询请求
type Query struct {
	Execer   string `json:"execer"`
	FuncName string `json:"funcName"`
	Payload  []byte `json:"payload"`
}

// Reply 通用回复
type Reply struct {
	IsOk bool   `json:"isOk"`
	Msg  string `json:"msg"`
}

// ReplyString 字符串回复
type ReplyString struct {
	Data string `json:"data"`
}
