// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Coin 1 个币的最小单位个数
const Coin uint64 = 1e8

// MaxCoin 单个账户允许的最大余额
const MaxCoin uint64 = 1e17

// 交易执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 系统日志类型
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//TyLogTransfer coins
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogGenesisTransfer = 6
)

// CoinsX 账户模块使用的执行器名
const CoinsX = "coins"

// 默认的分页参数
const (
	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

// 交易和区块的限制
const (
	MaxTxSize       = 100000
	MaxTxsPerBlock  = 1000
	MaxExecNameSize = 32
)
