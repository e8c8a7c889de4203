// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// CritterX 执行器名
const CritterX = "critter"

// Critter op
const (
	CritterActionCreate = 1 + iota
	CritterActionBet
	CritterActionClaim

	//log for critter
	TyLogCritterCreate = 901
	TyLogCritterBet    = 902
	TyLogCritterClose  = 903
	TyLogCritterClaim  = 904
	TyLogCritterEnd    = 905
)

// Game status, 只用于本地索引, 状态数据库中由 Period 和领奖进度推出
const (
	GameStatusOpen int32 = 1 + iota
	GameStatusClosed
	GameStatusSettled
)

const (
	// NumberCount 可以投注的号码 1..25
	NumberCount = 25
	// MaxGameIDLen 游戏 id 的最大长度
	MaxGameIDLen = 64
	// DefaultMinBet 默认最小投注 0.01 个币
	DefaultMinBet uint64 = 1000000
	// DefaultCloserReward 默认结束投注期的奖励
	DefaultCloserReward uint64 = 1000000
	// DefaultDuration 默认投注期, 单位区块
	DefaultDuration int64 = 300
	// DefaultMaxParticipants 参与者名单的最大长度
	DefaultMaxParticipants = 100
	// DefaultRecyclerSpec 回收任务默认每分钟运行一次
	DefaultRecyclerSpec = "@every 1m"
)
