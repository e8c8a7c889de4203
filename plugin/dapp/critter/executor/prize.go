// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math"
	"math/bits"

	pty "github.com/33cn/critter/plugin/dapp/critter/types"
)

// closerReward 从奖池中扣除的结束奖励. 结束后是实际支付的金额, 开放期间按配置预估
func closerReward(game *pty.Game) uint64 {
	if closed := game.Closed(); closed != nil {
		return closed.Reward
	}
	return game.CloserReward
}

// adjustablePool 可以分配给中奖者的奖池
func adjustablePool(game *pty.Game) uint64 {
	reward := closerReward(game)
	if reward >= game.TotalValue {
		return 0
	}
	return game.TotalValue - reward
}

// calcPrize floor(pool * bet.value / stake_on_drawn), 128 位中间结果
func calcPrize(game *pty.Game, bet *pty.Bet, drawn int32) uint64 {
	total := game.StakeOn(drawn)
	if total == 0 || bet.Number != drawn {
		return 0
	}
	return mulDiv(adjustablePool(game), bet.Value, total)
}

// mulDiv a*b/c 向下取整, 结果超过 uint64 时返回 MaxUint64
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return math.MaxUint64
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo
}
