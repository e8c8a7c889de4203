// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"

	pty "github.com/33cn/critter/plugin/dapp/critter/types"
)

// drawnNumber 开奖号码. 投注期结束后返回固定下来的号码,
// 开放期间按照当前的摘要计算, 只是预览
func drawnNumber(game *pty.Game) (number int32, fixed bool) {
	if closed := game.Closed(); closed != nil {
		return closed.DrawnNumber, true
	}
	return computeDraw(game.CombinedEntropy), false
}

// computeDraw 把摘要看作 4 个小端 uint64, 溢出相加后 mod 25 + 1
func computeDraw(combined []byte) int32 {
	var buf [32]byte
	copy(buf[:], combined)
	var sum uint64
	for i := 0; i < len(buf); i += 8 {
		sum += binary.LittleEndian.Uint64(buf[i : i+8])
	}
	return int32(sum%pty.NumberCount) + 1
}
