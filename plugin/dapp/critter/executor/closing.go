// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/hex"

	pty "github.com/33cn/critter/plugin/dapp/critter/types"
)

// shouldClose 在一次投注上判断投注期是否结束.
// game 是这次投注登记之前的状态, observed 是这次看到的随机值(不是累积的摘要)
func shouldClose(game *pty.Game, tick int64, observed []byte) bool {
	if game.Period != nil && game.Period.Ended() {
		return false
	}
	if tick < game.MinEndingTick {
		return false
	}
	if !game.Covered() {
		return false
	}
	return suffixRepeated(observed)
}

// suffixRepeated 十六进制编码的最后两个字符相同, 大约 1/16 的概率
func suffixRepeated(observed []byte) bool {
	s := hex.EncodeToString(observed)
	if len(s) < 2 {
		return false
	}
	return s[len(s)-1] == s[len(s)-2]
}
