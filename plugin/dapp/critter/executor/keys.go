// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	pty "github.com/33cn/critter/plugin/dapp/critter/types"
)

// 状态数据库
func calcGameKey(gameID string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-game-%s", pty.CritterX, gameID))
}

func calcBetKey(betID string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-bet-%s", pty.CritterX, betID))
}

// 本地数据库, id 中不会出现 ':'
func calcGameStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:", pty.CritterX, status))
}

func calcGameStatusKey(status int32, index string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:%s", pty.CritterX, status, index))
}

func calcGameBetPrefix(gameID string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-gamebet:%s:", pty.CritterX, gameID))
}

func calcGameBetKey(gameID, index string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-gamebet:%s:%s", pty.CritterX, gameID, index))
}

func calcAddrBetPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addrbet:%s:", pty.CritterX, addr))
}

func calcAddrBetKey(addr, index string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addrbet:%s:%s", pty.CritterX, addr, index))
}
