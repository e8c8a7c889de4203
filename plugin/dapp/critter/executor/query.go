// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/critter/common/db"
	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	"github.com/33cn/critter/types"
	"github.com/pkg/errors"
)

const (
	defaultListCount = 20
	maxListCount     = 100
)

func listCount(count int32) int32 {
	if count <= 0 {
		return defaultListCount
	}
	if count > maxListCount {
		return maxListCount
	}
	return count
}

// Query_GetGame 游戏详情以及奖池余额
func (c *Critter) Query_GetGame(req *pty.ReqGame) (types.Message, error) {
	game, err := readGame(c.GetStateDB(), req.GameID)
	if err != nil {
		return nil, err
	}
	return &pty.ReplyGame{
		Game:        game,
		Status:      game.Status(),
		PoolBalance: c.GetCoinsAccount().LoadAccount(game.PoolAddr).Balance,
	}, nil
}

// Query_GetBet 投注详情
func (c *Critter) Query_GetBet(req *pty.ReqBet) (types.Message, error) {
	return readBet(c.GetStateDB(), req.BetID)
}

// Query_GetDrawnNumber 开奖号码, 投注期开放时只是预览
func (c *Critter) Query_GetDrawnNumber(req *pty.ReqGame) (types.Message, error) {
	game, err := readGame(c.GetStateDB(), req.GameID)
	if err != nil {
		return nil, err
	}
	number, fixed := drawnNumber(game)
	return &pty.ReplyDrawnNumber{GameID: game.GameID, DrawnNumber: number, Fixed: fixed}, nil
}

// Query_GetPrize 一次投注的奖金, 只读
func (c *Critter) Query_GetPrize(req *pty.ReqPrize) (types.Message, error) {
	game, err := readGame(c.GetStateDB(), req.GameID)
	if err != nil {
		return nil, err
	}
	bet, err := readBet(c.GetStateDB(), req.BetID)
	if err != nil {
		return nil, err
	}
	if bet.GameID != game.GameID {
		return nil, pty.ErrBetMismatch
	}
	number, fixed := drawnNumber(game)
	return &pty.ReplyPrize{
		GameID:      game.GameID,
		BetID:       bet.BetID,
		DrawnNumber: number,
		Prize:       calcPrize(game, bet, number),
		Fixed:       fixed,
	}, nil
}

// Query_IsBettingPeriodEnded 投注期是否结束
func (c *Critter) Query_IsBettingPeriodEnded(req *pty.ReqGame) (types.Message, error) {
	game, err := readGame(c.GetStateDB(), req.GameID)
	if err != nil {
		return nil, err
	}
	return &pty.ReplyPeriodEnded{GameID: game.GameID, Ended: game.Period != nil && game.Period.Ended()}, nil
}

// Query_ListGames 按状态列出游戏
func (c *Critter) Query_ListGames(req *pty.ReqListGames) (types.Message, error) {
	switch req.Status {
	case pty.GameStatusOpen, pty.GameStatusClosed, pty.GameStatusSettled:
	default:
		return nil, errors.Wrapf(types.ErrInvalidParam, "status %d", req.Status)
	}
	var key []byte
	if req.PrimaryKey != "" {
		key = calcGameStatusKey(req.Status, req.PrimaryKey)
	}
	values, err := c.GetLocalDB().List(calcGameStatusPrefix(req.Status), key, listCount(req.Count), req.Direction)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	reply := &pty.ReplyGameList{}
	for _, id := range values {
		game, err := readGame(c.GetStateDB(), string(id))
		if err != nil {
			clog.Error("ListGames", "gameID", string(id), "err", err)
			return nil, err
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}

// Query_ListBets 列出一局游戏的投注, 或者一个地址的投注
func (c *Critter) Query_ListBets(req *pty.ReqListBets) (types.Message, error) {
	var prefix, key []byte
	switch {
	case req.GameID != "":
		prefix = calcGameBetPrefix(req.GameID)
		if req.PrimaryKey != "" {
			key = calcGameBetKey(req.GameID, req.PrimaryKey)
		}
	case req.Addr != "":
		prefix = calcAddrBetPrefix(req.Addr)
		if req.PrimaryKey != "" {
			key = calcAddrBetKey(req.Addr, req.PrimaryKey)
		}
	default:
		return nil, errors.Wrap(types.ErrInvalidParam, "gameId or addr required")
	}
	values, err := c.GetLocalDB().List(prefix, key, listCount(req.Count), req.Direction)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	reply := &pty.ReplyBetList{}
	for _, id := range values {
		bet, err := readBet(c.GetStateDB(), string(id))
		if err != nil {
			clog.Error("ListBets", "betID", string(id), "err", err)
			return nil, err
		}
		reply.Bets = append(reply.Bets, bet)
	}
	return reply, nil
}
