// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	json "github.com/goccy/go-json"
)

// Period 投注期. 只有两种状态: 开放, 或者已经结束并固定了开奖号码
type Period interface {
	Ended() bool
}

// OpenPeriod 投注期开放
type OpenPeriod struct{}

// Ended 未结束
func (OpenPeriod) Ended() bool { return false }

// ClosedPeriod 投注期已经结束, 开奖号码在结束的那一刻固定
type ClosedPeriod struct {
	DrawnNumber int32  `json:"drawnNumber"`
	Closer      string `json:"closer"`
	// 实际支付给结束者的奖励
	Reward    uint64 `json:"reward"`
	Height    int64  `json:"height"`
	BlockTime int64  `json:"blockTime"`
}

// Ended 已结束
func (*ClosedPeriod) Ended() bool { return true }

// Game 一局游戏
type Game struct {
	GameID       string   `json:"gameId"`
	Creator      string   `json:"creator"`
	Participants []string `json:"participants,omitempty"`
	// 奖池地址, 投注转入, 奖金从这里转出
	PoolAddr        string              `json:"poolAddr"`
	TotalValue      uint64              `json:"totalValue"`
	MinEndingTick   int64               `json:"minEndingTick"`
	CombinedEntropy []byte              `json:"combinedEntropy"`
	LastEntropy     []byte              `json:"lastEntropy,omitempty"`
	BetsPerNumber   [NumberCount]uint64 `json:"betsPerNumber"`
	NumberOfBets    uint64              `json:"numberOfBets"`
	// 已经计算给中奖者的奖金之和
	ValueProvidedToWinners uint64 `json:"valueProvidedToWinners"`
	// 已经领奖的中奖号码上的投注额
	ClaimedStake uint64 `json:"claimedStake"`
	MinBet       uint64 `json:"minBet"`
	CloserReward uint64 `json:"closerReward"`
	CreateHeight int64  `json:"createHeight"`
	CreateTime   int64  `json:"createTime"`
	// 本地索引使用的 height index
	CreateIndex string `json:"createIndex"`
	Period      Period `json:"-"`
}

type gameAlias Game

type gameJSON struct {
	gameAlias
	Closed *ClosedPeriod `json:"closed,omitempty"`
}

// MarshalJSON Period 编码为可选的 closed 字段
func (g Game) MarshalJSON() ([]byte, error) {
	out := gameJSON{gameAlias: gameAlias(g)}
	if closed, ok := g.Period.(*ClosedPeriod); ok {
		out.Closed = closed
	}
	return json.Marshal(&out)
}

// UnmarshalJSON 没有 closed 字段时为开放状态
func (g *Game) UnmarshalJSON(data []byte) error {
	var in gameJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*g = Game(in.gameAlias)
	if in.Closed != nil {
		g.Period = in.Closed
	} else {
		g.Period = OpenPeriod{}
	}
	return nil
}

// Closed 结束信息, 开放时返回 nil
func (g *Game) Closed() *ClosedPeriod {
	if c, ok := g.Period.(*ClosedPeriod); ok {
		return c
	}
	return nil
}

// IsOpenToAll 没有参与者名单时任何人都可以投注
func (g *Game) IsOpenToAll() bool {
	return len(g.Participants) == 0
}

// CanBet 地址是否可以投注
func (g *Game) CanBet(addr string) bool {
	if g.IsOpenToAll() {
		return true
	}
	for _, p := range g.Participants {
		if p == addr {
			return true
		}
	}
	return false
}

// Covered 每个号码都有投注
func (g *Game) Covered() bool {
	for _, v := range g.BetsPerNumber {
		if v == 0 {
			return false
		}
	}
	return true
}

// StakeOn 号码上的投注总额
func (g *Game) StakeOn(number int32) uint64 {
	if number < 1 || number > NumberCount {
		return 0
	}
	return g.BetsPerNumber[number-1]
}

// Settled 所有奖金已经发放完. 四舍五入的损失让 ValueProvidedToWinners
// 一般到不了 TotalValue, 所以中奖号码上的投注全部领奖也算结算完成
func (g *Game) Settled() bool {
	closed := g.Closed()
	if closed == nil {
		return false
	}
	if g.ClaimedStake > 0 && g.ClaimedStake == g.StakeOn(closed.DrawnNumber) {
		return true
	}
	return g.ValueProvidedToWinners+closed.Reward == g.TotalValue
}

// Status 索引使用的状态
func (g *Game) Status() int32 {
	switch {
	case g.Settled():
		return GameStatusSettled
	case g.Period != nil && g.Period.Ended():
		return GameStatusClosed
	}
	return GameStatusOpen
}

// Bet 一次投注
type Bet struct {
	BetID  string `json:"betId"`
	GameID string `json:"gameId"`
	Bettor string `json:"bettor"`
	Value  uint64 `json:"value"`
	Number int32  `json:"number"`
	// 投注时看到的上一个区块的哈希
	BlockHash    []byte `json:"blockHash"`
	Height       int64  `json:"height"`
	BlockTime    int64  `json:"blockTime"`
	Ordinal      uint64 `json:"ordinal"`
	Index        string `json:"index"`
	PrizeClaimed bool   `json:"prizeClaimed"`
	Prize        uint64 `json:"prize,omitempty"`
}

// CritterAction 交易的 payload
type CritterAction struct {
	Ty     int32          `json:"ty"`
	Create *CritterCreate `json:"create,omitempty"`
	Bet    *CritterBet    `json:"bet,omitempty"`
	Claim  *CritterClaim  `json:"claim,omitempty"`
}

// GetTy 动作类型
func (a *CritterAction) GetTy() int32 {
	return a.Ty
}

// GetValue 动作的值
func (a *CritterAction) GetValue() interface{} {
	switch a.Ty {
	case CritterActionCreate:
		return a.Create
	case CritterActionBet:
		return a.Bet
	case CritterActionClaim:
		return a.Claim
	}
	return nil
}

// CritterCreate 创建游戏. Participants 为空表示任何人可以投注
type CritterCreate struct {
	GameID       string   `json:"gameId"`
	Participants []string `json:"participants,omitempty"`
	// 投注期长度, 单位区块, 0 表示满足覆盖条件后就可以结束
	Duration int64 `json:"duration"`
}

// CritterBet 投注
type CritterBet struct {
	GameID string `json:"gameId"`
	Number int32  `json:"number"`
	Value  uint64 `json:"value"`
}

// CritterClaim 领奖
type CritterClaim struct {
	GameID string `json:"gameId"`
	BetID  string `json:"betId"`
}

// ReceiptCritterCreate 游戏创建日志
type ReceiptCritterCreate struct {
	GameID        string `json:"gameId"`
	Creator       string `json:"creator"`
	Open          bool   `json:"open"`
	MinEndingTick int64  `json:"minEndingTick"`
	Index         string `json:"index"`
	Height        int64  `json:"height"`
	BlockTime     int64  `json:"blockTime"`
}

// ReceiptCritterBet 投注日志
type ReceiptCritterBet struct {
	GameID    string `json:"gameId"`
	BetID     string `json:"betId"`
	Bettor    string `json:"bettor"`
	Number    int32  `json:"number"`
	Value     uint64 `json:"value"`
	Index     string `json:"index"`
	Height    int64  `json:"height"`
	BlockTime int64  `json:"blockTime"`
}

// ReceiptCritterClose 投注期结束日志
type ReceiptCritterClose struct {
	GameID      string `json:"gameId"`
	Closer      string `json:"closer"`
	DrawnNumber int32  `json:"drawnNumber"`
	Reward      uint64 `json:"reward"`
	CreateIndex string `json:"createIndex"`
	Height      int64  `json:"height"`
	BlockTime   int64  `json:"blockTime"`
}

// ReceiptCritterClaim 领奖日志
type ReceiptCritterClaim struct {
	GameID      string `json:"gameId"`
	BetID       string `json:"betId"`
	Bettor      string `json:"bettor"`
	DrawnNumber int32  `json:"drawnNumber"`
	Prize       uint64 `json:"prize"`
	Paid        uint64 `json:"paid"`
	Height      int64  `json:"height"`
	BlockTime   int64  `json:"blockTime"`
}

// ReceiptCritterEnd 结算完成日志, 剩余的零头退还给创建者
type ReceiptCritterEnd struct {
	GameID      string `json:"gameId"`
	Creator     string `json:"creator"`
	TotalValue  uint64 `json:"totalValue"`
	Refund      uint64 `json:"refund"`
	CreateIndex string `json:"createIndex"`
	Height      int64  `json:"height"`
	BlockTime   int64  `json:"blockTime"`
}

// ReqGame 按 id 查询游戏
type ReqGame struct {
	GameID string `json:"gameId"`
}

// ReqBet 按 id 查询投注
type ReqBet struct {
	BetID string `json:"betId"`
}

// ReqPrize 查询一次投注的奖金
type ReqPrize struct {
	GameID string `json:"gameId"`
	BetID  string `json:"betId"`
}

// ReplyGame 游戏详情
type ReplyGame struct {
	Game        *Game  `json:"game"`
	Status      int32  `json:"status"`
	PoolBalance uint64 `json:"poolBalance"`
}

// ReplyDrawnNumber 开奖号码, Fixed 为 false 时只是预览
type ReplyDrawnNumber struct {
	GameID      string `json:"gameId"`
	DrawnNumber int32  `json:"drawnNumber"`
	Fixed       bool   `json:"fixed"`
}

// ReplyPrize 奖金, Fixed 为 false 时只是预览
type ReplyPrize struct {
	GameID      string `json:"gameId"`
	BetID       string `json:"betId"`
	DrawnNumber int32  `json:"drawnNumber"`
	Prize       uint64 `json:"prize"`
	Fixed       bool   `json:"fixed"`
}

// ReplyPeriodEnded 投注期是否结束
type ReplyPeriodEnded struct {
	GameID string `json:"gameId"`
	Ended  bool   `json:"ended"`
}

// ReqListGames 按状态列出游戏, PrimaryKey 为上一页最后一条的 CreateIndex
type ReqListGames struct {
	Status     int32  `json:"status"`
	PrimaryKey string `json:"primaryKey,omitempty"`
	Count      int32  `json:"count"`
	Direction  int32  `json:"direction"`
}

// ReplyGameList 游戏列表
type ReplyGameList struct {
	Games []*Game `json:"games"`
}

// ReqListBets 列出一局游戏或者一个地址的投注, GameID 优先
type ReqListBets struct {
	GameID     string `json:"gameId,omitempty"`
	Addr       string `json:"addr,omitempty"`
	PrimaryKey string `json:"primaryKey,omitempty"`
	Count      int32  `json:"count"`
	Direction  int32  `json:"direction"`
}

// ReplyBetList 投注列表
type ReplyBetList struct {
	Bets []*Bet `json:"bets"`
}
