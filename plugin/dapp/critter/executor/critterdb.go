// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor critter
import (
	"encoding/binary"

	"github.com/33cn/critter/account"
	"github.com/33cn/critter/common"
	"github.com/33cn/critter/common/address"
	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/metrics"
	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	drivers "github.com/33cn/critter/system/dapp"
	"github.com/33cn/critter/types"
	"github.com/pkg/errors"
)

/*
 一局游戏的生命周期: 创建(开放) -> 投注期结束(固定开奖号码) -> 领奖 -> 结算完成.
 一次投注请求只会有两种结果之一:
   1. Registered: 投注被登记, 金额转入奖池
   2. ClosedWithReward: 这次请求结束了投注期, 投注不登记, 请求者得到结束奖励
 两种结果在同一个函数里决定, 交易失败时整个写缓存被丢弃.
*/

// BetOutcome 投注的结果
type BetOutcome interface {
	betOutcome()
}

// Registered 投注已登记
type Registered struct {
	Bet *pty.Bet
}

// ClosedWithReward 投注期结束, 投注没有登记
type ClosedWithReward struct {
	Amount      uint64
	DrawnNumber int32
}

func (*Registered) betOutcome()       {}
func (*ClosedWithReward) betOutcome() {}

// Action 一笔交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	index        int
	entropy      []byte
	cfg          *pty.Config
}

// NewAction 创建执行环境
func NewAction(c *Critter, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: c.GetCoinsAccount(),
		db:           c.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    c.GetBlockTime(),
		height:       c.GetHeight(),
		index:        index,
		entropy:      c.GetEntropy(),
		cfg:          getConfig(),
	}
}

func (action *Action) heightIndex() string {
	return drivers.HeightIndexStr(action.height, int64(action.index))
}

// PoolAddress 游戏奖池地址
func PoolAddress(gameID string) string {
	return address.ExecAddress(pty.CritterX + ".pool." + gameID)
}

// CalcBetID sha256(gameID || bettor || uint64_le(ordinal))
func CalcBetID(gameID, bettor string, ordinal uint64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], ordinal)
	return common.HashHex(common.Sha256Concat([]byte(gameID), []byte(bettor), buf[:]))
}

func validGameID(id string) bool {
	if len(id) == 0 || len(id) > pty.MaxGameIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_' || c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}

func readGame(db dbm.KV, gameID string) (*pty.Game, error) {
	data, err := db.Get(calcGameKey(gameID))
	if err != nil {
		return nil, pty.ErrGameNotFound
	}
	var game pty.Game
	if err := types.Decode(data, &game); err != nil {
		clog.Error("readGame", "gameID", gameID, "err", err)
		return nil, err
	}
	return &game, nil
}

func readBet(db dbm.KV, betID string) (*pty.Bet, error) {
	data, err := db.Get(calcBetKey(betID))
	if err != nil {
		return nil, pty.ErrBetNotFound
	}
	var bet pty.Bet
	if err := types.Decode(data, &bet); err != nil {
		clog.Error("readBet", "betID", betID, "err", err)
		return nil, err
	}
	return &bet, nil
}

func (action *Action) saveGame(kv *drivers.KVCreator, game *pty.Game) {
	kv.Add(calcGameKey(game.GameID), types.Encode(game))
}

func (action *Action) saveBet(kv *drivers.KVCreator, bet *pty.Bet) {
	kv.Add(calcBetKey(bet.BetID), types.Encode(bet))
}

func (action *Action) newReceipt(kv *drivers.KVCreator, logs []*types.ReceiptLog, receipts ...*types.Receipt) *types.Receipt {
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, r := range receipts {
		receipt = account.MergeReceipt(receipt, r)
	}
	receipt.KV = append(receipt.KV, kv.KVList()...)
	receipt.Logs = append(receipt.Logs, logs...)
	return receipt
}

// GameCreate 创建游戏
func (action *Action) GameCreate(create *pty.CritterCreate) (*types.Receipt, error) {
	if !validGameID(create.GameID) {
		return nil, errors.Wrapf(pty.ErrInvalidGameID, "game id %q", create.GameID)
	}
	if _, err := readGame(action.db, create.GameID); err == nil {
		return nil, pty.ErrGameExists
	}
	if create.Duration < 0 || (action.cfg.MaxDuration > 0 && create.Duration > action.cfg.MaxDuration) {
		return nil, errors.Wrapf(pty.ErrInvalidDuration, "duration %d", create.Duration)
	}
	participants, err := action.checkParticipants(create.Participants)
	if err != nil {
		return nil, err
	}
	game := &pty.Game{
		GameID:          create.GameID,
		Creator:         action.fromaddr,
		Participants:    participants,
		PoolAddr:        PoolAddress(create.GameID),
		MinEndingTick:   action.height + create.Duration,
		CombinedEntropy: make([]byte, 32),
		MinBet:          action.cfg.MinBet,
		CloserReward:    action.cfg.CloserReward,
		CreateHeight:    action.height,
		CreateTime:      action.blocktime,
		CreateIndex:     action.heightIndex(),
		Period:          pty.OpenPeriod{},
	}
	kv := drivers.NewKVCreator(action.db)
	action.saveGame(kv, game)
	log := &pty.ReceiptCritterCreate{
		GameID:        game.GameID,
		Creator:       game.Creator,
		Open:          game.IsOpenToAll(),
		MinEndingTick: game.MinEndingTick,
		Index:         game.CreateIndex,
		Height:        action.height,
		BlockTime:     action.blocktime,
	}
	clog.Debug("GameCreate", "gameID", game.GameID, "creator", game.Creator, "minEndingTick", game.MinEndingTick)
	logs := []*types.ReceiptLog{{Ty: pty.TyLogCritterCreate, Log: types.Encode(log)}}
	return action.newReceipt(kv, logs), nil
}

func (action *Action) checkParticipants(addrs []string) ([]string, error) {
	seen := make(map[string]bool, len(addrs))
	var out []string
	for _, addr := range addrs {
		if err := address.CheckAddress(addr); err != nil {
			return nil, errors.Wrapf(types.ErrInvalidAddress, "participant %s", addr)
		}
		if seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	if len(out) > action.cfg.MaxParticipants {
		return nil, pty.ErrTooManyParticipants
	}
	return out, nil
}

// GameBet 投注
func (action *Action) GameBet(req *pty.CritterBet) (*types.Receipt, error) {
	game, err := readGame(action.db, req.GameID)
	if err != nil {
		return nil, err
	}
	outcome, receipt, err := action.placeBet(game, req)
	if err != nil {
		return nil, err
	}
	switch o := outcome.(type) {
	case *Registered:
		metrics.Counter("critter.bet").Inc(1)
		clog.Debug("GameBet registered", "gameID", game.GameID, "betID", o.Bet.BetID, "number", o.Bet.Number)
	case *ClosedWithReward:
		metrics.Counter("critter.close").Inc(1)
		clog.Info("GameBet closed", "gameID", game.GameID, "drawn", o.DrawnNumber, "reward", o.Amount)
	}
	return receipt, nil
}

func (action *Action) validateBet(game *pty.Game, req *pty.CritterBet) error {
	if game.Period != nil && game.Period.Ended() {
		return pty.ErrPeriodEnded
	}
	if !game.CanBet(action.fromaddr) {
		return pty.ErrUnauthorized
	}
	if req.Number < 1 || req.Number > pty.NumberCount {
		return pty.ErrInvalidNumber
	}
	if req.Value < game.MinBet {
		return pty.ErrInvalidValue
	}
	return nil
}

// placeBet 投注的状态转换, 返回两种互斥结果之一
func (action *Action) placeBet(game *pty.Game, req *pty.CritterBet) (BetOutcome, *types.Receipt, error) {
	if err := action.validateBet(game, req); err != nil {
		return nil, nil, err
	}
	// 覆盖条件按照登记这次投注之前的状态判断
	closing := shouldClose(game, action.height, action.entropy)
	game.CombinedEntropy = accumulateEntropy(game.CombinedEntropy, action.entropy)
	game.LastEntropy = action.entropy
	if closing {
		return action.closePeriod(game)
	}
	return action.registerBet(game, req)
}

func (action *Action) closePeriod(game *pty.Game) (BetOutcome, *types.Receipt, error) {
	// 开奖号码在这一刻固定
	drawn := computeDraw(game.CombinedEntropy)
	pool := action.coinsAccount.LoadAccount(game.PoolAddr).Balance
	reward := game.CloserReward
	if reward > pool {
		reward = pool
	}
	if game.CloserReward > 0 && reward == 0 {
		return nil, nil, pty.ErrInsufficientBalance
	}
	var transfer *types.Receipt
	if reward > 0 {
		var err error
		transfer, err = action.coinsAccount.Transfer(game.PoolAddr, action.fromaddr, reward)
		if err != nil {
			clog.Error("closePeriod transfer", "gameID", game.GameID, "reward", reward, "err", err)
			return nil, nil, err
		}
	}
	game.Period = &pty.ClosedPeriod{
		DrawnNumber: drawn,
		Closer:      action.fromaddr,
		Reward:      reward,
		Height:      action.height,
		BlockTime:   action.blocktime,
	}
	kv := drivers.NewKVCreator(action.db)
	action.saveGame(kv, game)
	log := &pty.ReceiptCritterClose{
		GameID:      game.GameID,
		Closer:      action.fromaddr,
		DrawnNumber: drawn,
		Reward:      reward,
		CreateIndex: game.CreateIndex,
		Height:      action.height,
		BlockTime:   action.blocktime,
	}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogCritterClose, Log: types.Encode(log)}}
	receipts := []*types.Receipt{transfer}
	// 结束奖励用完了整个奖池, 没有奖金可领, 直接结算
	if game.Settled() {
		endLog, refund, err := action.settle(game)
		if err != nil {
			return nil, nil, err
		}
		logs = append(logs, endLog)
		receipts = append(receipts, refund)
	}
	return &ClosedWithReward{Amount: reward, DrawnNumber: drawn}, action.newReceipt(kv, logs, receipts...), nil
}

func (action *Action) registerBet(game *pty.Game, req *pty.CritterBet) (BetOutcome, *types.Receipt, error) {
	transfer, err := action.coinsAccount.Transfer(action.fromaddr, game.PoolAddr, req.Value)
	if err != nil {
		clog.Debug("registerBet transfer", "gameID", game.GameID, "from", action.fromaddr, "value", req.Value, "err", err)
		return nil, nil, err
	}
	bet := &pty.Bet{
		BetID:     CalcBetID(game.GameID, action.fromaddr, game.NumberOfBets),
		GameID:    game.GameID,
		Bettor:    action.fromaddr,
		Value:     req.Value,
		Number:    req.Number,
		BlockHash: action.entropy,
		Height:    action.height,
		BlockTime: action.blocktime,
		Ordinal:   game.NumberOfBets,
		Index:     action.heightIndex(),
	}
	game.BetsPerNumber[req.Number-1] += req.Value
	game.TotalValue += req.Value
	game.NumberOfBets++

	kv := drivers.NewKVCreator(action.db)
	action.saveGame(kv, game)
	action.saveBet(kv, bet)
	log := &pty.ReceiptCritterBet{
		GameID:    game.GameID,
		BetID:     bet.BetID,
		Bettor:    bet.Bettor,
		Number:    bet.Number,
		Value:     bet.Value,
		Index:     bet.Index,
		Height:    action.height,
		BlockTime: action.blocktime,
	}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogCritterBet, Log: types.Encode(log)}}
	return &Registered{Bet: bet}, action.newReceipt(kv, logs, transfer), nil
}

// GameClaim 领奖
func (action *Action) GameClaim(req *pty.CritterClaim) (*types.Receipt, error) {
	game, err := readGame(action.db, req.GameID)
	if err != nil {
		return nil, err
	}
	bet, err := readBet(action.db, req.BetID)
	if err != nil {
		return nil, err
	}
	closed := game.Closed()
	if closed == nil {
		return nil, pty.ErrGameNotFinished
	}
	if bet.PrizeClaimed {
		return nil, pty.ErrAlreadyClaimed
	}
	if bet.GameID != game.GameID || bet.Bettor != action.fromaddr {
		return nil, pty.ErrBetMismatch
	}
	prize := calcPrize(game, bet, closed.DrawnNumber)
	if prize == 0 {
		return nil, pty.ErrNoPrize
	}
	pool := action.coinsAccount.LoadAccount(game.PoolAddr).Balance
	paid := prize
	if paid > pool {
		paid = pool
	}
	if paid == 0 {
		return nil, pty.ErrInsufficientBalance
	}
	transfer, err := action.coinsAccount.Transfer(game.PoolAddr, bet.Bettor, paid)
	if err != nil {
		clog.Error("GameClaim transfer", "gameID", game.GameID, "betID", bet.BetID, "paid", paid, "err", err)
		return nil, err
	}
	wasSettled := game.Settled()
	bet.PrizeClaimed = true
	bet.Prize = prize
	game.ValueProvidedToWinners += prize
	game.ClaimedStake += bet.Value

	kv := drivers.NewKVCreator(action.db)
	action.saveGame(kv, game)
	action.saveBet(kv, bet)
	log := &pty.ReceiptCritterClaim{
		GameID:      game.GameID,
		BetID:       bet.BetID,
		Bettor:      bet.Bettor,
		DrawnNumber: closed.DrawnNumber,
		Prize:       prize,
		Paid:        paid,
		Height:      action.height,
		BlockTime:   action.blocktime,
	}
	logs := []*types.ReceiptLog{{Ty: pty.TyLogCritterClaim, Log: types.Encode(log)}}
	receipts := []*types.Receipt{transfer}
	metrics.Counter("critter.claim").Inc(1)

	if !wasSettled && game.Settled() {
		endLog, refund, err := action.settle(game)
		if err != nil {
			return nil, err
		}
		logs = append(logs, endLog)
		receipts = append(receipts, refund)
	}
	return action.newReceipt(kv, logs, receipts...), nil
}

// settle 结算完成, 奖池中剩余的零头退还给创建者
func (action *Action) settle(game *pty.Game) (*types.ReceiptLog, *types.Receipt, error) {
	dust := action.coinsAccount.LoadAccount(game.PoolAddr).Balance
	var refund *types.Receipt
	if dust > 0 {
		var err error
		refund, err = action.coinsAccount.Transfer(game.PoolAddr, game.Creator, dust)
		if err != nil {
			clog.Error("settle refund", "gameID", game.GameID, "dust", dust, "err", err)
			return nil, nil, err
		}
	}
	log := &pty.ReceiptCritterEnd{
		GameID:      game.GameID,
		Creator:     game.Creator,
		TotalValue:  game.TotalValue,
		Refund:      dust,
		CreateIndex: game.CreateIndex,
		Height:      action.height,
		BlockTime:   action.blocktime,
	}
	clog.Info("game settled", "gameID", game.GameID, "total", game.TotalValue, "refund", dust)
	return &types.ReceiptLog{Ty: pty.TyLogCritterEnd, Log: types.Encode(log)}, refund, nil
}
