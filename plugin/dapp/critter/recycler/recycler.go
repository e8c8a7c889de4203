// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recycler 定时任务: 推动到期游戏结束投注, 保证始终有一个开放的公开游戏
package recycler

import (
	"sync"

	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/common/crypto"
	"github.com/33cn/critter/common/crypto/secp256k1"
	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/metrics"
	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	"github.com/33cn/critter/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

var rlog = log.New("module", "critter.recycler")

// Client 回收任务访问节点的接口
type Client interface {
	SendTx(tx *types.Transaction) ([]byte, error)
	LastHeader() (*types.Header, error)
	GetBalance(addr string) *types.Account
	Query(execer, funcName string, params []byte) (types.Message, error)
}

// Recycler game closer + game creator
type Recycler struct {
	cli  Client
	cfg  *pty.Config
	cron *cron.Cron
	priv crypto.PrivKey
	addr string

	mu sync.Mutex
	// gameID -> 发送推动交易时的区块高度, 同一高度不重复发送
	poked map[string]int64
	// 创建新游戏时的区块高度
	created int64
}

// New 创建回收任务, cfg.Recycler 不能为空
func New(cli Client, cfg *pty.Config) (*Recycler, error) {
	if cfg == nil || cfg.Recycler == nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "recycler config required")
	}
	if cfg.Recycler.PrivKey == "" {
		return nil, errors.Wrap(types.ErrInvalidParam, "recycler privKey required")
	}
	priv, err := secp256k1.PrivKeyFromHex(cfg.Recycler.PrivKey)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, err.Error())
	}
	return &Recycler{
		cli:     cli,
		cfg:     cfg,
		cron:    cron.New(),
		priv:    priv,
		addr:    address.PubKeyToAddr(priv.PubKey().Bytes()),
		poked:   make(map[string]int64),
		created: -1,
	}, nil
}

// Start 按配置的 spec 启动定时任务
func (r *Recycler) Start() error {
	_, err := r.cron.AddFunc(r.cfg.Recycler.Spec, func() {
		if err := r.RunOnce(); err != nil {
			rlog.Error("recycler", "err", err)
		}
	})
	if err != nil {
		return errors.Wrapf(err, "recycler spec %s", r.cfg.Recycler.Spec)
	}
	r.cron.Start()
	rlog.Info("recycler started", "spec", r.cfg.Recycler.Spec, "addr", r.addr)
	return nil
}

// Stop 等待正在运行的任务结束
func (r *Recycler) Stop() {
	<-r.cron.Stop().Done()
}

// RunOnce 检查一遍所有开放的游戏
func (r *Recycler) RunOnce() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	header, err := r.cli.LastHeader()
	if err != nil {
		return err
	}
	games, err := r.openGames()
	if err != nil {
		return err
	}
	// 下一个区块的高度
	tick := header.Height + 1
	addr := r.addr
	hasPublic := false
	for _, game := range games {
		if game.IsOpenToAll() {
			hasPublic = true
		}
		if !game.CanBet(addr) || tick < game.MinEndingTick || !game.Covered() {
			continue
		}
		if h, ok := r.poked[game.GameID]; ok && h == header.Height {
			continue
		}
		if err := r.poke(game, header.Height); err != nil {
			rlog.Error("poke", "gameID", game.GameID, "err", err)
			continue
		}
		r.poked[game.GameID] = header.Height
	}
	r.forget(games)
	if !hasPublic && r.created != header.Height {
		if err := r.create(); err != nil {
			return err
		}
		r.created = header.Height
	}
	return nil
}

func (r *Recycler) openGames() ([]*pty.Game, error) {
	var games []*pty.Game
	req := &pty.ReqListGames{Status: pty.GameStatusOpen, Count: types.MaxCount, Direction: types.ListASC}
	for {
		msg, err := r.cli.Query(pty.CritterX, "ListGames", types.Encode(req))
		if err != nil {
			return nil, err
		}
		reply, ok := msg.(*pty.ReplyGameList)
		if !ok {
			return nil, errors.Wrapf(types.ErrDecode, "ListGames reply %T", msg)
		}
		games = append(games, reply.Games...)
		if len(reply.Games) < int(req.Count) {
			return games, nil
		}
		req.PrimaryKey = reply.Games[len(reply.Games)-1].CreateIndex
	}
}

// 已经不是开放状态的游戏不再记录
func (r *Recycler) forget(open []*pty.Game) {
	ids := make(map[string]bool, len(open))
	for _, g := range open {
		ids[g.GameID] = true
	}
	for id := range r.poked {
		if !ids[id] {
			delete(r.poked, id)
		}
	}
}

// poke 以最小投注额投注, 由执行器判断能否结束投注期
func (r *Recycler) poke(game *pty.Game, height int64) error {
	acc := r.cli.GetBalance(r.addr)
	if acc == nil || acc.Balance < game.MinBet {
		return errors.Wrapf(types.ErrNoBalance, "need %d", game.MinBet)
	}
	bet := &pty.CritterBet{
		GameID: game.GameID,
		Number: int32(height%pty.NumberCount) + 1,
		Value:  game.MinBet,
	}
	tx, err := pty.CreateRawBetTx(bet)
	if err != nil {
		return err
	}
	tx.Sign(types.SECP256K1, r.priv)
	if _, err := r.cli.SendTx(tx); err != nil {
		return err
	}
	metrics.Counter("critter.recycler.poke").Inc(1)
	rlog.Debug("poke", "gameID", game.GameID, "number", bet.Number)
	return nil
}

func (r *Recycler) create() error {
	create := &pty.CritterCreate{
		GameID:   uuid.New().String(),
		Duration: r.cfg.Recycler.Duration,
	}
	tx, err := pty.CreateRawCreateTx(create)
	if err != nil {
		return err
	}
	tx.Sign(types.SECP256K1, r.priv)
	if _, err := r.cli.SendTx(tx); err != nil {
		return errors.Wrap(err, "create game")
	}
	metrics.Counter("critter.recycler.create").Inc(1)
	rlog.Info("new public game", "gameID", create.GameID, "duration", create.Duration)
	return nil
}
