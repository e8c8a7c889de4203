// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solo 单节点出块
package solo

import (
	"sync"
	"time"

	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/types"
)

var slog = log.New("module", "solo")

// TxSource 交易来源, 一般是交易池
type TxSource interface {
	GetTxList(txListSize int) []*types.Transaction
}

// BlockWriter 执行并保存区块
type BlockWriter interface {
	ProcessBlock(txs []*types.Transaction, blocktime int64) (*types.BlockDetail, error)
}

// Client solo 出块客户端
type Client struct {
	cfg   *types.Consensus
	pool  TxSource
	chain BlockWriter
	now   func() time.Time
	quit  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// New 创建 solo 客户端
func New(cfg *types.Consensus, pool TxSource, chain BlockWriter) *Client {
	return &Client{
		cfg:   cfg,
		pool:  pool,
		chain: chain,
		now:   time.Now,
		quit:  make(chan struct{}),
	}
}

// Start 开始定时出块
func (client *Client) Start() {
	interval := time.Duration(client.cfg.BlockInterval) * time.Millisecond
	slog.Info("solo start", "interval", interval, "maxTxNumber", client.cfg.MaxTxNumber)
	client.wg.Add(1)
	go func() {
		defer client.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-client.quit:
				return
			case <-ticker.C:
				if _, err := client.CreateBlock(); err != nil {
					slog.Error("CreateBlock", "err", err)
				}
			}
		}
	}()
}

// CreateBlock 打包一个区块
func (client *Client) CreateBlock() (*types.BlockDetail, error) {
	txs := client.pool.GetTxList(client.cfg.MaxTxNumber)
	detail, err := client.chain.ProcessBlock(txs, client.now().Unix())
	if err != nil {
		return nil, err
	}
	slog.Debug("CreateBlock", "height", detail.Block.Height, "txs", len(txs))
	return detail, nil
}

// Close 停止出块
func (client *Client) Close() {
	client.once.Do(func() {
		close(client.quit)
	})
	client.wg.Wait()
	slog.Info("solo closed")
}
