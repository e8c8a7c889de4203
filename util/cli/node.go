// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunCritter 加载各个模块, 组合成节点程序;
// Run 是命令行工具的入口
package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/33cn/critter/blockchain"
	dbm "github.com/33cn/critter/common/db"
	clog "github.com/33cn/critter/common/log"
	"github.com/33cn/critter/common/version"
	"github.com/33cn/critter/consensus"
	"github.com/33cn/critter/executor"
	"github.com/33cn/critter/mempool"
	"github.com/33cn/critter/metrics"
	"github.com/33cn/critter/plugin/dapp/critter/recycler"
	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	"github.com/33cn/critter/pluginmgr"
	"github.com/33cn/critter/rpc"
	"github.com/33cn/critter/types"
	"github.com/33cn/critter/util"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of critter, include logs and datas")
	versionCmd = flag.Bool("v", false, "version")
)

var log = clog.New("module", "main")

// RunCritter : run critter node
func RunCritter(name string) {
	flag.Parse()
	if *versionCmd {
		fmt.Println(version.GetVersion())
		return
	}
	if *configPath == "" {
		if name == "" {
			*configPath = "critter.toml"
		} else {
			*configPath = name + ".toml"
		}
	}
	cfg, sub, err := types.InitCfg(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *datadir != "" {
		if _, err := util.ResetDatadir(cfg, *datadir); err != nil {
			panic(err)
		}
	}
	clog.SetFileLog(cfg.Log)
	version.SetAppVersion(cfg.Version)
	log.Info(cfg.Title + "-app:" + version.GetAppVersion() + " critter:" + version.GetVersion())

	n, err := NewNode(cfg, sub)
	if err != nil {
		log.Error("start node", "err", err)
		os.Exit(1)
	}
	if err := n.Start(); err != nil {
		log.Error("start node", "err", err)
		n.Close()
		os.Exit(1)
	}
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	s := <-c
	log.Info("receive signal", "signal", s)
	n.Close()
}

// Node 节点, 同时是 rpc 和回收任务访问节点的接口
type Node struct {
	cfg      *types.Config
	dbs      []dbm.DB
	exec     *executor.Executor
	chain    *blockchain.BlockChain
	mem      *mempool.Mempool
	cs       consensus.Module
	rpc      *rpc.JSONRPCServer
	rpcPort  int
	recycler *recycler.Recycler
}

// NewNode 打开数据库, 加载各个模块, 需要时生成创世区块
func NewNode(cfg *types.Config, sub *types.ConfigSubModule) (*Node, error) {
	n := &Node{cfg: cfg}
	if err := pluginmgr.InitExec(sub.Exec); err != nil {
		return nil, err
	}
	bc := cfg.BlockChain
	var dbs [3]dbm.DB
	for i, name := range []string{"blockchain", "statedb", "localdb"} {
		db, err := dbm.NewDB(name, bc.Driver, filepath.Join(bc.DbPath, name), int(bc.DbCache))
		if err != nil {
			n.closeDB()
			return nil, err
		}
		dbs[i] = db
		n.dbs = append(n.dbs, db)
	}
	log.Info("loading execs module")
	n.exec = executor.New(dbs[1], dbs[2])

	log.Info("loading blockchain module")
	chain, err := blockchain.New(bc, dbs[0], n.exec)
	if err != nil {
		n.closeDB()
		return nil, err
	}
	n.chain = chain
	if err := chain.InitGenesis(cfg.Genesis, time.Now().Unix()); err != nil {
		n.closeDB()
		return nil, errors.Wrap(err, "init genesis")
	}

	log.Info("loading mempool module")
	n.mem = mempool.New(cfg.Mempool)

	log.Info("loading consensus module")
	n.cs, err = consensus.New(cfg.Consensus, n.mem, chain)
	if err != nil {
		n.closeDB()
		return nil, err
	}

	critterCfg, err := pty.ParseConfig(sub.Exec[pty.CritterX])
	if err != nil {
		n.closeDB()
		return nil, err
	}
	if critterCfg.Recycler != nil && critterCfg.Recycler.Enable {
		n.recycler, err = recycler.New(n, critterCfg)
		if err != nil {
			n.closeDB()
			return nil, err
		}
	}
	return n, nil
}

// Start 启动出块, rpc, 统计和回收任务
func (n *Node) Start() error {
	metrics.StartMetrics(n.cfg.Metrics)
	n.cs.Start()
	server, err := rpc.NewJSONRPCServer(n.cfg.RPC, n)
	if err != nil {
		return err
	}
	n.rpc = server
	port, err := server.Listen()
	if err != nil {
		return err
	}
	n.rpcPort = port
	if n.recycler != nil {
		return n.recycler.Start()
	}
	return nil
}

// Close 按启动的相反顺序关闭
func (n *Node) Close() {
	if n.recycler != nil {
		log.Info("begin close recycler")
		n.recycler.Stop()
	}
	if n.rpc != nil {
		log.Info("begin close rpc module")
		n.rpc.Close()
	}
	log.Info("begin close consensus module")
	n.cs.Close()
	log.Info("begin close blockchain module")
	n.chain.Close()
	n.closeDB()
}

func (n *Node) closeDB() {
	for _, db := range n.dbs {
		db.Close()
	}
	n.dbs = nil
}

// SendTx 交易进入交易池
func (n *Node) SendTx(tx *types.Transaction) ([]byte, error) {
	if err := n.mem.PushTx(tx); err != nil {
		return nil, err
	}
	return tx.Hash(), nil
}

// GetTx 按哈希查询交易
func (n *Node) GetTx(hash []byte) (*types.TxResult, error) {
	return n.exec.GetTx(hash)
}

// LastHeader 最新区块头
func (n *Node) LastHeader() (*types.Header, error) {
	header := n.chain.LastHeader()
	if header == nil {
		return nil, types.ErrBlockNotFound
	}
	return header, nil
}

// GetBlock 按高度查询区块
func (n *Node) GetBlock(height int64) (*types.BlockDetail, error) {
	return n.chain.GetBlock(height)
}

// GetBalance 主币余额
func (n *Node) GetBalance(addr string) *types.Account {
	return n.exec.GetBalance(addr)
}

// Query 执行器查询
func (n *Node) Query(execer, funcName string, params []byte) (types.Message, error) {
	return n.exec.Query(execer, funcName, params)
}

// Title 链名
func (n *Node) Title() string {
	return n.cfg.Title
}
