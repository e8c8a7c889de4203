// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/33cn/critter/common/log"
	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	drivers "github.com/33cn/critter/system/dapp"
)

var clog = log.New("module", "execs.critter")

var (
	cfgMu  sync.RWMutex
	subCfg = pty.DefaultConfig()
)

// Init 注册执行器, sub 为 [exec.sub.critter] 配置
func Init(name string, sub []byte) error {
	driverName := GetName()
	if name != driverName {
		panic("system dapp can't be rename")
	}
	cfg, err := pty.ParseConfig(sub)
	if err != nil {
		return err
	}
	setConfig(cfg)
	if !drivers.IsRegistered(driverName) {
		drivers.Register(driverName, newCritter)
	}
	clog.Info("critter init", "minBet", cfg.MinBet, "closerReward", cfg.CloserReward, "defaultDuration", cfg.DefaultDuration)
	return nil
}

func setConfig(cfg *pty.Config) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	subCfg = cfg
}

func getConfig() *pty.Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return subCfg
}

// GetName 执行器名
func GetName() string {
	return pty.CritterX
}

// Critter 彩票游戏执行器
type Critter struct {
	drivers.DriverBase
}

func newCritter() drivers.Driver {
	c := &Critter{}
	c.SetChild(c)
	c.SetExecutorType(pty.NewType())
	return c
}

// GetDriverName 驱动名
func (c *Critter) GetDriverName() string {
	return pty.CritterX
}
