// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 节点配置
type Config struct {
	Title      string      `toml:"title"`
	Version    string      `toml:"version"`
	Log        *Log        `toml:"log"`
	BlockChain *BlockChain `toml:"blockchain"`
	Mempool    *Mempool    `toml:"mempool"`
	Consensus  *Consensus  `toml:"consensus"`
	RPC        *RPC        `toml:"rpc"`
	Metrics    *Metrics    `toml:"metrics"`
	Genesis    *Genesis    `toml:"genesis"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// BlockChain 区块和状态存储配置
type BlockChain struct {
	// memdb, goleveldb, gobadgerdb
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
	// 缓存最近区块哈希的个数
	RecentHashCount int `toml:"recentHashCount"`
}

// Mempool 交易池配置
type Mempool struct {
	PoolCacheSize int `toml:"poolCacheSize"`
}

// Consensus 出块配置
type Consensus struct {
	Name string `toml:"name"`
	// 出块间隔, 单位毫秒
	BlockInterval int64 `toml:"blockInterval"`
	MaxTxNumber   int   `toml:"maxTxNumber"`
}

// RPC 配置
type RPC struct {
	JrpcBindAddr string   `toml:"jrpcBindAddr"`
	Whitelist    []string `toml:"whitelist"`
	CorsOrigins  []string `toml:"corsOrigins"`
}

// Metrics 配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// 输出间隔, 单位秒
	Duration int64 `toml:"duration"`
}

// Genesis 创世账户
type Genesis struct {
	Accounts []*GenesisAccount `toml:"accounts"`
}

// GenesisAccount 创世时分配的余额
type GenesisAccount struct {
	Addr   string `toml:"addr"`
	Amount uint64 `toml:"amount"`
}

// ConfigSubModule 执行器的子配置, 以json保存, 由各执行器自己解析
type ConfigSubModule struct {
	Exec map[string][]byte
}

type subModule struct {
	Exec map[string]interface{} `toml:"exec"`
}

func readFile(path string) (string, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read config %s", path)
	}
	return string(data), nil
}

// InitCfg 从文件初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	s, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	return InitCfgString(s)
}

// InitCfgString 从字符串初始化配置, 缺省项填默认值
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	fillDefault(&cfg)
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, sub, nil
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, errors.Wrap(err, "decode sub config")
	}
	mod := &ConfigSubModule{Exec: make(map[string][]byte)}
	subs, ok := sub.Exec["sub"].(map[string]interface{})
	if !ok {
		return mod, nil
	}
	for name, value := range subs {
		mod.Exec[name] = Encode(value)
	}
	return mod, nil
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "critter"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.BlockChain == nil {
		cfg.BlockChain = &BlockChain{}
	}
	if cfg.BlockChain.Driver == "" {
		cfg.BlockChain.Driver = "memdb"
	}
	if cfg.BlockChain.DbPath == "" {
		cfg.BlockChain.DbPath = "datadir"
	}
	if cfg.BlockChain.RecentHashCount <= 0 {
		cfg.BlockChain.RecentHashCount = 256
	}
	if cfg.Mempool == nil {
		cfg.Mempool = &Mempool{}
	}
	if cfg.Mempool.PoolCacheSize <= 0 {
		cfg.Mempool.PoolCacheSize = 10240
	}
	if cfg.Consensus == nil {
		cfg.Consensus = &Consensus{}
	}
	if cfg.Consensus.Name == "" {
		cfg.Consensus.Name = "solo"
	}
	if cfg.Consensus.BlockInterval <= 0 {
		cfg.Consensus.BlockInterval = 1000
	}
	if cfg.Consensus.MaxTxNumber <= 0 {
		cfg.Consensus.MaxTxNumber = MaxTxsPerBlock
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 60
	}
	if cfg.Genesis == nil {
		cfg.Genesis = &Genesis{}
	}
}
