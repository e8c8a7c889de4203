// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/critter/types"
	"github.com/pkg/errors"
)

// Config [exec.sub.critter] 配置. 最小投注和结束奖励在创建游戏时写入游戏
type Config struct {
	MinBet          uint64 `json:"minBet"`
	CloserReward    uint64 `json:"closerReward"`
	DefaultDuration int64  `json:"defaultDuration"`
	// 0 表示不限制
	MaxDuration     int64 `json:"maxDuration"`
	MaxParticipants int   `json:"maxParticipants"`
	// [exec.sub.critter.recycler]
	Recycler *RecyclerConfig `json:"recycler,omitempty"`
}

// RecyclerConfig 定时任务: 结束到期的游戏, 没有开放的公开游戏时创建新游戏
type RecyclerConfig struct {
	Enable bool `json:"enable"`
	// cron 表达式, 默认每分钟一次
	Spec string `json:"spec"`
	// 签名交易的私钥(hex), 对应的地址需要有余额
	PrivKey string `json:"privKey"`
	// 新游戏的投注期, 0 使用 defaultDuration
	Duration int64 `json:"duration"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		MinBet:          DefaultMinBet,
		CloserReward:    DefaultCloserReward,
		DefaultDuration: DefaultDuration,
		MaxParticipants: DefaultMaxParticipants,
	}
}

// ParseConfig 解析子配置, 缺省项使用默认值
func ParseConfig(sub []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(sub) > 0 {
		if err := types.Decode(sub, cfg); err != nil {
			return nil, errors.Wrap(err, "decode critter config")
		}
	}
	if cfg.MinBet == 0 {
		return nil, errors.Wrap(types.ErrInvalidParam, "minBet must be positive")
	}
	if max := MaxCloserReward(cfg.MinBet); cfg.CloserReward > max {
		return nil, errors.Wrapf(types.ErrInvalidParam, "closerReward %d exceeds %d", cfg.CloserReward, max)
	}
	if cfg.DefaultDuration < 0 || cfg.MaxDuration < 0 {
		return nil, errors.Wrap(types.ErrInvalidParam, "negative duration")
	}
	if cfg.MaxDuration > 0 && cfg.DefaultDuration > cfg.MaxDuration {
		cfg.DefaultDuration = cfg.MaxDuration
	}
	if cfg.MaxParticipants <= 0 {
		cfg.MaxParticipants = DefaultMaxParticipants
	}
	if cfg.Recycler != nil {
		if cfg.Recycler.Spec == "" {
			cfg.Recycler.Spec = DefaultRecyclerSpec
		}
		if cfg.Recycler.Duration <= 0 {
			cfg.Recycler.Duration = cfg.DefaultDuration
		}
		if cfg.Recycler.Enable && cfg.Recycler.PrivKey == "" {
			return nil, errors.Wrap(types.ErrInvalidParam, "recycler privKey required")
		}
	}
	return cfg, nil
}

// MaxCloserReward 结束奖励的上限. 覆盖全部号码时奖池至少 NumberCount*minBet,
// 奖励不超过 NumberCount*(minBet-1) 时每个中奖投注的奖金至少为 1,
// 所有中奖投注都能领奖, 游戏最终一定能结算
func MaxCloserReward(minBet uint64) uint64 {
	if minBet == 0 {
		return 0
	}
	return NumberCount * (minBet - 1)
}
