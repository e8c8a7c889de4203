// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consensus

import (
	"github.com/33cn/critter/consensus/solo"
	"github.com/33cn/critter/types"
	"github.com/pkg/errors"
)

// Module 出块模块
type Module interface {
	Start()
	Close()
}

// New 按配置创建出块模块
func New(cfg *types.Consensus, pool solo.TxSource, chain solo.BlockWriter) (Module, error) {
	switch cfg.Name {
	case "solo":
		return solo.New(cfg, pool, chain), nil
	}
	return nil, errors.Wrapf(types.ErrInvalidParam, "unsupported consensus type %s", cfg.Name)
}
