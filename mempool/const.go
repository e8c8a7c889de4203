// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/33cn/critter/common/log"
)

var (
	mlog               = log.New("module", "mempool")
	poolCacheSize      = 10240  // mempool容量
	mempoolAddedTxSize = 102400 // 已打包过的交易缓存大小
	latestTxNum        = 10
)
