// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/critter/common"
)

// accumulateEntropy combined' = sha256(combined || observed).
// 每一次通过校验的投注都要调用, 包括结束投注期的那一次
func accumulateEntropy(combined, observed []byte) []byte {
	return common.Sha256Concat(combined, observed)
}
