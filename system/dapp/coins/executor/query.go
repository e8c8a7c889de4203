// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/critter/system/dapp/coins/types"
	"github.com/33cn/critter/types"
)

// Query_GetAddrReciver 地址累计收到的转账
func (c *Coins) Query_GetAddrReciver(in *cty.ReqAddr) (types.Message, error) {
	amount, err := getAddrReciver(c.GetLocalDB(), in.Addr)
	if err != nil {
		return nil, err
	}
	return &cty.ReplyAddrReciver{Addr: in.Addr, Amount: amount}, nil
}
