// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/types"
)

// 存储地址上收币的信息
func calcAddrKey(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-coins-Addr:%s", addr))
}

func getAddrReciver(db dbm.KV, addr string) (uint64, error) {
	var reciver uint64
	value, err := db.Get(calcAddrKey(addr))
	if err != nil || len(value) == 0 {
		return 0, nil
	}
	if err := types.Decode(value, &reciver); err != nil {
		return 0, err
	}
	return reciver, nil
}

func updateAddrReciver(db dbm.KV, addr string, amount uint64) (*types.KeyValue, error) {
	recv, err := getAddrReciver(db, addr)
	if err != nil {
		return nil, err
	}
	recv += amount
	kv := &types.KeyValue{Key: calcAddrKey(addr), Value: types.Encode(recv)}
	return kv, db.Set(kv.Key, kv.Value)
}
