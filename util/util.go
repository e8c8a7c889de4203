// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/common/crypto"
	"github.com/33cn/critter/common/crypto/secp256k1"
)

// TestPrivkeyHex 测试用的私钥
var TestPrivkeyHex = []string{
	"CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944",
	"4257D8692EF7FE13C68B65D6A52F03933DB2FA5CE8FAF210B5B8B80C721CED01",
	"0x6da92a632ab7deb67d38c0f6560bcfed28167998f6496db64c258d5e8393a81b",
	"0x19c069234f9d3e61135fefbeb7791b149cdf6af536f26bebb310d4cd22c3fee4",
	"0x7a80a1f75d7360c6123c32a78ecf978c1ac55636f87892df38d8b85a9aeff115",
	"4a92f3700920dc422c8ba993020d26b54711ef9b3d74deab7c3df055218ded42",
}

// TestPrivkeyList 测试用的私钥
var TestPrivkeyList = func() []crypto.PrivKey {
	list := make([]crypto.PrivKey, len(TestPrivkeyHex))
	for i, key := range TestPrivkeyHex {
		list[i] = HexToPrivkey(key)
	}
	return list
}()

// HexToPrivkey hex 私钥, 格式错误直接 panic
func HexToPrivkey(key string) crypto.PrivKey {
	priv, err := secp256k1.PrivKeyFromHex(key)
	if err != nil {
		panic(err)
	}
	return priv
}

// PrivkeyToAddr 私钥对应的地址
func PrivkeyToAddr(priv crypto.PrivKey) string {
	return address.PubKeyToAddr(priv.PubKey().Bytes())
}
