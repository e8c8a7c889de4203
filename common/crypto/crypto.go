// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 签名接口和签名算法注册
package crypto

import (
	"fmt"
	"sync"
)

// PrivKey 私钥
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
}

// Signature 签名
type Signature interface {
	Bytes() []byte
	IsZero() bool
}

// PubKey 公钥
type PubKey interface {
	Bytes() []byte
	VerifyBytes(msg []byte, sig Signature) bool
}

// Crypto 一种签名算法
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

var (
	mu      sync.RWMutex
	drivers = make(map[string]Crypto)
	types   = make(map[int32]string)
)

// Register 注册签名算法, 名字和类型都不能重复
func Register(name string, ty int32, driver Crypto) {
	mu.Lock()
	defer mu.Unlock()
	if driver == nil {
		panic("crypto: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	if _, dup := types[ty]; dup {
		panic(fmt.Sprintf("crypto: Register type %d twice", ty))
	}
	drivers[name] = driver
	types[ty] = name
}

// New 按名字加载
func New(name string) (Crypto, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q", name)
	}
	return c, nil
}

// Load 按签名类型加载
func Load(ty int32) (Crypto, error) {
	mu.RLock()
	name, ok := types[ty]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown sign type %d", ty)
	}
	return New(name)
}

// Verify 用注册的算法验证签名
func Verify(ty int32, msg, pub, sig []byte) bool {
	c, err := Load(ty)
	if err != nil {
		return false
	}
	pubKey, err := c.PubKeyFromBytes(pub)
	if err != nil {
		return false
	}
	signature, err := c.SignatureFromBytes(sig)
	if err != nil || signature.IsZero() {
		return false
	}
	return pubKey.VerifyBytes(msg, signature)
}
