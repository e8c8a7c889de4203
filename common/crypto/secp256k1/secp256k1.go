// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secp256k1 secp256k1 ECDSA 签名, 公钥为33字节压缩格式, 签名为DER编码
package secp256k1

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/33cn/critter/common"
	"github.com/33cn/critter/common/crypto"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// 算法名和交易里的签名类型
const (
	Name = "secp256k1"
	ID   = int32(1)
)

const (
	privKeyBytesLen = 32
	pubKeyBytesLen  = 33
)

// 私钥错误
var (
	ErrPrivKeyLength = errors.New("ErrPrivKeyLength")
	ErrPrivKeyZero   = errors.New("ErrPrivKeyZero")
	ErrPubKeyLength  = errors.New("ErrPubKeyLength")
)

func init() {
	crypto.Register(Name, ID, &Driver{})
}

// Driver secp256k1 算法
type Driver struct{}

// GenKey 随机生成私钥
func (d Driver) GenKey() (crypto.PrivKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	var key PrivKeySecp256k1
	copy(key[:], priv.Serialize())
	return key, nil
}

// PrivKeyFromBytes 32字节私钥, 超过曲线阶的值会被取模
func (d Driver) PrivKeyFromBytes(b []byte) (crypto.PrivKey, error) {
	if len(b) != privKeyBytesLen {
		return nil, ErrPrivKeyLength
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, ErrPrivKeyZero
	}
	var key PrivKeySecp256k1
	copy(key[:], priv.Serialize())
	return key, nil
}

// PubKeyFromBytes 只接受压缩公钥
func (d Driver) PubKeyFromBytes(b []byte) (crypto.PubKey, error) {
	if len(b) != pubKeyBytesLen {
		return nil, ErrPubKeyLength
	}
	var pub PubKeySecp256k1
	copy(pub[:], b)
	return pub, nil
}

// SignatureFromBytes DER 签名
func (d Driver) SignatureFromBytes(b []byte) (crypto.Signature, error) {
	return SignatureSecp256k1(b), nil
}

// PrivKeyFromHex 支持带 0x 前缀, 命令行的私钥文件用这个格式
func PrivKeyFromHex(s string) (crypto.PrivKey, error) {
	s = strings.TrimSpace(s)
	b, err := common.FromHex(s)
	if err != nil {
		return nil, err
	}
	return Driver{}.PrivKeyFromBytes(b)
}

// PrivKeySecp256k1 私钥
type PrivKeySecp256k1 [32]byte

// Bytes 私钥字节
func (privKey PrivKeySecp256k1) Bytes() []byte {
	s := make([]byte, privKeyBytesLen)
	copy(s, privKey[:])
	return s
}

// Sign 对 sha256(msg) 签名
func (privKey PrivKeySecp256k1) Sign(msg []byte) crypto.Signature {
	priv, _ := btcec.PrivKeyFromBytes(privKey[:])
	sig := ecdsa.Sign(priv, common.Sha256(msg))
	return SignatureSecp256k1(sig.Serialize())
}

// PubKey 压缩公钥
func (privKey PrivKeySecp256k1) PubKey() crypto.PubKey {
	_, pub := btcec.PrivKeyFromBytes(privKey[:])
	var pubKey PubKeySecp256k1
	copy(pubKey[:], pub.SerializeCompressed())
	return pubKey
}

// Hex 写私钥文件用
func (privKey PrivKeySecp256k1) Hex() string {
	return hex.EncodeToString(privKey[:])
}

func (privKey PrivKeySecp256k1) String() string {
	return "PrivKeySecp256k1{*****}"
}

// PubKeySecp256k1 压缩公钥, 0x02 或 0x03 前缀加 x 坐标
type PubKeySecp256k1 [33]byte

// Bytes 公钥字节
func (pubKey PubKeySecp256k1) Bytes() []byte {
	s := make([]byte, pubKeyBytesLen)
	copy(s, pubKey[:])
	return s
}

// VerifyBytes 验证 sha256(msg) 的签名
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	s, ok := sig.(SignatureSecp256k1)
	if !ok {
		return false
	}
	pub, err := btcec.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(s)
	if err != nil {
		return false
	}
	return parsed.Verify(common.Sha256(msg), pub)
}

func (pubKey PubKeySecp256k1) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", pubKey[:])
}

// SignatureSecp256k1 DER 编码的签名
type SignatureSecp256k1 []byte

// Bytes 签名字节
func (sig SignatureSecp256k1) Bytes() []byte {
	s := make([]byte, len(sig))
	copy(s, sig)
	return s
}

// IsZero 空签名
func (sig SignatureSecp256k1) IsZero() bool { return len(sig) == 0 }
