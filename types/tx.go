// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/rand"
	"time"

	"github.com/33cn/critter/common"
	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/common/crypto"
	"github.com/33cn/critter/common/crypto/secp256k1"
)

// SECP256K1 默认的签名类型
const SECP256K1 = secp256k1.ID

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Signature 交易签名, 公钥决定了交易的发起地址
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

// Transaction 交易
type Transaction struct {
	Execer    string     `json:"execer"`
	Payload   []byte     `json:"payload"`
	Signature *Signature `json:"signature,omitempty"`
	Nonce     int64      `json:"nonce"`
}

// NewTransaction 构造未签名的交易, nonce 随机生成
func NewTransaction(execer string, payload Message) *Transaction {
	return &Transaction{
		Execer:  execer,
		Payload: Encode(payload),
		Nonce:   rand.Int63(),
	}
}

func (tx *Transaction) unsigned() []byte {
	copytx := *tx
	copytx.Signature = nil
	return Encode(&copytx)
}

// Hash 不包含签名的交易编码的 sha256
func (tx *Transaction) Hash() []byte {
	return common.Sha256(tx.unsigned())
}

// Sign 对不包含签名的交易编码签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	data := tx.unsigned()
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    priv.PubKey().Bytes(),
		Signature: priv.Sign(data).Bytes(),
	}
}

// CheckSign 签名存在并且能用交易里的公钥验证
func (tx *Transaction) CheckSign() bool {
	sig := tx.Signature
	if sig == nil {
		return false
	}
	return crypto.Verify(sig.Ty, tx.unsigned(), sig.Pubkey, sig.Signature)
}

// Size 交易编码后的大小
func (tx *Transaction) Size() int {
	return len(Encode(tx))
}

// Check 交易的基本检查和签名检查
func (tx *Transaction) Check() error {
	if tx.Execer == "" || len(tx.Execer) > MaxExecNameSize {
		return ErrExecNameNotAllow
	}
	if tx.Size() > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	if len(tx.Payload) == 0 {
		return ErrEmptyTx
	}
	if !tx.CheckSign() {
		return ErrSign
	}
	return nil
}

// From 由签名公钥计算的发起地址, 未签名时为空
func (tx *Transaction) From() string {
	if tx.Signature == nil || len(tx.Signature.Pubkey) == 0 {
		return ""
	}
	return address.PubKeyToAddr(tx.Signature.Pubkey)
}
