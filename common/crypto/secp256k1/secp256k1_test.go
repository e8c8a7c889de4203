// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/33cn/critter/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	pub := priv.PubKey()
	assert.Len(t, pub.Bytes(), pubKeyBytesLen)

	msg := []byte("critter")
	sig := priv.Sign(msg)
	assert.False(t, sig.IsZero())
	assert.True(t, pub.VerifyBytes(msg, sig))
	assert.False(t, pub.VerifyBytes([]byte("other"), sig))
	assert.True(t, crypto.Verify(ID, msg, pub.Bytes(), sig.Bytes()))

	other, err := c.GenKey()
	require.NoError(t, err)
	assert.False(t, crypto.Verify(ID, msg, other.PubKey().Bytes(), sig.Bytes()))
	assert.False(t, crypto.Verify(ID, msg, pub.Bytes(), nil))
	assert.False(t, crypto.Verify(ID, msg, pub.Bytes()[1:], sig.Bytes()))
	assert.False(t, crypto.Verify(ID+100, msg, pub.Bytes(), sig.Bytes()))
}

func TestPrivKeyFromHex(t *testing.T) {
	priv, err := PrivKeyFromHex(" 0xCC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944\n")
	require.NoError(t, err)
	again, err := PrivKeyFromHex(priv.(PrivKeySecp256k1).Hex())
	require.NoError(t, err)
	assert.Equal(t, priv.Bytes(), again.Bytes())
	assert.Equal(t, priv.PubKey().Bytes(), again.PubKey().Bytes())
	assert.NotContains(t, priv.(PrivKeySecp256k1).String(), "CC38")

	_, err = PrivKeyFromHex("0x1234")
	assert.Equal(t, ErrPrivKeyLength, err)
	_, err = PrivKeyFromHex("0x0000000000000000000000000000000000000000000000000000000000000000")
	assert.Equal(t, ErrPrivKeyZero, err)
	_, err = PrivKeyFromHex("zz")
	assert.Error(t, err)

	_, err = Driver{}.PubKeyFromBytes(make([]byte, 65))
	assert.Equal(t, ErrPubKeyLength, err)
}

func TestRegister(t *testing.T) {
	c, err := crypto.Load(ID)
	require.NoError(t, err)
	assert.IsType(t, &Driver{}, c)
	assert.Panics(t, func() { crypto.Register(Name, ID, &Driver{}) })
	_, err = crypto.New("nosuch")
	assert.Error(t, err)
}
