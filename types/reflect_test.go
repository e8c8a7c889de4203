// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reflectDemo struct{}

type demoReq struct {
	N int
}

func (d *reflectDemo) Exec_Double(req *demoReq) (*demoReq, error) {
	return &demoReq{N: req.N * 2}, nil
}

func (d *reflectDemo) Exec_Fail(req *demoReq) (*demoReq, error) {
	return nil, errors.New("fail")
}

func (d *reflectDemo) Query_Value(req *demoReq) (int, error) {
	return req.N, nil
}

func TestListPrefixMethod(t *testing.T) {
	d := &reflectDemo{}
	methods := ListPrefixMethod(d, "Exec_")
	assert.Len(t, methods, 2)
	assert.Contains(t, methods, "Double")
	assert.Contains(t, methods, "Fail")

	queries := ListPrefixMethod(d, "Query_")
	assert.Len(t, queries, 1)
}

func TestCallMethod(t *testing.T) {
	d := &reflectDemo{}
	methods := ListPrefixMethod(d, "Exec_")

	out, err := CallMethod(d, methods["Double"], &demoReq{N: 3})
	require.NoError(t, err)
	assert.Equal(t, 6, out.(*demoReq).N)

	out, err = CallMethod(d, methods["Fail"], &demoReq{N: 3})
	assert.EqualError(t, err, "fail")
	assert.Nil(t, out)

	_, err = CallMethod(d, methods["Double"], "wrong")
	assert.Equal(t, ErrInvalidParam, err)

	_, err = CallMethod(d, methods["Double"])
	assert.Equal(t, ErrActionNotSupport, err)

	v, err := CallMethod(d, ListPrefixMethod(d, "Query_")["Value"], &demoReq{N: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
