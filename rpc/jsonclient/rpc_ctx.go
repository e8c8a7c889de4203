// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonclient

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// Callback 在打印之前转换rpc结果, 比如把金额换算成显示单位
type Callback func(res interface{}) (interface{}, error)

// RPCCtx 命令行的一次rpc调用
type RPCCtx struct {
	Addr   string
	Method string
	Params interface{}
	Res    interface{}

	cb     Callback
	out    io.Writer
	errOut io.Writer
}

// NewRPCCtx 结果打印到标准输出, 错误打印到标准错误
func NewRPCCtx(laddr, method string, params, res interface{}) *RPCCtx {
	return &RPCCtx{
		Addr:   laddr,
		Method: method,
		Params: params,
		Res:    res,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// SetResultCb 设置结果转换函数
func (c *RPCCtx) SetResultCb(cb Callback) {
	c.cb = cb
}

func (c *RPCCtx) call(res interface{}) error {
	cli, err := NewJSONClient(c.Addr)
	if err != nil {
		return err
	}
	return cli.Call(c.Method, c.Params, res)
}

// RunResult 调用并返回经过回调转换后的结果
func (c *RPCCtx) RunResult() (interface{}, error) {
	if err := c.call(c.Res); err != nil {
		return nil, err
	}
	if c.cb == nil {
		return c.Res, nil
	}
	return c.cb(c.Res)
}

// Run 结果按缩进json打印
func (c *RPCCtx) Run() {
	result, err := c.RunResult()
	if err == nil {
		var data []byte
		if data, err = json.MarshalIndent(result, "", "    "); err == nil {
			fmt.Fprintln(c.out, string(data))
			return
		}
	}
	fmt.Fprintln(c.errOut, err)
}

// RunWithoutMarshal 结果是字符串时直接打印, 如交易哈希
func (c *RPCCtx) RunWithoutMarshal() {
	var res string
	if err := c.call(&res); err != nil {
		fmt.Fprintln(c.errOut, err)
		return
	}
	fmt.Fprintln(c.out, res)
}
