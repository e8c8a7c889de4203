// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/33cn/critter/common"
	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/common/version"
	rpctypes "github.com/33cn/critter/rpc/types"
	"github.com/33cn/critter/types"
)

// Critter json rpc 服务, 方法名为 Critter.Xxx
type Critter struct {
	cli ChannelClient
}

// SendTransaction 发送交易, 返回交易哈希
func (c *Critter) SendTransaction(in types.Transaction, result *interface{}) error {
	hash, err := c.cli.SendTx(&in)
	if err != nil {
		return err
	}
	*result = common.ToHex(hash)
	return nil
}

// QueryTransaction 按哈希查询交易和执行结果
func (c *Critter) QueryTransaction(in rpctypes.QueryParm, result *interface{}) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return err
	}
	res, err := c.cli.GetTx(hash)
	if err != nil {
		return err
	}
	detail := &rpctypes.TransactionDetail{
		Tx:         rpctypes.ConvertTransaction(res.Tx),
		Receipt:    rpctypes.DecodeReceipt(res.Tx.Execer, res.Receipt),
		Height:     res.Height,
		Index:      res.Index,
		BlockTime:  res.BlockTime,
		ActionName: "unknown",
	}
	if name, _, err := types.DecodePayload(res.Tx); err == nil {
		detail.ActionName = name
	}
	*result = detail
	return nil
}

// GetLastHeader 最新区块头
func (c *Critter) GetLastHeader(in *rpctypes.ReqNil, result *interface{}) error {
	header, err := c.cli.LastHeader()
	if err != nil {
		return err
	}
	*result = rpctypes.ConvertHeader(header)
	return nil
}

// GetBlockByHeight 按高度查询区块
func (c *Critter) GetBlockByHeight(in rpctypes.ReqHeight, result *interface{}) error {
	detail, err := c.cli.GetBlock(in.Height)
	if err != nil {
		return err
	}
	header := detail.Block.GetHeader()
	header.Hash = detail.Block.Hash()
	block := &rpctypes.BlockDetail{Header: rpctypes.ConvertHeader(header)}
	for i, tx := range detail.Block.Txs {
		block.Txs = append(block.Txs, rpctypes.ConvertTransaction(tx))
		if i < len(detail.Receipts) {
			block.Receipts = append(block.Receipts, rpctypes.DecodeReceipt(tx.Execer, detail.Receipts[i]))
		}
	}
	*result = block
	return nil
}

// GetBalance 主币余额
func (c *Critter) GetBalance(in rpctypes.ReqAddr, result *interface{}) error {
	if err := address.CheckAddress(in.Addr); err != nil {
		return types.ErrInvalidAddress
	}
	acc := c.cli.GetBalance(in.Addr)
	*result = &rpctypes.Account{Addr: acc.Addr, Balance: acc.Balance}
	return nil
}

// Query 执行器查询
func (c *Critter) Query(in rpctypes.Query4Jrpc, result *interface{}) error {
	if in.Execer == "" || in.FuncName == "" {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Query(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		rlog.Debug("Query", "execer", in.Execer, "funcName", in.FuncName, "err", err)
		return err
	}
	*result = reply
	return nil
}

// Version 版本信息
func (c *Critter) Version(in *rpctypes.ReqNil, result *interface{}) error {
	*result = &rpctypes.VersionInfo{
		Title:   c.cli.Title(),
		App:     version.GetAppVersion(),
		Critter: version.GetVersion(),
	}
	return nil
}
