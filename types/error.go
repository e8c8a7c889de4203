// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 框架层错误
var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrAmount             = errors.New("ErrAmount")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
	ErrUnknownDriver      = errors.New("ErrUnknownDriver")
	ErrDecode             = errors.New("ErrDecode")
	ErrTxDup              = errors.New("ErrTxDup")
	ErrTxMsgSizeTooBig    = errors.New("ErrTxMsgSizeTooBig")
	ErrMemFull            = errors.New("ErrMemFull")
	ErrEmptyTx            = errors.New("ErrEmptyTx")
	ErrBlockNotFound      = errors.New("ErrBlockNotFound")
	ErrHashNotExist       = errors.New("ErrHashNotExist")
	ErrChainClosed        = errors.New("ErrChainClosed")
	ErrHeightNotExist     = errors.New("ErrHeightNotExist")
	ErrBlockExec          = errors.New("ErrBlockExec")
	ErrSign               = errors.New("ErrSign")
)
