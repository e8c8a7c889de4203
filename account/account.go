// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现账户余额的读写和转账

1. load from db
2. save to db
3. KVSet
4. Transfer
5. Account balance query
*/
package account

import (
	"fmt"
	"strings"

	dbm "github.com/33cn/critter/common/db"
	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/types"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	execer           string
	symbol           string
}

// DefaultSymbol 主币的符号
const DefaultSymbol = "crt"

// NewCoinsAccount 主币账户
func NewCoinsAccount(db dbm.KV) *DB {
	acc, err := NewAccountDB(types.CoinsX, DefaultSymbol, db)
	if err != nil {
		panic(err)
	}
	return acc
}

// NewAccountDB 按照执行器和符号创建账户数据库
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	acc := &DB{
		accountKeyPerfix: []byte(SymbolPrefix(execer, symbol)),
		execer:           execer,
		symbol:           symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

// SetDB 设置状态数据库, 执行每笔交易时替换
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount 加载账户, 不存在时返回余额为0的账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// LoadAccounts 批量加载
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// GetBalance 余额
func (acc *DB) GetBalance(addr string) uint64 {
	return acc.LoadAccount(addr).Balance
}

// CheckAmount 金额检查
func CheckAmount(amount uint64) bool {
	return amount > 0 && amount < types.MaxCoin
}

// CheckTransfer 检查余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount uint64) error {
	if !CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	if acc.LoadAccount(from).Balance < amount {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer 转账, 返回两条转账日志
func (acc *DB) Transfer(from, to string, amount uint64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	balanceTo, err := safeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance = balanceTo

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	alog.Debug("Transfer", "from", from, "to", to, "amount", amount)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo types.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 写入数据库
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户 key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}

// MergeReceipt 合并两个收据
func MergeReceipt(receipt1, receipt2 *types.Receipt) *types.Receipt {
	if receipt1 == nil {
		return receipt2
	}
	if receipt2 == nil {
		return receipt1
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	return receipt1
}
