// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

// 列表方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

var listlog = log.New("module", "db.ListHelper")

// ListHelper 在 IteratorDB 上做前缀分页
type ListHelper struct {
	db IteratorDB
}

// NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db: db}
}

// PrefixScan 前缀下全部的值
func (l *ListHelper) PrefixScan(prefix []byte) [][]byte {
	return l.IteratorScanFromFirst(prefix, -1)
}

// List 分页: key 为空时从头(ASC)或者从尾(DESC)开始, 否则从 key 之后开始
func (l *ListHelper) List(prefix, key []byte, count, direction int32) [][]byte {
	if len(key) == 0 {
		return l.walk(prefix, nil, count, direction == ListDESC)
	}
	return l.IteratorScan(prefix, key, count, direction)
}

// IteratorScan 从 key 之后迭代, 不包含 key 本身
func (l *ListHelper) IteratorScan(prefix, key []byte, count, direction int32) [][]byte {
	return l.walk(prefix, key, count, direction == ListDESC)
}

// IteratorScanFromFirst count 小于等于0时不限制个数
func (l *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) [][]byte {
	return l.walk(prefix, nil, count, false)
}

// IteratorScanFromLast 从尾部倒序
func (l *ListHelper) IteratorScanFromLast(prefix []byte, count int32) [][]byte {
	return l.walk(prefix, nil, count, true)
}

func (l *ListHelper) walk(prefix, start []byte, count int32, reverse bool) (values [][]byte) {
	if count == 0 {
		count = -1
	}
	it := l.db.Iterator(prefix, reverse)
	defer it.Close()
	if start == nil {
		it.Rewind()
	} else {
		if !it.Seek(start) {
			return nil
		}
		if bytes.Equal(it.Key(), start) {
			it.Next()
		}
	}
	for ; it.Valid() && count != 0; it.Next() {
		value := it.ValueCopy()
		if err := it.Error(); err != nil {
			listlog.Error("walk", "prefix", string(prefix), "err", err)
			return nil
		}
		values = append(values, value)
		count--
	}
	return values
}

// PrefixCount 前缀下的key个数
func (l *ListHelper) PrefixCount(prefix []byte) (n int64) {
	it := l.db.Iterator(prefix, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixCount", "err", it.Error())
			return 0
		}
		n++
	}
	return n
}
