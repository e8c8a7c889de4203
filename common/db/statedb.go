// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
)

// StateDB 在 DB 之上的写缓存. 一笔交易在一个 StateDB 上执行,
// 成功时 Commit, 失败时直接丢弃, 底层数据库不会看到部分写入.
// List 只读取已经提交的数据
type StateDB struct {
	db    DB
	cache map[string][]byte
}

// NewStateDB new
func NewStateDB(db DB) *StateDB {
	return &StateDB{db: db, cache: make(map[string][]byte)}
}

// Get 先读缓存, 再读数据库
func (s *StateDB) Get(key []byte) ([]byte, error) {
	if value, ok := s.cache[string(key)]; ok {
		if value == nil {
			return nil, ErrNotFoundInDb
		}
		return cloneByte(value), nil
	}
	return s.db.Get(key)
}

// Set 只写缓存, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	s.cache[string(key)] = cloneByte(value)
	return nil
}

// List 列表查询
func (s *StateDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := NewListHelper(s.db).List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, ErrNotFoundInDb
	}
	return values, nil
}

// Keys 缓存中所有的 key, 按字典序
func (s *StateDB) Keys() []string {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Commit 把缓存写入数据库
func (s *StateDB) Commit() error {
	if len(s.cache) == 0 {
		return nil
	}
	batch := s.db.NewBatch(true)
	for _, k := range s.Keys() {
		v := s.cache[k]
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.Rollback()
	return nil
}

// Rollback 丢弃缓存
func (s *StateDB) Rollback() {
	s.cache = make(map[string][]byte)
}
