// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB db
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	// memdb 不需要创建文件，后续考虑增加缓存数目
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.db[string(key)] = cloneByte(value)
	return nil
}

// SetSync 设置同步
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	delete(db.db, string(key))
	return nil
}

// DeleteSync 删除同步
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 关闭
func (db *GoMemDB) Close() {
}

// Stats ...
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return map[string]string{"keys": strconv.Itoa(len(db.db))}
}

// Iterator 迭代器, 创建时对前缀范围内的数据做一次快照
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys []string
	values := make(map[string][]byte)
	for k, v := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
			values[k] = v
		}
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	return &goMemDBIt{keys: keys, values: values, reverse: reverse}
}

type goMemDBIt struct {
	index   int
	keys    []string
	values  map[string][]byte
	reverse bool
}

func (it *goMemDBIt) Rewind() bool {
	it.index = 0
	return it.Valid()
}

func (it *goMemDBIt) Seek(key []byte) bool {
	k := string(key)
	if it.reverse {
		it.index = sort.Search(len(it.keys), func(i int) bool { return it.keys[i] <= k })
	} else {
		it.index = sort.Search(len(it.keys), func(i int) bool { return it.keys[i] >= k })
	}
	return it.Valid()
}

func (it *goMemDBIt) Next() bool {
	it.index++
	return it.Valid()
}

func (it *goMemDBIt) Valid() bool {
	return it.index >= 0 && it.index < len(it.keys)
}

func (it *goMemDBIt) Key() []byte {
	return []byte(it.keys[it.index])
}

func (it *goMemDBIt) Value() []byte {
	return it.values[it.keys[it.index]]
}

func (it *goMemDBIt) ValueCopy() []byte {
	return cloneByte(it.Value())
}

func (it *goMemDBIt) Error() error {
	return nil
}

func (it *goMemDBIt) Close() {
}

// NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kv struct {
	k []byte
	v []byte
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, w := range b.writes {
		if w.v == nil {
			delete(b.db.db, string(w.k))
			continue
		}
		b.db.db[string(w.k)] = w.v
	}
	mlog.Debug("batch write", "count", len(b.writes))
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
