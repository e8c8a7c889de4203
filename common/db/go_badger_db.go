// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"
	"strconv"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

// GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(path.Join(dir, name+".db"))
	if cache > 0 {
		opts.MaxTableSize = int64(cache) << 20
	}
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

// Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

// Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

// SetSync 同步
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

// DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

// Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

// Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"lsm":  strconv.FormatInt(lsm, 10),
		"vlog": strconv.FormatInt(vlog, 10),
	}
}

// Iterator 迭代器, 使用只读事务, Close 时结束事务
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{it: it, txn: txn, prefix: cloneByte(prefix), reverse: reverse}
}

type goBadgerDBIt struct {
	it      *badger.Iterator
	txn     *badger.Txn
	prefix  []byte
	reverse bool
	err     error
}

func (it *goBadgerDBIt) Rewind() bool {
	if it.reverse {
		// 逆序时从前缀范围内最大的key开始
		it.it.Seek(append(cloneByte(it.prefix), bytes.Repeat([]byte{0xFF}, 32)...))
	} else {
		it.it.Seek(it.prefix)
	}
	return it.Valid()
}

func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.it.Seek(key)
	return it.Valid()
}

func (it *goBadgerDBIt) Next() bool {
	it.it.Next()
	return it.Valid()
}

func (it *goBadgerDBIt) Valid() bool {
	return it.it.ValidForPrefix(it.prefix)
}

func (it *goBadgerDBIt) Key() []byte {
	return it.it.Item().Key()
}

func (it *goBadgerDBIt) Value() []byte {
	value, err := it.it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	return it.Value()
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

func (it *goBadgerDBIt) Close() {
	it.it.Close()
	it.txn.Discard()
}

// NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db, txn: db.db.NewTransaction(true)}
}

type goBadgerDBBatch struct {
	db   *GoBadgerDB
	txn  *badger.Txn
	size int
	err  error
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.size += len(value)
	mBatch.apply(func(txn *badger.Txn) error { return txn.Set(cloneByte(key), cloneByte(value)) })
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.size++
	mBatch.apply(func(txn *badger.Txn) error { return txn.Delete(cloneByte(key)) })
}

// 事务过大时先提交已有的写入, 再开启新的事务
func (mBatch *goBadgerDBBatch) apply(fn func(txn *badger.Txn) error) {
	if mBatch.err != nil {
		return
	}
	err := fn(mBatch.txn)
	if err == badger.ErrTxnTooBig {
		if err = mBatch.txn.Commit(); err != nil {
			mBatch.err = err
			return
		}
		mBatch.txn = mBatch.db.db.NewTransaction(true)
		err = fn(mBatch.txn)
	}
	mBatch.err = err
}

func (mBatch *goBadgerDBBatch) Write() error {
	if mBatch.err != nil {
		mBatch.txn.Discard()
		blog.Error("Write", "error", mBatch.err)
		return mBatch.err
	}
	err := mBatch.txn.Commit()
	if err != nil {
		blog.Error("Write", "error", err)
	}
	return err
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.txn.Discard()
	mBatch.txn = mBatch.db.db.NewTransaction(true)
	mBatch.size = 0
	mBatch.err = nil
}
