// ABOUTME: Badger-backed slot store, the default local backend.
// ABOUTME: Each slot is a single key holding the serialized collection.

package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v3"
)

// BadgerBackend stores slots in a badger database.
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database in dir.
func OpenBadger(dir string, logger *log.Logger) (*BadgerBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(badgerLogger(logger))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerBackend{db: db}, nil
}

// OpenBadgerInMemory opens a badger database that never touches disk.
func OpenBadgerInMemory() (*BadgerBackend, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerBackend{db: db}, nil
}

func (b *BadgerBackend) Get(slot string) ([]byte, error) {
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(slot))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrSlotNotFound
	}
	return val, err
}

func (b *BadgerBackend) Set(slot string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(slot), value)
	})
}

func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

// badgerLogger adapts a charm logger to badger's logging interface.
// A nil logger silences badger.
func badgerLogger(l *log.Logger) badger.Logger {
	if l == nil {
		return nil
	}
	return &badgerLog{l: l.WithPrefix("badger")}
}

type badgerLog struct {
	l *log.Logger
}

func (b *badgerLog) Errorf(format string, args ...interface{})   { b.l.Errorf(format, args...) }
func (b *badgerLog) Warningf(format string, args ...interface{}) { b.l.Warnf(format, args...) }
func (b *badgerLog) Infof(format string, args ...interface{})    { b.l.Debugf(format, args...) }
func (b *badgerLog) Debugf(format string, args ...interface{})   { b.l.Debugf(format, args...) }
