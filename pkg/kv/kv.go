package kv

import (
	"errors"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// Store is a small KV wrapper over Badger. Values are opaque byte blobs;
// callers own serialization.
type Store struct {
	db *badger.DB
}

// Options controls how the underlying Badger database is opened.
type Options struct {
	Path     string
	InMemory bool // tests use this to avoid touching disk
	ReadOnly bool
}

// Open opens (creating if needed) the database at opts.Path.
func Open(opts Options) (*Store, error) {
	if !opts.InMemory && strings.TrimSpace(opts.Path) == "" {
		return nil, errors.New("kv: path is required")
	}
	bopts := badger.DefaultOptions(opts.Path).
		WithLogger(nil).
		WithReadOnly(opts.ReadOnly).
		WithInMemory(opts.InMemory)
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value under key. found is false when the key is absent;
// that is not an error.
func (s *Store) Get(key string) (val []byte, found bool, err error) {
	if s == nil || s.db == nil {
		return nil, false, errors.New("kv: not opened")
	}
	k := []byte(key)
	if len(k) == 0 {
		return nil, false, errors.New("kv: key is empty")
	}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		found = true
		return item.Value(func(v []byte) error {
			val = append([]byte(nil), v...)
			return nil
		})
	})
	if err != nil {
		return nil, false, err
	}
	return val, found, nil
}

// Set writes val under key, replacing any previous value.
func (s *Store) Set(key string, val []byte) error {
	if s == nil || s.db == nil {
		return errors.New("kv: not opened")
	}
	k := []byte(key)
	if len(k) == 0 {
		return errors.New("kv: key is empty")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, val)
	})
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	if s == nil || s.db == nil {
		return errors.New("kv: not opened")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
