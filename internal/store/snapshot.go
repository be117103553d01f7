// Package store persists a completed run's transposition table to
// disk and restores it later, so a long analysis session survives a
// process restart. It is an on-disk cache of already-computed
// exact/bound entries, not a precomputed opening book: every entry was
// produced by the same negamax search the in-memory table would have
// produced, just saved across runs.
package store

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-logr/logr"
	"github.com/klauspost/compress/gzip"

	"github.com/YKhan142008/c4-solver/internal/tt"
)

// Snapshot wraps a badger key-value store used only as a serialization
// target for transposition-table entries: key -> packed 64-bit record,
// both stored as 8-byte big-endian values.
type Snapshot struct {
	db  *badger.DB
	log logr.Logger
}

// Open opens (creating if necessary) a badger database at dir.
func Open(dir string, log logr.Logger) (*Snapshot, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Snapshot{db: db, log: log}, nil
}

// Close releases the underlying badger database.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Export copies every occupied slot of table into the badger store,
// batched for throughput.
func (s *Snapshot) Export(table *tt.Table) error {
	batch := s.db.NewWriteBatch()
	defer batch.Cancel()

	count := 0
	for _, word := range table.Words() {
		if word == 0 {
			continue
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, word&tt.KeyMask)
		val := make([]byte, 8)
		binary.BigEndian.PutUint64(val, word)
		if err := batch.Set(key, val); err != nil {
			return err
		}
		count++
	}
	if err := batch.Flush(); err != nil {
		return err
	}
	s.log.V(1).Info("exported transposition table", "entries", count)
	return nil
}

// Import restores table's slots from the badger store's contents,
// overwriting whatever table already holds for a matching key.
func (s *Snapshot) Import(table *tt.Table) error {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				word := binary.BigEndian.Uint64(val)
				table.PutWord(word)
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.V(1).Info("imported transposition table", "entries", count)
	return nil
}

// SaveCompressed streams a full badger backup, gzip-compressed, to
// path.
func (s *Snapshot) SaveCompressed(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return err
	}
	defer gw.Close()

	if _, err := s.db.Backup(gw, 0); err != nil {
		return err
	}
	return gw.Close()
}

// LoadCompressed restores a badger backup previously written by
// SaveCompressed.
func (s *Snapshot) LoadCompressed(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gr.Close()

	return s.db.Load(io.Reader(gr), 256)
}
