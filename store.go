package tstruct

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.etcd.io/bbolt"
)

type StoreOptions struct {
	Logger *slog.Logger

	// Protocol records are encoded with. Reopening a store with a different
	// protocol makes existing records unreadable.
	Protocol Protocol

	// IsTesting trades durability for speed.
	IsTesting bool

	// Timeout for acquiring the file lock, 10 seconds by default.
	Timeout time.Duration
}

func (o *StoreOptions) normalize() {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Timeout == 0 {
		o.Timeout = 10 * time.Second
	}
}

// Store persists encoded records in named buckets, one bucket per struct
// type. Access records through a Collection.
type Store struct {
	stor   storage
	proto  Protocol
	logger *slog.Logger
}

// OpenStore opens (creating if needed) a bbolt-backed store at path.
func OpenStore(path string, opt StoreOptions) (*Store, error) {
	opt.normalize()
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = opt.Timeout
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
	}
	bdb, err := bbolt.Open(path, 0666, &bopt)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	opt.Logger.LogAttrs(context.Background(), slog.LevelDebug, "store: opened", slog.String("path", path), slog.String("protocol", opt.Protocol.String()))
	return newStore(newBoltStorage(bdb), opt), nil
}

// NewMemStore returns a transient in-memory store.
func NewMemStore(opt StoreOptions) *Store {
	opt.normalize()
	return newStore(newMemStorage(), opt)
}

func newStore(stor storage, opt StoreOptions) *Store {
	return &Store{
		stor:   stor,
		proto:  opt.Protocol,
		logger: opt.Logger,
	}
}

func (s *Store) Close() error {
	return s.stor.Close()
}

func (s *Store) Protocol() Protocol {
	return s.proto
}

func (s *Store) tx(writable bool, f func(tx storageTx) error) error {
	tx, err := s.stor.BeginTx(writable)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := f(tx); err != nil {
		return err
	}
	if writable {
		return tx.Commit()
	}
	return nil
}

// Collection is the typed view of the bucket holding records of one struct
// type, keyed by arbitrary byte strings.
type Collection[R any] struct {
	store  *Store
	st     *StructType[R]
	bucket string
}

func NewCollection[R any](s *Store, st *StructType[R]) *Collection[R] {
	return &Collection[R]{store: s, st: st, bucket: st.Name()}
}

func (c *Collection[R]) decode(key, raw []byte) (*R, error) {
	r, err := c.st.Decode(c.store.proto, raw)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", c.bucket, key, err)
	}
	return r, nil
}

// Put encodes r and stores it under key, replacing any previous record.
// Records that fail validation are rejected.
func (c *Collection[R]) Put(key []byte, r *R) error {
	raw, err := c.st.Marshal(c.store.proto, r)
	if err != nil {
		return err
	}
	err = c.store.tx(true, func(tx storageTx) error {
		b, err := tx.CreateBucket(c.bucket)
		if err != nil {
			return err
		}
		return b.Put(key, raw)
	})
	if err != nil {
		return err
	}
	c.store.logger.LogAttrs(context.Background(), slog.LevelDebug, "store: put", slog.String("bucket", c.bucket), slog.String("key", string(key)), slog.Int("size", len(raw)))
	return nil
}

// Get returns nil if there is no record under key.
func (c *Collection[R]) Get(key []byte) (*R, error) {
	var r *R
	err := c.store.tx(false, func(tx storageTx) error {
		b := tx.Bucket(c.bucket)
		if b == nil {
			return nil
		}
		raw := b.Get(key)
		if raw == nil {
			return nil
		}
		var err error
		r, err = c.decode(key, raw)
		return err
	})
	return r, err
}

// Delete reports whether a record was removed.
func (c *Collection[R]) Delete(key []byte) (bool, error) {
	var found bool
	err := c.store.tx(true, func(tx storageTx) error {
		b := tx.Bucket(c.bucket)
		if b == nil || b.Get(key) == nil {
			return nil
		}
		found = true
		return b.Delete(key)
	})
	if found && err == nil {
		c.store.logger.LogAttrs(context.Background(), slog.LevelDebug, "store: delete", slog.String("bucket", c.bucket), slog.String("key", string(key)))
	}
	return found, err
}

func (c *Collection[R]) Len() (int, error) {
	var n int
	err := c.store.tx(false, func(tx storageTx) error {
		if b := tx.Bucket(c.bucket); b != nil {
			n = b.KeyCount()
		}
		return nil
	})
	return n, err
}

// Scan calls f for every record whose key starts with prefix, in key order,
// until f returns false. The key slice is only valid during the call.
func (c *Collection[R]) Scan(prefix []byte, f func(key []byte, r *R) bool) error {
	return c.store.tx(false, func(tx storageTx) error {
		b := tx.Bucket(c.bucket)
		if b == nil {
			return nil
		}
		cur := b.Cursor()
		var k, v []byte
		if len(prefix) == 0 {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(prefix)
		}
		for ; k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			r, err := c.decode(k, v)
			if err != nil {
				return err
			}
			if !f(k, r) {
				break
			}
		}
		return nil
	})
}

// All returns every record in key order.
func (c *Collection[R]) All() ([]*R, error) {
	var out []*R
	err := c.Scan(nil, func(key []byte, r *R) bool {
		out = append(out, r)
		return true
	})
	return out, err
}

// Sorted returns every record ordered by the struct type's Compare.
func (c *Collection[R]) Sorted() ([]*R, error) {
	out, err := c.All()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(out, c.st.Compare)
	return out, nil
}
