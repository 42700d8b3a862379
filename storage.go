package tstruct

// storage is the sorted key-value backend a Store keeps encoded records in.
type storage interface {
	BeginTx(writable bool) (storageTx, error)
	Close() error
}

type storageTx interface {
	// Bucket returns nil if the bucket doesn't exist.
	Bucket(name string) storageBucket

	// CreateBucket creates a bucket if it doesn't exist.
	CreateBucket(name string) (storageBucket, error)

	Commit() error

	// Rollback aborts the transaction. It is safe to call after Commit.
	Rollback() error
}

// storageBucket is a sorted key-value collection. Returned slices are only
// valid until the transaction ends.
type storageBucket interface {
	// Get returns nil if the key is not found.
	Get(key []byte) []byte
	Put(key, value []byte) error
	Delete(key []byte) error
	Cursor() storageCursor
	KeyCount() int
}

// storageCursor iterates over a bucket in key order. A nil key means the
// cursor ran off the end.
type storageCursor interface {
	First() (key, value []byte)
	// Seek moves to the first key >= seek.
	Seek(seek []byte) (key, value []byte)
	Next() (key, value []byte)
}
