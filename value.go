package tstruct

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Codec bundles everything the struct machinery needs to know about one Go
// value type: how it travels over the wire, how it orders, hashes, clones and
// prints, and (for nilable kinds) how to tell that it is absent.
type Codec[T any] struct {
	kind    Kind
	read    func(p ProtocolReader) (T, error)
	write   func(p ProtocolWriter, v T) error
	compare func(a, b T) int
	hash    func(h *xxhash.Digest, v T)
	clone   func(v T) T
	isNil   func(v T) bool
	format  func(buf *strings.Builder, v T)
}

func (c *Codec[T]) Kind() Kind { return c.kind }

func (c *Codec[T]) WireType() WireType { return c.kind.WireType() }

func (c *Codec[T]) Read(p ProtocolReader) (T, error) { return c.read(p) }

func (c *Codec[T]) Write(p ProtocolWriter, v T) error { return c.write(p, v) }

func (c *Codec[T]) Compare(a, b T) int { return c.compare(a, b) }

func (c *Codec[T]) Clone(v T) T {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}

func (c *Codec[T]) nilValue(v T) bool {
	return c.isNil != nil && c.isNil(v)
}

func hashByte(h *xxhash.Digest, v byte) {
	var b [1]byte
	b[0] = v
	h.Write(b[:])
}

func hashUint64(h *xxhash.Digest, v uint64) {
	var b [8]byte
	h.Write(appendUint64(b[:0], v))
}

func hashBool(h *xxhash.Digest, v bool) {
	if v {
		hashByte(h, 1)
	} else {
		hashByte(h, 0)
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

var (
	Bool = &Codec[bool]{
		kind:    KindBool,
		read:    ProtocolReader.ReadBool,
		write:   ProtocolWriter.WriteBool,
		compare: compareBool,
		hash:    hashBool,
		format: func(buf *strings.Builder, v bool) {
			buf.WriteString(strconv.FormatBool(v))
		},
	}

	Byte = &Codec[int8]{
		kind:    KindByte,
		read:    ProtocolReader.ReadI8,
		write:   ProtocolWriter.WriteI8,
		compare: cmp.Compare[int8],
		hash:    func(h *xxhash.Digest, v int8) { hashByte(h, byte(v)) },
		format:  formatInt[int8],
	}

	I16 = &Codec[int16]{
		kind:    KindI16,
		read:    ProtocolReader.ReadI16,
		write:   ProtocolWriter.WriteI16,
		compare: cmp.Compare[int16],
		hash:    func(h *xxhash.Digest, v int16) { hashUint64(h, uint64(v)) },
		format:  formatInt[int16],
	}

	I32 = &Codec[int32]{
		kind:    KindI32,
		read:    ProtocolReader.ReadI32,
		write:   ProtocolWriter.WriteI32,
		compare: cmp.Compare[int32],
		hash:    func(h *xxhash.Digest, v int32) { hashUint64(h, uint64(v)) },
		format:  formatInt[int32],
	}

	I64 = &Codec[int64]{
		kind:    KindI64,
		read:    ProtocolReader.ReadI64,
		write:   ProtocolWriter.WriteI64,
		compare: cmp.Compare[int64],
		hash:    func(h *xxhash.Digest, v int64) { hashUint64(h, uint64(v)) },
		format:  formatInt[int64],
	}

	// Double orders NaN before every other value and equal to itself, and
	// hashes all NaNs alike, so that equality, ordering and hashing agree.
	Double = &Codec[float64]{
		kind:    KindDouble,
		read:    ProtocolReader.ReadDouble,
		write:   ProtocolWriter.WriteDouble,
		compare: cmp.Compare[float64],
		hash: func(h *xxhash.Digest, v float64) {
			switch {
			case math.IsNaN(v):
				v = math.NaN()
			case v == 0:
				v = 0
			}
			hashUint64(h, math.Float64bits(v))
		},
		format: func(buf *strings.Builder, v float64) {
			buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		},
	}

	String = &Codec[string]{
		kind:    KindString,
		read:    ProtocolReader.ReadString,
		write:   ProtocolWriter.WriteString,
		compare: strings.Compare,
		hash: func(h *xxhash.Digest, v string) {
			hashUint64(h, uint64(len(v)))
			h.WriteString(v)
		},
		format: func(buf *strings.Builder, v string) {
			buf.WriteString(strconv.Quote(v))
		},
	}

	// Bytes holds binary values; a nil slice means the field is unset.
	Bytes = &Codec[[]byte]{
		kind:    KindBytes,
		read:    ProtocolReader.ReadBinary,
		write:   ProtocolWriter.WriteBinary,
		compare: bytes.Compare,
		hash: func(h *xxhash.Digest, v []byte) {
			hashUint64(h, uint64(len(v)))
			h.Write(v)
		},
		clone: bytes.Clone,
		isNil: func(v []byte) bool { return v == nil },
		format: func(buf *strings.Builder, v []byte) {
			fmt.Fprintf(buf, "%q", v)
		},
	}
)

func formatInt[T int8 | int16 | int32 | int64](buf *strings.Builder, v T) {
	buf.WriteString(strconv.FormatInt(int64(v), 10))
}

// ListOf returns a codec for lists of elem. A nil slice means unset; lists
// order by length first, then element by element.
func ListOf[E any](elem *Codec[E]) *Codec[[]E] {
	return &Codec[[]E]{
		kind: KindList,
		read: func(p ProtocolReader) ([]E, error) {
			et, n, err := p.ReadListBegin()
			if err != nil {
				return nil, err
			}
			if n > 0 && et != elem.WireType() {
				return nil, malformedf(-1, nil, "list element type %v, wanted %v", et, elem.WireType())
			}
			out := make([]E, 0, min(n, 64))
			for i := 0; i < n; i++ {
				v, err := elem.read(p)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, p.ReadListEnd()
		},
		write: func(p ProtocolWriter, v []E) error {
			if err := p.WriteListBegin(elem.WireType(), len(v)); err != nil {
				return err
			}
			for _, e := range v {
				if err := elem.write(p, e); err != nil {
					return err
				}
			}
			return p.WriteListEnd()
		},
		compare: func(a, b []E) int {
			if c := cmp.Compare(len(a), len(b)); c != 0 {
				return c
			}
			for i := range a {
				if c := elem.compare(a[i], b[i]); c != 0 {
					return c
				}
			}
			return 0
		},
		hash: func(h *xxhash.Digest, v []E) {
			hashUint64(h, uint64(len(v)))
			for _, e := range v {
				elem.hash(h, e)
			}
		},
		clone: func(v []E) []E {
			if v == nil {
				return nil
			}
			out := make([]E, len(v))
			for i, e := range v {
				out[i] = elem.Clone(e)
			}
			return out
		},
		isNil: func(v []E) bool { return v == nil },
		format: func(buf *strings.Builder, v []E) {
			buf.WriteByte('[')
			for i, e := range v {
				if i > 0 {
					buf.WriteString(", ")
				}
				elem.format(buf, e)
			}
			buf.WriteByte(']')
		},
	}
}

// MapOf returns a codec for maps. Maps order by size first, then entry by
// entry in ascending key order; hashing visits entries in the same order.
func MapOf[K comparable, V any](key *Codec[K], value *Codec[V]) *Codec[map[K]V] {
	sortedKeys := func(m map[K]V) []K {
		keys := make([]K, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, key.compare)
		return keys
	}
	return &Codec[map[K]V]{
		kind: KindMap,
		read: func(p ProtocolReader) (map[K]V, error) {
			kt, vt, n, err := p.ReadMapBegin()
			if err != nil {
				return nil, err
			}
			if n > 0 && (kt != key.WireType() || vt != value.WireType()) {
				return nil, malformedf(-1, nil, "map entry types %v/%v, wanted %v/%v", kt, vt, key.WireType(), value.WireType())
			}
			out := make(map[K]V, min(n, 64))
			for i := 0; i < n; i++ {
				k, err := key.read(p)
				if err != nil {
					return nil, err
				}
				v, err := value.read(p)
				if err != nil {
					return nil, err
				}
				out[k] = v
			}
			return out, p.ReadMapEnd()
		},
		write: func(p ProtocolWriter, m map[K]V) error {
			if err := p.WriteMapBegin(key.WireType(), value.WireType(), len(m)); err != nil {
				return err
			}
			for _, k := range sortedKeys(m) {
				if err := key.write(p, k); err != nil {
					return err
				}
				if err := value.write(p, m[k]); err != nil {
					return err
				}
			}
			return p.WriteMapEnd()
		},
		compare: func(a, b map[K]V) int {
			if c := cmp.Compare(len(a), len(b)); c != 0 {
				return c
			}
			ak, bk := sortedKeys(a), sortedKeys(b)
			for i := range ak {
				if c := key.compare(ak[i], bk[i]); c != 0 {
					return c
				}
				if c := value.compare(a[ak[i]], b[bk[i]]); c != 0 {
					return c
				}
			}
			return 0
		},
		hash: func(h *xxhash.Digest, m map[K]V) {
			hashUint64(h, uint64(len(m)))
			for _, k := range sortedKeys(m) {
				key.hash(h, k)
				value.hash(h, m[k])
			}
		},
		clone: func(m map[K]V) map[K]V {
			if m == nil {
				return nil
			}
			out := make(map[K]V, len(m))
			for k, v := range m {
				out[key.Clone(k)] = value.Clone(v)
			}
			return out
		},
		isNil: func(m map[K]V) bool { return m == nil },
		format: func(buf *strings.Builder, m map[K]V) {
			buf.WriteByte('{')
			for i, k := range sortedKeys(m) {
				if i > 0 {
					buf.WriteString(", ")
				}
				key.format(buf, k)
				buf.WriteString(": ")
				value.format(buf, m[k])
			}
			buf.WriteByte('}')
		},
	}
}
