package tstruct

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b agree on every field: the same fields are
// present, and present fields hold equal values. Byte fields compare by
// content.
func (st *StructType[R]) Equal(a, b *R) bool {
	if a == nil || b == nil {
		return a == b
	}
	for _, f := range st.fields {
		if f.compare(a, b) != 0 {
			return false
		}
	}
	return true
}

// Compare orders records field by field in declaration order. An absent field
// sorts before a present one; present values use their natural order. A nil
// record sorts first. Compare returns 0 exactly when Equal is true.
func (st *StructType[R]) Compare(a, b *R) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	for _, f := range st.fields {
		if c := f.compare(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// Hash returns a 64-bit xxhash of the fields' presence and values, consistent
// with Equal.
func (st *StructType[R]) Hash(r *R) uint64 {
	h := xxhash.New()
	st.hashInto(h, r)
	return h.Sum64()
}

func (st *StructType[R]) hashInto(h *xxhash.Digest, r *R) {
	if r == nil {
		hashByte(h, 0)
		return
	}
	hashByte(h, 1)
	for _, f := range st.fields {
		f.hash(h, r)
	}
}

// DeepCopy returns an independent copy of r: byte, list, map and nested struct
// storage is cloned, as is the presence bitset.
func (st *StructType[R]) DeepCopy(r *R) *R {
	if r == nil {
		return nil
	}
	out := new(R)
	*out = *r
	if st.presence != nil {
		*st.presence(out) = st.presence(r).Clone()
	}
	for _, f := range st.fields {
		f.copy(out, r)
	}
	return out
}

func (st *StructType[R]) compareAny(a, b Struct) int {
	return st.Compare(any(a).(*R), any(b).(*R))
}

// Compare orders records of any struct types: by struct type name first, then
// field by field.
func Compare(a, b Struct) int {
	at, bt := a.StructType(), b.StructType()
	if at != bt {
		return strings.Compare(at.Name(), bt.Name())
	}
	return at.compareAny(a, b)
}

func Equal(a, b Struct) bool {
	return Compare(a, b) == 0
}

// StructCodec lets a record type be used as a nested STRUCT value (directly,
// or as a list element or map value). A nil pointer is absent.
func StructCodec[S any](st *StructType[S]) *Codec[*S] {
	return &Codec[*S]{
		kind: KindStruct,
		read: st.ReadNew,
		write: func(p ProtocolWriter, s *S) error {
			if s == nil {
				return fmt.Errorf("%s: cannot write a nil struct", st.name)
			}
			return st.Write(p, s)
		},
		compare: st.Compare,
		hash:    st.hashInto,
		clone:   st.DeepCopy,
		isNil:   func(s *S) bool { return s == nil },
		format:  st.format,
	}
}
