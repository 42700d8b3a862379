package tstruct

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// fieldImpl is the type-erased view of a Field that the struct machinery
// iterates over. Implemented only by *Field[R, T].
type fieldImpl[R any] interface {
	Descriptor() *FieldDescriptor
	present(r *R) bool
	reset(r *R)
	unset(r *R)
	isSet(r *R) bool
	getAny(r *R) any
	setAny(r *R, v any) bool
	write(p ProtocolWriter, r *R) error
	read(p ProtocolReader, r *R) error
	compare(a, b *R) int
	hash(h *xxhash.Digest, r *R)
	copy(dst, src *R)
	format(buf *strings.Builder, r *R)
}

// Field is the typed handle of one declared field. Record types use it to
// implement their accessors:
//
//	func (cd *ColumnDescriptor) MaxVersions() int32 { return cdMaxVersions.Get(cd) }
type Field[R, T any] struct {
	fd       *FieldDescriptor
	codec    *Codec[T]
	slot     func(r *R) *T
	presence func(r *R) *Presence
	def      T
}

var _ fieldImpl[struct{}] = (*Field[struct{}, int32])(nil)

func (f *Field[R, T]) Descriptor() *FieldDescriptor {
	return f.fd
}

func (f *Field[R, T]) Get(r *R) T {
	return *f.slot(r)
}

// Set assigns v and marks the field present. Assigning nil to a nilable
// field unsets it.
func (f *Field[R, T]) Set(r *R, v T) {
	*f.slot(r) = v
	if f.fd.Tracked() {
		f.presence(r).MarkSet(f.fd.PresenceIndex)
	}
}

// IsSet reports explicit presence: non-nil for nilable kinds, the presence
// bit for tracked kinds, always true for required value kinds.
func (f *Field[R, T]) IsSet(r *R) bool {
	return f.isSet(r)
}

// Unset makes the field absent. Nilable fields become nil; tracked fields
// lose their presence bit but keep their value; required value fields revert
// to their default.
func (f *Field[R, T]) Unset(r *R) {
	f.unset(r)
}

func (f *Field[R, T]) Default() T {
	return f.codec.Clone(f.def)
}

func (f *Field[R, T]) isSet(r *R) bool {
	switch {
	case f.fd.Kind.Nilable():
		return !f.codec.nilValue(*f.slot(r))
	case f.fd.Tracked():
		return f.presence(r).IsSet(f.fd.PresenceIndex)
	default:
		return true
	}
}

func (f *Field[R, T]) unset(r *R) {
	switch {
	case f.fd.Kind.Nilable():
		var zero T
		*f.slot(r) = zero
	case f.fd.Tracked():
		f.presence(r).MarkUnset(f.fd.PresenceIndex)
	default:
		*f.slot(r) = f.Default()
	}
}

// present is the presence used for encoding and value semantics. Default
// non-string value fields count as present whatever their bit says; they are
// always written.
func (f *Field[R, T]) present(r *R) bool {
	fd := f.fd
	switch {
	case fd.Kind.Nilable():
		return !f.codec.nilValue(*f.slot(r))
	case fd.Requiredness == FieldRequired:
		return true
	case fd.Kind == KindString, fd.Requiredness == FieldOptional:
		return f.presence(r).IsSet(fd.PresenceIndex)
	default:
		return true
	}
}

func (f *Field[R, T]) reset(r *R) {
	*f.slot(r) = f.Default()
}

func (f *Field[R, T]) getAny(r *R) any {
	v := *f.slot(r)
	if f.codec.nilValue(v) {
		return nil
	}
	return v
}

func (f *Field[R, T]) setAny(r *R, v any) bool {
	if v == nil {
		f.unset(r)
		return true
	}
	tv, ok := v.(T)
	if !ok {
		return false
	}
	f.Set(r, tv)
	return true
}

func (f *Field[R, T]) write(p ProtocolWriter, r *R) error {
	return f.codec.write(p, *f.slot(r))
}

func (f *Field[R, T]) read(p ProtocolReader, r *R) error {
	v, err := f.codec.read(p)
	if err != nil {
		return err
	}
	f.Set(r, v)
	return nil
}

func (f *Field[R, T]) compare(a, b *R) int {
	pa, pb := f.present(a), f.present(b)
	switch {
	case pa && pb:
		return f.codec.compare(*f.slot(a), *f.slot(b))
	case pa:
		return 1
	case pb:
		return -1
	default:
		return 0
	}
}

func (f *Field[R, T]) hash(h *xxhash.Digest, r *R) {
	p := f.present(r)
	hashBool(h, p)
	if p {
		f.codec.hash(h, *f.slot(r))
	}
}

func (f *Field[R, T]) copy(dst, src *R) {
	*f.slot(dst) = f.codec.Clone(*f.slot(src))
}

func (f *Field[R, T]) format(buf *strings.Builder, r *R) {
	v := *f.slot(r)
	if f.codec.nilValue(v) {
		buf.WriteString("null")
		return
	}
	f.codec.format(buf, v)
}
