package tstruct

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// StructType binds a catalog to the Go record type R that stores it. Build
// one per record type at package initialization with NewStructType; it is
// immutable and safe for concurrent use afterwards.
type StructType[R any] struct {
	name     string
	catalog  *Catalog
	presence func(r *R) *Presence
	fields   []fieldImpl[R]
}

// AnyStructType is the type-erased side of StructType, used where records of
// different types meet (cross-type ordering, the registry).
type AnyStructType interface {
	Name() string
	Catalog() *Catalog
	compareAny(a, b Struct) int
}

// Struct is implemented by record types to expose their StructType.
type Struct interface {
	StructType() AnyStructType
}

type StructBuilder[R any] struct {
	st *StructType[R]
}

// NewStructType declares a struct type. presence returns the record's
// presence bitset and may be nil only if no field needs one. build declares
// the fields via AddField and AddFieldWithDefault. Panics on malformed
// declarations and on a name already registered.
func NewStructType[R any](name string, presence func(r *R) *Presence, build func(b *StructBuilder[R])) *StructType[R] {
	st := &StructType[R]{
		name:     name,
		catalog:  newCatalog(name),
		presence: presence,
	}
	build(&StructBuilder[R]{st})
	if st.catalog.tracked > 0 && presence == nil {
		panic(fmt.Errorf("%s: %d fields need presence tracking but no presence accessor given", name, st.catalog.tracked))
	}
	register(st)
	return st
}

// AddField declares a field without a default value; default construction
// leaves it at the zero value of T.
func AddField[R, T any](b *StructBuilder[R], tag int16, name string, req Requiredness, codec *Codec[T], slot func(r *R) *T) *Field[R, T] {
	var zero T
	return addField(b, tag, name, req, codec, slot, zero, false)
}

func AddFieldWithDefault[R, T any](b *StructBuilder[R], tag int16, name string, req Requiredness, codec *Codec[T], slot func(r *R) *T, def T) *Field[R, T] {
	return addField(b, tag, name, req, codec, slot, def, true)
}

func addField[R, T any](b *StructBuilder[R], tag int16, name string, req Requiredness, codec *Codec[T], slot func(r *R) *T, def T, hasDefault bool) *Field[R, T] {
	if codec == nil || slot == nil {
		panic(fmt.Errorf("%s.%s: codec and slot are required", b.st.name, name))
	}
	fd := b.st.catalog.add(tag, name, codec.kind, req, hasDefault)
	f := &Field[R, T]{
		fd:       fd,
		codec:    codec,
		slot:     slot,
		presence: b.st.presence,
		def:      def,
	}
	b.st.fields = append(b.st.fields, f)
	return f
}

func (st *StructType[R]) Name() string {
	return st.name
}

func (st *StructType[R]) Catalog() *Catalog {
	return st.catalog
}

func (st *StructType[R]) String() string {
	return st.name
}

func (st *StructType[R]) field(fd *FieldDescriptor) fieldImpl[R] {
	return st.fields[fd.Index]
}

// New returns a default-constructed record.
func (st *StructType[R]) New() *R {
	r := new(R)
	st.Reset(r)
	return r
}

// Reset default-constructs r in place: every field takes its declared
// default, presence bits are cleared except for string fields holding a
// declared default.
func (st *StructType[R]) Reset(r *R) {
	st.Clear(r)
	for _, fd := range st.catalog.fields {
		if fd.Tracked() && fd.Kind == KindString && fd.HasDefault {
			st.presence(r).MarkSet(fd.PresenceIndex)
		}
	}
}

// Clear sets every field to its declared default and clears all presence.
// Decoding starts from this state, so string fields missing from the stream
// stay absent.
func (st *StructType[R]) Clear(r *R) {
	if st.presence != nil {
		*st.presence(r) = NewPresence(st.catalog.tracked)
	}
	for _, f := range st.fields {
		f.reset(r)
	}
}

// Validate returns a *MissingRequiredFieldError for the first required field,
// in declaration order, that holds no value.
func (st *StructType[R]) Validate(r *R) error {
	for _, f := range st.fields {
		if fd := f.Descriptor(); fd.Required() && !f.isSet(r) {
			return st.missing(fd)
		}
	}
	return nil
}

func (st *StructType[R]) missing(fd *FieldDescriptor) error {
	return &MissingRequiredFieldError{Struct: st.name, Tag: fd.Tag, Name: fd.Name}
}

// Format renders r as Name(field:value, ...). Optional fields are omitted
// when absent; other absent reference fields print as null.
func (st *StructType[R]) Format(r *R) string {
	var buf strings.Builder
	st.format(&buf, r)
	return buf.String()
}

func (st *StructType[R]) format(buf *strings.Builder, r *R) {
	if r == nil {
		buf.WriteString("null")
		return
	}
	buf.WriteString(st.name)
	buf.WriteByte('(')
	first := true
	for _, f := range st.fields {
		fd := f.Descriptor()
		present := f.present(r)
		if !present && fd.Requiredness == FieldOptional {
			continue
		}
		if !first {
			buf.WriteString(", ")
		}
		first = false
		buf.WriteString(fd.Name)
		buf.WriteByte(':')
		if present {
			f.format(buf, r)
		} else {
			buf.WriteString("null")
		}
	}
	buf.WriteByte(')')
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]AnyStructType)
)

func register(st AnyStructType) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registry[st.Name()] != nil {
		panic(fmt.Errorf("struct type %s is already defined", st.Name()))
	}
	registry[st.Name()] = st
}

// LookupStructType finds a struct type by name.
func LookupStructType(name string) AnyStructType {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[name]
}

// StructTypeNames lists every defined struct type, sorted.
func StructTypeNames() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
