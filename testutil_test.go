package tstruct

import (
	"encoding/hex"
	"reflect"
	"strings"
	"testing"
)

// sample exercises every kind and requiredness.
type sample struct {
	id    int64
	key   []byte
	flag  bool
	small int8
	short int16
	count int32
	ratio float64
	title string
	note  string
	tags  []string
	attrs map[string]int32
	child *child
	isset Presence
}

type child struct {
	name   string
	weight int32
	isset  Presence
}

var (
	sampleID    *Field[sample, int64]
	sampleKey   *Field[sample, []byte]
	sampleFlag  *Field[sample, bool]
	sampleSmall *Field[sample, int8]
	sampleShort *Field[sample, int16]
	sampleCount *Field[sample, int32]
	sampleRatio *Field[sample, float64]
	sampleTitle *Field[sample, string]
	sampleNote  *Field[sample, string]
	sampleTags  *Field[sample, []string]
	sampleAttrs *Field[sample, map[string]int32]
	sampleChild *Field[sample, *child]

	childName   *Field[child, string]
	childWeight *Field[child, int32]
)

var childType = NewStructType("Child", func(c *child) *Presence { return &c.isset }, func(b *StructBuilder[child]) {
	childName = AddField(b, 1, "name", FieldRequired, String, func(c *child) *string { return &c.name })
	childWeight = AddField(b, 2, "weight", FieldOptional, I32, func(c *child) *int32 { return &c.weight })
})

var sampleType = NewStructType("Sample", func(s *sample) *Presence { return &s.isset }, func(b *StructBuilder[sample]) {
	sampleID = AddField(b, 1, "id", FieldRequired, I64, func(s *sample) *int64 { return &s.id })
	sampleKey = AddField(b, 2, "key", FieldRequired, Bytes, func(s *sample) *[]byte { return &s.key })
	sampleFlag = AddField(b, 3, "flag", FieldDefault, Bool, func(s *sample) *bool { return &s.flag })
	sampleSmall = AddField(b, 4, "small", FieldOptional, Byte, func(s *sample) *int8 { return &s.small })
	sampleShort = AddField(b, 5, "short", FieldOptional, I16, func(s *sample) *int16 { return &s.short })
	sampleCount = AddFieldWithDefault(b, 6, "count", FieldDefault, I32, func(s *sample) *int32 { return &s.count }, 7)
	sampleRatio = AddField(b, 7, "ratio", FieldOptional, Double, func(s *sample) *float64 { return &s.ratio })
	sampleTitle = AddFieldWithDefault(b, 8, "title", FieldDefault, String, func(s *sample) *string { return &s.title }, "untitled")
	sampleNote = AddField(b, 9, "note", FieldOptional, String, func(s *sample) *string { return &s.note })
	sampleTags = AddField(b, 10, "tags", FieldOptional, ListOf(String), func(s *sample) *[]string { return &s.tags })
	sampleAttrs = AddField(b, 11, "attrs", FieldOptional, MapOf(String, I32), func(s *sample) *map[string]int32 { return &s.attrs })
	sampleChild = AddField(b, 12, "child", FieldOptional, StructCodec(childType), func(s *sample) **child { return &s.child })
})

func (s *sample) StructType() AnyStructType { return sampleType }
func (c *child) StructType() AnyStructType  { return childType }

// sampleV1 is an older revision of sample that only knows the first three
// fields.
type sampleV1 struct {
	id    int64
	key   []byte
	flag  bool
	isset Presence
}

var sampleV1Type = NewStructType("SampleV1", func(s *sampleV1) *Presence { return &s.isset }, func(b *StructBuilder[sampleV1]) {
	AddField(b, 1, "id", FieldRequired, I64, func(s *sampleV1) *int64 { return &s.id })
	AddField(b, 2, "key", FieldRequired, Bytes, func(s *sampleV1) *[]byte { return &s.key })
	AddField(b, 3, "flag", FieldDefault, Bool, func(s *sampleV1) *bool { return &s.flag })
})

// sampleAlt declares tag 6 with a different type than sample does.
type sampleAlt struct {
	id    int64
	count string
	isset Presence
}

var (
	altCount *Field[sampleAlt, string]
)

var sampleAltType = NewStructType("SampleAlt", func(s *sampleAlt) *Presence { return &s.isset }, func(b *StructBuilder[sampleAlt]) {
	AddField(b, 1, "id", FieldRequired, I64, func(s *sampleAlt) *int64 { return &s.id })
	altCount = AddField(b, 6, "count", FieldOptional, String, func(s *sampleAlt) *string { return &s.count })
})

func minimalSample(id int64, key string) *sample {
	s := sampleType.New()
	sampleID.Set(s, id)
	sampleKey.Set(s, []byte(key))
	return s
}

func fullSample() *sample {
	s := minimalSample(42, "k1")
	sampleFlag.Set(s, true)
	sampleSmall.Set(s, -3)
	sampleShort.Set(s, 1000)
	sampleCount.Set(s, 99)
	sampleRatio.Set(s, 0.25)
	sampleTitle.Set(s, "hello")
	sampleNote.Set(s, "")
	sampleTags.Set(s, []string{"a", "b"})
	sampleAttrs.Set(s, map[string]int32{"x": 1, "y": -2})
	c := childType.New()
	childName.Set(c, "kid")
	childWeight.Set(c, 5)
	sampleChild.Set(s, c)
	return s
}

var allProtocols = []Protocol{Binary, MsgPack}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ensure(err error) {
	if err != nil {
		panic(err)
	}
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func x(data string) []byte {
	data = strings.ReplaceAll(data, " ", "")
	return must(hex.DecodeString(data))
}

func expectPanic(t testing.TB, substr string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		e := recover()
		if e == nil {
			t.Errorf("** no panic, wanted one mentioning %q", substr)
			return
		}
		if msg := panicMessage(e); !strings.Contains(msg, substr) {
			t.Errorf("** panic %q, wanted one mentioning %q", msg, substr)
		}
	}()
	f()
}

func panicMessage(e any) string {
	if err, ok := e.(error); ok {
		return err.Error()
	}
	if s, ok := e.(string); ok {
		return s
	}
	return ""
}
