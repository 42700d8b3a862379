package tstruct

import (
	"reflect"
	"testing"
)

func TestBytesBuilder_Basics(t *testing.T) {
	var bb bytesBuilder
	_, _ = bb.Write([]byte{1, 2})
	_ = bb.WriteByte(3)
	_, _ = bb.WriteString("ab")
	if !reflect.DeepEqual(bb.Buf, []byte{1, 2, 3, 'a', 'b'}) {
		t.Fatalf("bb.Buf = %x, wanted 0102036162", bb.Buf)
	}
	if cap(bb.Buf) < 16 {
		t.Fatalf("cap(bb.Buf) = %d, wanted >= 16", cap(bb.Buf))
	}
}

func TestByteUtil_AppendHelpers(t *testing.T) {
	buf := appendUint8(nil, 0xAA)
	buf = appendUint16(buf, 0x0102)
	buf = appendUint32(buf, 0x03040506)
	buf = appendUint64(buf, 0x0708090a0b0c0d0e)
	want := []byte{0xAA, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	if !reflect.DeepEqual(buf, want) {
		t.Fatalf("buf = %x, wanted %x", buf, want)
	}
}

func TestByteUtil_EnsureCapacityKeepsContents(t *testing.T) {
	buf := make([]byte, 3, 4)
	copy(buf, "xyz")
	grown := ensureCapacity(buf, 100)
	if cap(grown) < 100 || string(grown) != "xyz" {
		t.Fatalf("ensureCapacity = (%q, cap=%d), wanted (\"xyz\", cap>=100)", grown, cap(grown))
	}
	same := ensureCapacity(buf, 4)
	if &same[0] != &buf[0] {
		t.Fatalf("ensureCapacity reallocated a buffer with enough capacity")
	}
}
