package tstruct

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
)

func TestBinaryWriterPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		write func(p ProtocolWriter) error
		hex   string
	}{
		{"bool true", func(p ProtocolWriter) error { return p.WriteBool(true) }, "01"},
		{"bool false", func(p ProtocolWriter) error { return p.WriteBool(false) }, "00"},
		{"i8", func(p ProtocolWriter) error { return p.WriteI8(-1) }, "ff"},
		{"i16", func(p ProtocolWriter) error { return p.WriteI16(0x0102) }, "0102"},
		{"i32", func(p ProtocolWriter) error { return p.WriteI32(-2) }, "fffffffe"},
		{"i64", func(p ProtocolWriter) error { return p.WriteI64(1) }, "00000000 00000001"},
		{"double", func(p ProtocolWriter) error { return p.WriteDouble(1.0) }, "3ff00000 00000000"},
		{"string", func(p ProtocolWriter) error { return p.WriteString("hi") }, "00000002 6869"},
		{"empty string", func(p ProtocolWriter) error { return p.WriteString("") }, "00000000"},
		{"binary", func(p ProtocolWriter) error { return p.WriteBinary([]byte{0, 0xff}) }, "00000002 00ff"},
		{"field", func(p ProtocolWriter) error { return p.WriteFieldBegin("x", TypeI32, 7) }, "08 0007"},
		{"stop", func(p ProtocolWriter) error { return p.WriteFieldStop() }, "00"},
		{"list", func(p ProtocolWriter) error { return p.WriteListBegin(TypeString, 3) }, "0b 00000003"},
		{"set", func(p ProtocolWriter) error { return p.WriteSetBegin(TypeI64, 1) }, "0a 00000001"},
		{"map", func(p ProtocolWriter) error { return p.WriteMapBegin(TypeString, TypeI32, 2) }, "0b 08 00000002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(NewBinaryWriter(&buf)); err != nil {
				t.Fatal(err)
			}
			deepEqual(t, buf.Bytes(), x(tt.hex))
		})
	}
}

func TestBinaryLayout(t *testing.T) {
	c := childType.New()
	childName.Set(c, "ab")
	deepEqual(t, must(childType.Marshal(Binary, c)), x("0b 0001 00000002 6162 00"))

	childWeight.Set(c, 5)
	deepEqual(t, must(childType.Marshal(Binary, c)), x("0b 0001 00000002 6162 08 0002 00000005 00"))
}

func TestBinaryReaderPrimitives(t *testing.T) {
	br := NewBinaryReader(bytes.NewReader(x("01 ff 0102 fffffffe 3ff0000000000000 00000002 6869")), BinaryOptions{})
	deepEqual(t, must(br.ReadBool()), true)
	deepEqual(t, must(br.ReadI8()), int8(-1))
	deepEqual(t, must(br.ReadI16()), int16(0x0102))
	deepEqual(t, must(br.ReadI32()), int32(-2))
	deepEqual(t, must(br.ReadDouble()), 1.0)
	deepEqual(t, must(br.ReadString()), "hi")
	deepEqual(t, br.Offset(), int64(22))

	_, err := br.ReadI8()
	if !errors.Is(err, io.EOF) || !errors.Is(err, ErrMalformedStream) {
		t.Errorf("** ReadI8 at end = %v, wanted malformed io.EOF", err)
	}
}

func TestBinaryReaderDoubleSpecials(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBinaryWriter(&buf)
	bw.WriteDouble(math.Inf(-1))
	bw.WriteDouble(math.NaN())
	br := NewBinaryReader(&buf, BinaryOptions{})
	deepEqual(t, must(br.ReadDouble()), math.Inf(-1))
	if v := must(br.ReadDouble()); !math.IsNaN(v) {
		t.Errorf("** got %v, wanted NaN", v)
	}
}

func TestBinaryReaderTruncation(t *testing.T) {
	tests := []struct {
		hex   string
		off   int64
		cause error
	}{
		{"", 0, io.EOF},
		{"0b", 1, io.EOF},
		{"0b 00", 2, io.ErrUnexpectedEOF},
		{"0b 0001 0000", 5, io.ErrUnexpectedEOF},
		{"0b 0001 00000002 61", 8, io.ErrUnexpectedEOF},
		{"0b 0001 00000002 6162", 9, io.EOF},
	}
	for _, tt := range tests {
		var c child
		err := childType.Read(NewBinaryReader(bytes.NewReader(x(tt.hex)), BinaryOptions{}), &c)
		var mse *MalformedStreamError
		if !errors.As(err, &mse) {
			t.Errorf("** %q: got %v, wanted *MalformedStreamError", tt.hex, err)
			continue
		}
		if mse.Off != tt.off {
			t.Errorf("** %q: Off = %d, wanted %d", tt.hex, mse.Off, tt.off)
		}
		if !errors.Is(err, tt.cause) {
			t.Errorf("** %q: got %v, wanted cause %v", tt.hex, err, tt.cause)
		}
	}
}

func TestBinaryReaderLimits(t *testing.T) {
	data := x("0b 0001 00000002 6162 00")
	var c child
	err := childType.Read(NewBinaryReader(bytes.NewReader(data), BinaryOptions{StringLengthLimit: 1}), &c)
	if !errors.Is(err, ErrMalformedStream) || !strings.Contains(err.Error(), "string length 2 exceeds limit 1") {
		t.Errorf("** got %v, wanted string limit error", err)
	}

	br := NewBinaryReader(bytes.NewReader(x("0b 00000003")), BinaryOptions{ContainerLengthLimit: 2})
	_, _, err = br.ReadListBegin()
	if !errors.Is(err, ErrMalformedStream) || !strings.Contains(err.Error(), "container length 3 exceeds limit 2") {
		t.Errorf("** got %v, wanted container limit error", err)
	}

	br = NewBinaryReader(bytes.NewReader(x("ffffffff")), BinaryOptions{})
	_, err = br.ReadBinary()
	deepEqual(t, err.Error(), "malformed stream at offset 4: negative string length -1")
}
