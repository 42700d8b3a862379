package tstruct

import (
	"fmt"
	"io"
)

// ProtocolWriter is the byte sink a struct is encoded into. A struct is framed
// as StructBegin, Field*, FieldStop, StructEnd.
type ProtocolWriter interface {
	WriteStructBegin(name string) error
	WriteStructEnd() error
	WriteFieldBegin(name string, typ WireType, tag int16) error
	WriteFieldEnd() error
	WriteFieldStop() error
	WriteListBegin(elem WireType, size int) error
	WriteListEnd() error
	WriteSetBegin(elem WireType, size int) error
	WriteSetEnd() error
	WriteMapBegin(key, value WireType, size int) error
	WriteMapEnd() error
	WriteBool(v bool) error
	WriteI8(v int8) error
	WriteI16(v int16) error
	WriteI32(v int32) error
	WriteI64(v int64) error
	WriteDouble(v float64) error
	WriteString(v string) error
	WriteBinary(v []byte) error
	Flush() error
}

// ProtocolReader is the byte source a struct is decoded from. ReadFieldBegin
// returns TypeStop at the end of a struct.
type ProtocolReader interface {
	ReadStructBegin() error
	ReadStructEnd() error
	ReadFieldBegin() (typ WireType, tag int16, err error)
	ReadFieldEnd() error
	ReadListBegin() (elem WireType, size int, err error)
	ReadListEnd() error
	ReadSetBegin() (elem WireType, size int, err error)
	ReadSetEnd() error
	ReadMapBegin() (key, value WireType, size int, err error)
	ReadMapEnd() error
	ReadBool() (bool, error)
	ReadI8() (int8, error)
	ReadI16() (int16, error)
	ReadI32() (int32, error)
	ReadI64() (int64, error)
	ReadDouble() (float64, error)
	ReadString() (string, error)
	ReadBinary() ([]byte, error)
}

// Protocol selects one of the built-in wire protocols.
type Protocol int

const (
	Binary Protocol = iota
	MsgPack

	DefaultProtocol = Binary
)

func (p Protocol) String() string {
	switch p {
	case Binary:
		return "binary"
	case MsgPack:
		return "msgpack"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

// ParseProtocol maps a protocol name (as printed by String) to a Protocol.
func ParseProtocol(s string) (Protocol, error) {
	switch s {
	case "binary", "":
		return Binary, nil
	case "msgpack":
		return MsgPack, nil
	default:
		return 0, fmt.Errorf("unknown protocol %q", s)
	}
}

func (p Protocol) NewWriter(w io.Writer) ProtocolWriter {
	switch p {
	case Binary:
		return NewBinaryWriter(w)
	case MsgPack:
		return NewMsgPackWriter(w)
	default:
		panic("unsupported protocol")
	}
}

func (p Protocol) NewReader(r io.Reader) ProtocolReader {
	switch p {
	case Binary:
		return NewBinaryReader(r, BinaryOptions{})
	case MsgPack:
		return NewMsgPackReader(r)
	default:
		panic("unsupported protocol")
	}
}
