package tstruct

import "strconv"

// WireType is the one-byte type code that precedes every field and container
// element on the wire.
type WireType byte

const (
	TypeStop   WireType = 0
	TypeBool   WireType = 2
	TypeByte   WireType = 3
	TypeDouble WireType = 4
	TypeI16    WireType = 6
	TypeI32    WireType = 8
	TypeI64    WireType = 10
	TypeString WireType = 11
	TypeStruct WireType = 12
	TypeMap    WireType = 13
	TypeSet    WireType = 14
	TypeList   WireType = 15
)

func (t WireType) String() string {
	switch t {
	case TypeStop:
		return "STOP"
	case TypeBool:
		return "BOOL"
	case TypeByte:
		return "BYTE"
	case TypeDouble:
		return "DOUBLE"
	case TypeI16:
		return "I16"
	case TypeI32:
		return "I32"
	case TypeI64:
		return "I64"
	case TypeString:
		return "STRING"
	case TypeStruct:
		return "STRUCT"
	case TypeMap:
		return "MAP"
	case TypeSet:
		return "SET"
	case TypeList:
		return "LIST"
	default:
		return "WireType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Valid reports whether t is a value type code (STOP is not a value).
func (t WireType) Valid() bool {
	switch t {
	case TypeBool, TypeByte, TypeDouble, TypeI16, TypeI32, TypeI64, TypeString, TypeStruct, TypeMap, TypeSet, TypeList:
		return true
	default:
		return false
	}
}

// Kind is the declared type of a field. Several kinds can share a wire type
// (BYTES and STRING are both length-prefixed on the wire).
type Kind byte

const (
	KindBool Kind = iota + 1
	KindByte
	KindI16
	KindI32
	KindI64
	KindDouble
	KindString
	KindBytes
	KindStruct
	KindList
	KindMap
)

var kindNames = [...]string{
	KindBool:   "BOOL",
	KindByte:   "BYTE",
	KindI16:    "I16",
	KindI32:    "I32",
	KindI64:    "I64",
	KindDouble: "DOUBLE",
	KindString: "STRING",
	KindBytes:  "BYTES",
	KindStruct: "STRUCT",
	KindList:   "LIST",
	KindMap:    "MAP",
}

var kindWireTypes = [...]WireType{
	KindBool:   TypeBool,
	KindByte:   TypeByte,
	KindI16:    TypeI16,
	KindI32:    TypeI32,
	KindI64:    TypeI64,
	KindDouble: TypeDouble,
	KindString: TypeString,
	KindBytes:  TypeString,
	KindStruct: TypeStruct,
	KindList:   TypeList,
	KindMap:    TypeMap,
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) WireType() WireType {
	if k > 0 && int(k) < len(kindWireTypes) {
		return kindWireTypes[k]
	}
	panic("invalid kind " + k.String())
}

// Nilable kinds track presence through a nil value rather than a presence bit.
func (k Kind) Nilable() bool {
	switch k {
	case KindBytes, KindStruct, KindList, KindMap:
		return true
	default:
		return false
	}
}

// Reference kinds are only written when present, whatever their requiredness.
func (k Kind) Reference() bool {
	return k == KindString || k.Nilable()
}
