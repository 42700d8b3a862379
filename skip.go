package tstruct

// maxSkipDepth bounds how deeply nested aggregates a skip will follow.
const maxSkipDepth = 64

// Skip consumes and discards one value of wire type typ, recursing through
// structs, lists, sets and maps.
func Skip(p ProtocolReader, typ WireType) error {
	return skip(p, typ, maxSkipDepth)
}

func skip(p ProtocolReader, typ WireType, depth int) error {
	if depth <= 0 {
		return malformedf(offsetOf(p), nil, "nesting deeper than %d levels", maxSkipDepth)
	}
	var err error
	switch typ {
	case TypeBool:
		_, err = p.ReadBool()
	case TypeByte:
		_, err = p.ReadI8()
	case TypeI16:
		_, err = p.ReadI16()
	case TypeI32:
		_, err = p.ReadI32()
	case TypeI64:
		_, err = p.ReadI64()
	case TypeDouble:
		_, err = p.ReadDouble()
	case TypeString:
		_, err = p.ReadBinary()
	case TypeStruct:
		err = skipStruct(p, depth)
	case TypeMap:
		var kt, vt WireType
		var n int
		kt, vt, n, err = p.ReadMapBegin()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := skip(p, kt, depth-1); err != nil {
				return err
			}
			if err := skip(p, vt, depth-1); err != nil {
				return err
			}
		}
		err = p.ReadMapEnd()
	case TypeSet:
		var et WireType
		var n int
		et, n, err = p.ReadSetBegin()
		if err != nil {
			return err
		}
		if err := skipElems(p, et, n, depth); err != nil {
			return err
		}
		err = p.ReadSetEnd()
	case TypeList:
		var et WireType
		var n int
		et, n, err = p.ReadListBegin()
		if err != nil {
			return err
		}
		if err := skipElems(p, et, n, depth); err != nil {
			return err
		}
		err = p.ReadListEnd()
	default:
		return malformedf(offsetOf(p), nil, "unknown type code %d", byte(typ))
	}
	return err
}

func skipElems(p ProtocolReader, et WireType, n, depth int) error {
	for i := 0; i < n; i++ {
		if err := skip(p, et, depth-1); err != nil {
			return err
		}
	}
	return nil
}

func skipStruct(p ProtocolReader, depth int) error {
	if err := p.ReadStructBegin(); err != nil {
		return err
	}
	for {
		typ, _, err := p.ReadFieldBegin()
		if err != nil {
			return err
		}
		if typ == TypeStop {
			break
		}
		if err := skip(p, typ, depth-1); err != nil {
			return err
		}
		if err := p.ReadFieldEnd(); err != nil {
			return err
		}
	}
	return p.ReadStructEnd()
}

// offsetOf returns the reader's byte offset, or -1 if it doesn't track one.
func offsetOf(p ProtocolReader) int64 {
	if o, ok := p.(interface{ Offset() int64 }); ok {
		return o.Offset()
	}
	return -1
}
