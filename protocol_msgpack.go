package tstruct

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackWriter expresses the struct framing as a sequence of msgpack values:
// a field header is a uint8 type followed by an int16 tag, the stop marker is
// a uint8 zero, lists and sets are a uint8 element type plus an array header,
// maps are two uint8 types plus a map header.
type MsgPackWriter struct {
	enc *msgpack.Encoder
	w   io.Writer
}

var _ ProtocolWriter = (*MsgPackWriter)(nil)

func NewMsgPackWriter(w io.Writer) *MsgPackWriter {
	return &MsgPackWriter{enc: msgpack.NewEncoder(w), w: w}
}

func newPooledMsgPackWriter(w io.Writer) *MsgPackWriter {
	enc := msgpack.GetEncoder()
	enc.Reset(w)
	return &MsgPackWriter{enc: enc, w: w}
}

func (mw *MsgPackWriter) release() {
	msgpack.PutEncoder(mw.enc)
	mw.enc = nil
}

func (mw *MsgPackWriter) WriteStructBegin(name string) error { return nil }
func (mw *MsgPackWriter) WriteStructEnd() error              { return nil }
func (mw *MsgPackWriter) WriteFieldEnd() error               { return nil }
func (mw *MsgPackWriter) WriteListEnd() error                { return nil }
func (mw *MsgPackWriter) WriteSetEnd() error                 { return nil }
func (mw *MsgPackWriter) WriteMapEnd() error                 { return nil }

func (mw *MsgPackWriter) WriteFieldBegin(name string, typ WireType, tag int16) error {
	if err := mw.enc.EncodeUint8(uint8(typ)); err != nil {
		return err
	}
	return mw.enc.EncodeInt16(tag)
}

func (mw *MsgPackWriter) WriteFieldStop() error {
	return mw.enc.EncodeUint8(uint8(TypeStop))
}

func (mw *MsgPackWriter) WriteListBegin(elem WireType, size int) error {
	if err := mw.enc.EncodeUint8(uint8(elem)); err != nil {
		return err
	}
	return mw.enc.EncodeArrayLen(size)
}

func (mw *MsgPackWriter) WriteSetBegin(elem WireType, size int) error {
	return mw.WriteListBegin(elem, size)
}

func (mw *MsgPackWriter) WriteMapBegin(key, value WireType, size int) error {
	if err := mw.enc.EncodeUint8(uint8(key)); err != nil {
		return err
	}
	if err := mw.enc.EncodeUint8(uint8(value)); err != nil {
		return err
	}
	return mw.enc.EncodeMapLen(size)
}

func (mw *MsgPackWriter) WriteBool(v bool) error      { return mw.enc.EncodeBool(v) }
func (mw *MsgPackWriter) WriteI8(v int8) error        { return mw.enc.EncodeInt8(v) }
func (mw *MsgPackWriter) WriteI16(v int16) error      { return mw.enc.EncodeInt16(v) }
func (mw *MsgPackWriter) WriteI32(v int32) error      { return mw.enc.EncodeInt32(v) }
func (mw *MsgPackWriter) WriteI64(v int64) error      { return mw.enc.EncodeInt64(v) }
func (mw *MsgPackWriter) WriteDouble(v float64) error { return mw.enc.EncodeFloat64(v) }
func (mw *MsgPackWriter) WriteString(v string) error  { return mw.enc.EncodeString(v) }
func (mw *MsgPackWriter) WriteBinary(v []byte) error {
	if v == nil {
		v = []byte{}
	}
	return mw.enc.EncodeBytes(v)
}

func (mw *MsgPackWriter) Flush() error {
	if f, ok := mw.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// MsgPackReader reads what MsgPackWriter writes. Decoder failures are wrapped
// into *MalformedStreamError; offsets are not tracked (Off is -1).
type MsgPackReader struct {
	dec *msgpack.Decoder
}

var _ ProtocolReader = (*MsgPackReader)(nil)

// NewMsgPackReader wraps r. Pass an io.ByteScanner (e.g. *bufio.Reader) to
// keep the decoder from buffering ahead of the current value.
func NewMsgPackReader(r io.Reader) *MsgPackReader {
	return &MsgPackReader{dec: msgpack.NewDecoder(r)}
}

func newPooledMsgPackReader(r io.Reader) *MsgPackReader {
	dec := msgpack.GetDecoder()
	dec.Reset(r)
	return &MsgPackReader{dec: dec}
}

func (mr *MsgPackReader) release() {
	msgpack.PutDecoder(mr.dec)
	mr.dec = nil
}

func msgpackErr(err error, what string) error {
	if err == nil {
		return nil
	}
	return malformedf(-1, err, "msgpack: reading %s", what)
}

func (mr *MsgPackReader) wireType(what string) (WireType, error) {
	v, err := mr.dec.DecodeUint8()
	if err != nil {
		return 0, msgpackErr(err, what)
	}
	return WireType(v), nil
}

func (mr *MsgPackReader) ReadStructBegin() error { return nil }
func (mr *MsgPackReader) ReadStructEnd() error   { return nil }
func (mr *MsgPackReader) ReadFieldEnd() error    { return nil }
func (mr *MsgPackReader) ReadListEnd() error     { return nil }
func (mr *MsgPackReader) ReadSetEnd() error      { return nil }
func (mr *MsgPackReader) ReadMapEnd() error      { return nil }

func (mr *MsgPackReader) ReadFieldBegin() (WireType, int16, error) {
	t, err := mr.wireType("field type")
	if err != nil || t == TypeStop {
		return t, 0, err
	}
	tag, err := mr.dec.DecodeInt16()
	if err != nil {
		return 0, 0, msgpackErr(err, "field tag")
	}
	return t, tag, nil
}

func (mr *MsgPackReader) ReadListBegin() (WireType, int, error) {
	t, err := mr.wireType("element type")
	if err != nil {
		return 0, 0, err
	}
	n, err := mr.dec.DecodeArrayLen()
	if err != nil {
		return 0, 0, msgpackErr(err, "list header")
	}
	if n < 0 {
		return 0, 0, malformedf(-1, nil, "msgpack: nil list")
	}
	return t, n, nil
}

func (mr *MsgPackReader) ReadSetBegin() (WireType, int, error) {
	return mr.ReadListBegin()
}

func (mr *MsgPackReader) ReadMapBegin() (WireType, WireType, int, error) {
	kt, err := mr.wireType("key type")
	if err != nil {
		return 0, 0, 0, err
	}
	vt, err := mr.wireType("value type")
	if err != nil {
		return 0, 0, 0, err
	}
	n, err := mr.dec.DecodeMapLen()
	if err != nil {
		return 0, 0, 0, msgpackErr(err, "map header")
	}
	if n < 0 {
		return 0, 0, 0, malformedf(-1, nil, "msgpack: nil map")
	}
	return kt, vt, n, nil
}

func (mr *MsgPackReader) ReadBool() (bool, error) {
	v, err := mr.dec.DecodeBool()
	return v, msgpackErr(err, "bool")
}

func (mr *MsgPackReader) ReadI8() (int8, error) {
	v, err := mr.dec.DecodeInt8()
	return v, msgpackErr(err, "i8")
}

func (mr *MsgPackReader) ReadI16() (int16, error) {
	v, err := mr.dec.DecodeInt16()
	return v, msgpackErr(err, "i16")
}

func (mr *MsgPackReader) ReadI32() (int32, error) {
	v, err := mr.dec.DecodeInt32()
	return v, msgpackErr(err, "i32")
}

func (mr *MsgPackReader) ReadI64() (int64, error) {
	v, err := mr.dec.DecodeInt64()
	return v, msgpackErr(err, "i64")
}

func (mr *MsgPackReader) ReadDouble() (float64, error) {
	v, err := mr.dec.DecodeFloat64()
	return v, msgpackErr(err, "double")
}

func (mr *MsgPackReader) ReadString() (string, error) {
	v, err := mr.dec.DecodeString()
	return v, msgpackErr(err, "string")
}

func (mr *MsgPackReader) ReadBinary() ([]byte, error) {
	v, err := mr.dec.DecodeBytes()
	if err != nil {
		return nil, msgpackErr(err, "binary")
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}
