package tstruct

import (
	"errors"
	"io"
	"math"
)

const (
	DefaultStringLengthLimit    = 16 << 20
	DefaultContainerLengthLimit = 1 << 20
)

// BinaryOptions bounds what a BinaryReader is willing to allocate for a single
// length-prefixed value. Zero fields take the defaults.
type BinaryOptions struct {
	StringLengthLimit    int
	ContainerLengthLimit int
}

func (o *BinaryOptions) normalize() {
	if o.StringLengthLimit <= 0 {
		o.StringLengthLimit = DefaultStringLengthLimit
	}
	if o.ContainerLengthLimit <= 0 {
		o.ContainerLengthLimit = DefaultContainerLengthLimit
	}
}

// BinaryWriter writes the big-endian binary protocol:
//
//	field header  type:u8 tag:i16
//	field stop    0x00
//	bool, i8      1 byte
//	i16, i32, i64 fixed width
//	double        IEEE-754 bits as i64
//	string/binary len:i32 bytes
//	list/set      elem:u8 size:i32
//	map           key:u8 value:u8 size:i32
//
// Struct begin and end markers occupy no bytes.
type BinaryWriter struct {
	w   io.Writer
	buf []byte
}

var _ ProtocolWriter = (*BinaryWriter)(nil)

func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: w, buf: make([]byte, 0, 16)}
}

func (bw *BinaryWriter) emit(buf []byte) error {
	bw.buf = buf[:0]
	_, err := bw.w.Write(buf)
	return err
}

func (bw *BinaryWriter) WriteStructBegin(name string) error { return nil }
func (bw *BinaryWriter) WriteStructEnd() error              { return nil }
func (bw *BinaryWriter) WriteFieldEnd() error               { return nil }
func (bw *BinaryWriter) WriteListEnd() error                { return nil }
func (bw *BinaryWriter) WriteSetEnd() error                 { return nil }
func (bw *BinaryWriter) WriteMapEnd() error                 { return nil }

func (bw *BinaryWriter) WriteFieldBegin(name string, typ WireType, tag int16) error {
	buf := appendUint8(bw.buf[:0], byte(typ))
	return bw.emit(appendUint16(buf, uint16(tag)))
}

func (bw *BinaryWriter) WriteFieldStop() error {
	return bw.emit(appendUint8(bw.buf[:0], byte(TypeStop)))
}

func (bw *BinaryWriter) WriteListBegin(elem WireType, size int) error {
	if size < 0 || size > math.MaxInt32 {
		return errors.New("binary: list too long")
	}
	buf := appendUint8(bw.buf[:0], byte(elem))
	return bw.emit(appendUint32(buf, uint32(size)))
}

func (bw *BinaryWriter) WriteSetBegin(elem WireType, size int) error {
	return bw.WriteListBegin(elem, size)
}

func (bw *BinaryWriter) WriteMapBegin(key, value WireType, size int) error {
	if size < 0 || size > math.MaxInt32 {
		return errors.New("binary: map too long")
	}
	buf := appendUint8(bw.buf[:0], byte(key))
	buf = appendUint8(buf, byte(value))
	return bw.emit(appendUint32(buf, uint32(size)))
}

func (bw *BinaryWriter) WriteBool(v bool) error {
	var b byte
	if v {
		b = 1
	}
	return bw.emit(appendUint8(bw.buf[:0], b))
}

func (bw *BinaryWriter) WriteI8(v int8) error {
	return bw.emit(appendUint8(bw.buf[:0], byte(v)))
}

func (bw *BinaryWriter) WriteI16(v int16) error {
	return bw.emit(appendUint16(bw.buf[:0], uint16(v)))
}

func (bw *BinaryWriter) WriteI32(v int32) error {
	return bw.emit(appendUint32(bw.buf[:0], uint32(v)))
}

func (bw *BinaryWriter) WriteI64(v int64) error {
	return bw.emit(appendUint64(bw.buf[:0], uint64(v)))
}

func (bw *BinaryWriter) WriteDouble(v float64) error {
	return bw.emit(appendUint64(bw.buf[:0], math.Float64bits(v)))
}

func (bw *BinaryWriter) WriteString(v string) error {
	if len(v) > math.MaxInt32 {
		return errors.New("binary: string too long")
	}
	if err := bw.emit(appendUint32(bw.buf[:0], uint32(len(v)))); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	_, err := io.WriteString(bw.w, v)
	return err
}

func (bw *BinaryWriter) WriteBinary(v []byte) error {
	if len(v) > math.MaxInt32 {
		return errors.New("binary: value too long")
	}
	if err := bw.emit(appendUint32(bw.buf[:0], uint32(len(v)))); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	_, err := bw.w.Write(v)
	return err
}

// Flush flushes the underlying writer if it buffers (e.g. *bufio.Writer).
func (bw *BinaryWriter) Flush() error {
	if f, ok := bw.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// BinaryReader reads what BinaryWriter writes. Every failure is a
// *MalformedStreamError carrying the byte offset it was detected at.
type BinaryReader struct {
	r       io.Reader
	off     int64
	opt     BinaryOptions
	scratch [8]byte
}

var _ ProtocolReader = (*BinaryReader)(nil)

func NewBinaryReader(r io.Reader, opt BinaryOptions) *BinaryReader {
	opt.normalize()
	return &BinaryReader{r: r, opt: opt}
}

// Offset returns the number of bytes consumed so far.
func (br *BinaryReader) Offset() int64 {
	return br.off
}

func (br *BinaryReader) fill(b []byte) error {
	n, err := io.ReadFull(br.r, b)
	br.off += int64(n)
	if err != nil {
		return malformedf(br.off, err, "wanted %d more bytes", len(b)-n)
	}
	return nil
}

func (br *BinaryReader) readN(n int) ([]byte, error) {
	b := br.scratch[:n]
	if err := br.fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (br *BinaryReader) u8() (byte, error) {
	b, err := br.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (br *BinaryReader) u16() (uint16, error) {
	b, err := br.readN(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (br *BinaryReader) u32() (uint32, error) {
	b, err := br.readN(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (br *BinaryReader) u64() (uint64, error) {
	hi, err := br.u32()
	if err != nil {
		return 0, err
	}
	lo, err := br.u32()
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

func (br *BinaryReader) size(limit int, what string) (int, error) {
	v, err := br.u32()
	if err != nil {
		return 0, err
	}
	n := int32(v)
	if n < 0 {
		return 0, malformedf(br.off, nil, "negative %s length %d", what, n)
	}
	if int(n) > limit {
		return 0, malformedf(br.off, nil, "%s length %d exceeds limit %d", what, n, limit)
	}
	return int(n), nil
}

func (br *BinaryReader) ReadStructBegin() error { return nil }
func (br *BinaryReader) ReadStructEnd() error   { return nil }
func (br *BinaryReader) ReadFieldEnd() error    { return nil }
func (br *BinaryReader) ReadListEnd() error     { return nil }
func (br *BinaryReader) ReadSetEnd() error      { return nil }
func (br *BinaryReader) ReadMapEnd() error      { return nil }

func (br *BinaryReader) ReadFieldBegin() (WireType, int16, error) {
	t, err := br.u8()
	if err != nil {
		return 0, 0, err
	}
	if WireType(t) == TypeStop {
		return TypeStop, 0, nil
	}
	tag, err := br.u16()
	if err != nil {
		return 0, 0, err
	}
	return WireType(t), int16(tag), nil
}

func (br *BinaryReader) ReadListBegin() (WireType, int, error) {
	t, err := br.u8()
	if err != nil {
		return 0, 0, err
	}
	n, err := br.size(br.opt.ContainerLengthLimit, "container")
	if err != nil {
		return 0, 0, err
	}
	return WireType(t), n, nil
}

func (br *BinaryReader) ReadSetBegin() (WireType, int, error) {
	return br.ReadListBegin()
}

func (br *BinaryReader) ReadMapBegin() (WireType, WireType, int, error) {
	kt, err := br.u8()
	if err != nil {
		return 0, 0, 0, err
	}
	vt, err := br.u8()
	if err != nil {
		return 0, 0, 0, err
	}
	n, err := br.size(br.opt.ContainerLengthLimit, "container")
	if err != nil {
		return 0, 0, 0, err
	}
	return WireType(kt), WireType(vt), n, nil
}

func (br *BinaryReader) ReadBool() (bool, error) {
	b, err := br.u8()
	return b == 1, err
}

func (br *BinaryReader) ReadI8() (int8, error) {
	b, err := br.u8()
	return int8(b), err
}

func (br *BinaryReader) ReadI16() (int16, error) {
	v, err := br.u16()
	return int16(v), err
}

func (br *BinaryReader) ReadI32() (int32, error) {
	v, err := br.u32()
	return int32(v), err
}

func (br *BinaryReader) ReadI64() (int64, error) {
	v, err := br.u64()
	return int64(v), err
}

func (br *BinaryReader) ReadDouble() (float64, error) {
	v, err := br.u64()
	return math.Float64frombits(v), err
}

func (br *BinaryReader) ReadString() (string, error) {
	b, err := br.ReadBinary()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (br *BinaryReader) ReadBinary() ([]byte, error) {
	n, err := br.size(br.opt.StringLengthLimit, "string")
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if err := br.fill(b); err != nil {
		return nil, err
	}
	return b, nil
}
