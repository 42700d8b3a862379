package tstruct

import (
	"bytes"
	"fmt"
)

// Marshal encodes r with the given protocol.
func (st *StructType[R]) Marshal(proto Protocol, r *R) ([]byte, error) {
	return st.AppendMarshal(nil, proto, r)
}

// AppendMarshal appends the encoding of r to buf. On error buf is returned
// unchanged in length.
func (st *StructType[R]) AppendMarshal(buf []byte, proto Protocol, r *R) ([]byte, error) {
	bb := bytesBuilder{buf}
	var err error
	switch proto {
	case Binary:
		err = st.Write(NewBinaryWriter(&bb), r)
	case MsgPack:
		mw := newPooledMsgPackWriter(&bb)
		err = st.Write(mw, r)
		mw.release()
	default:
		panic(fmt.Errorf("unsupported protocol %v", proto))
	}
	if err != nil {
		return buf, err
	}
	return bb.Buf, nil
}

// Unmarshal clears r and decodes data into it. data must hold
// exactly one struct; trailing bytes are a *MalformedStreamError.
func (st *StructType[R]) Unmarshal(proto Protocol, data []byte, r *R) error {
	st.Clear(r)
	var br bytes.Reader
	br.Reset(data)
	var err error
	switch proto {
	case Binary:
		err = st.Read(NewBinaryReader(&br, BinaryOptions{}), r)
	case MsgPack:
		mr := newPooledMsgPackReader(&br)
		err = st.Read(mr, r)
		mr.release()
	default:
		panic(fmt.Errorf("unsupported protocol %v", proto))
	}
	if err != nil {
		return err
	}
	if n := br.Len(); n > 0 {
		return malformedf(int64(len(data)-n), nil, "%d trailing bytes after %s", n, st.name)
	}
	return nil
}

// Decode is Unmarshal into a new record.
func (st *StructType[R]) Decode(proto Protocol, data []byte) (*R, error) {
	r := new(R)
	if err := st.Unmarshal(proto, data, r); err != nil {
		return nil, err
	}
	return r, nil
}
