package tstruct

import (
	"errors"
	"io"
	"testing"
)

func TestMalformedStreamError_ErrorAndUnwrap(t *testing.T) {
	tests := []struct {
		err *MalformedStreamError
		msg string
	}{
		{&MalformedStreamError{Off: 5, Msg: "wanted 2 more bytes", Err: io.ErrUnexpectedEOF}, "malformed stream at offset 5: wanted 2 more bytes: unexpected EOF"},
		{&MalformedStreamError{Off: -1, Msg: "msgpack: reading bool", Err: io.EOF}, "malformed stream: msgpack: reading bool: EOF"},
		{&MalformedStreamError{Off: 0}, "malformed stream at offset 0"},
	}
	for _, tt := range tests {
		deepEqual(t, tt.err.Error(), tt.msg)
		if !errors.Is(tt.err, ErrMalformedStream) {
			t.Errorf("** %q is not ErrMalformedStream", tt.msg)
		}
		if tt.err.Err != nil && !errors.Is(tt.err, tt.err.Err) {
			t.Errorf("** %q does not unwrap to %v", tt.msg, tt.err.Err)
		}
	}
}

func TestMissingRequiredFieldError(t *testing.T) {
	err := error(&MissingRequiredFieldError{Struct: "Child", Tag: 1, Name: "name"})
	deepEqual(t, err.Error(), "Child: required field name (tag 1) is not set")
	if errors.Is(err, ErrMalformedStream) {
		t.Errorf("** missing field reported as malformed stream")
	}
}

func TestParseProtocol(t *testing.T) {
	deepEqual(t, must(ParseProtocol("msgpack")), MsgPack)
	deepEqual(t, must(ParseProtocol("binary")), Binary)
	deepEqual(t, must(ParseProtocol("")), DefaultProtocol)
	_, err := ParseProtocol("json")
	deepEqual(t, err.Error(), `unknown protocol "json"`)
	deepEqual(t, Protocol(5).String(), "Protocol(5)")
}
