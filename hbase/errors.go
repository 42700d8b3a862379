package hbase

import "github.com/andreyvit/tstruct"

// IOError is the general failure HBase reports for server-side problems.
type IOError struct {
	message string
	isset   tstruct.Presence
}

// IllegalArgument reports a bad argument, such as an unknown column family.
type IllegalArgument struct {
	message string
	isset   tstruct.Presence
}

// AlreadyExists reports an attempt to create a table that exists.
type AlreadyExists struct {
	message string
	isset   tstruct.Presence
}

var (
	ioErrMessage   *tstruct.Field[IOError, string]
	illegalMessage *tstruct.Field[IllegalArgument, string]
	existsMessage  *tstruct.Field[AlreadyExists, string]
)

var IOErrorType = tstruct.NewStructType("IOError", func(e *IOError) *tstruct.Presence { return &e.isset }, func(b *tstruct.StructBuilder[IOError]) {
	ioErrMessage = tstruct.AddField(b, 1, "message", tstruct.FieldDefault, tstruct.String, func(e *IOError) *string { return &e.message })
})

var IllegalArgumentType = tstruct.NewStructType("IllegalArgument", func(e *IllegalArgument) *tstruct.Presence { return &e.isset }, func(b *tstruct.StructBuilder[IllegalArgument]) {
	illegalMessage = tstruct.AddField(b, 1, "message", tstruct.FieldDefault, tstruct.String, func(e *IllegalArgument) *string { return &e.message })
})

var AlreadyExistsType = tstruct.NewStructType("AlreadyExists", func(e *AlreadyExists) *tstruct.Presence { return &e.isset }, func(b *tstruct.StructBuilder[AlreadyExists]) {
	existsMessage = tstruct.AddField(b, 1, "message", tstruct.FieldDefault, tstruct.String, func(e *AlreadyExists) *string { return &e.message })
})

func NewIOError(msg string) *IOError {
	e := IOErrorType.New()
	ioErrMessage.Set(e, msg)
	return e
}

func (e *IOError) StructType() tstruct.AnyStructType { return IOErrorType }
func (e *IOError) Message() string                   { return ioErrMessage.Get(e) }
func (e *IOError) IsSetMessage() bool                { return ioErrMessage.IsSet(e) }
func (e *IOError) Error() string                     { return "hbase: I/O error: " + e.Message() }

func NewIllegalArgument(msg string) *IllegalArgument {
	e := IllegalArgumentType.New()
	illegalMessage.Set(e, msg)
	return e
}

func (e *IllegalArgument) StructType() tstruct.AnyStructType { return IllegalArgumentType }
func (e *IllegalArgument) Message() string                   { return illegalMessage.Get(e) }
func (e *IllegalArgument) IsSetMessage() bool                { return illegalMessage.IsSet(e) }
func (e *IllegalArgument) Error() string                     { return "hbase: illegal argument: " + e.Message() }

func NewAlreadyExists(msg string) *AlreadyExists {
	e := AlreadyExistsType.New()
	existsMessage.Set(e, msg)
	return e
}

func (e *AlreadyExists) StructType() tstruct.AnyStructType { return AlreadyExistsType }
func (e *AlreadyExists) Message() string                   { return existsMessage.Get(e) }
func (e *AlreadyExists) IsSetMessage() bool                { return existsMessage.IsSet(e) }
func (e *AlreadyExists) Error() string                     { return "hbase: already exists: " + e.Message() }
