/*
Package tstruct implements Thrift-style struct records: a record type is
declared once as a catalog of fields, and the package derives everything else
from that catalog.

We implement:

1. Field catalogs, mapping stable wire tags and names to a kind and a
requiredness (required, optional or default).

2. Presence tracking, so that a field can be "set to its zero value" as opposed
to "never set".

3. Encoding and decoding against an abstract protocol, with two concrete
protocols (binary and msgpack). Decoders skip fields they don't know.

4. Value semantics: deep copy, equality, hashing and a total order.

5. A record store keeping encoded records in bbolt buckets.

# Declaring a record

A record is a Go struct holding one unexported slot per field plus a Presence.
Its StructType is built at package initialization:

	var (
		cellValue     *tstruct.Field[Cell, []byte]
		cellTimestamp *tstruct.Field[Cell, int64]
	)

	var CellType = tstruct.NewStructType("Cell", func(c *Cell) *tstruct.Presence { return &c.isset }, func(b *tstruct.StructBuilder[Cell]) {
		cellValue = tstruct.AddField(b, 1, "value", tstruct.FieldDefault, tstruct.Bytes, func(c *Cell) *[]byte { return &c.value })
		cellTimestamp = tstruct.AddField(b, 2, "timestamp", tstruct.FieldDefault, tstruct.I64, func(c *Cell) *int64 { return &c.timestamp })
	})

Accessor methods on the record delegate to the field handles.

# Presence

Each field uses exactly one presence mechanism, chosen by its kind. BYTES,
STRUCT, LIST and MAP fields are present when non-nil. Every other non-required
field gets a bit in the record's Presence; required value fields are always
present.

For encoding and value semantics, default-requiredness value fields (except
strings) count as present whatever their bit says. They are always written, so
a decoded copy reads them as set even when the original did not. Strings and
optional fields are written only when their bit is set.

# Wire format

A struct is framed as StructBegin, Field*, FieldStop, StructEnd. Each field is
a type code, a 16-bit tag and the value. Type codes:

	STOP 0, BOOL 2, BYTE 3, DOUBLE 4, I16 6, I32 8, I64 10,
	STRING 11, STRUCT 12, MAP 13, SET 14, LIST 15

STRING and BYTES share code 11. See BinaryWriter and MsgPackWriter for the
byte-level layouts.
*/
package tstruct
