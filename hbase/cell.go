package hbase

import "github.com/andreyvit/tstruct"

// TCell holds one version of a cell value.
type TCell struct {
	value     []byte
	timestamp int64
	isset     tstruct.Presence
}

var (
	cellValue     *tstruct.Field[TCell, []byte]
	cellTimestamp *tstruct.Field[TCell, int64]
)

var TCellType = tstruct.NewStructType("TCell", func(c *TCell) *tstruct.Presence { return &c.isset }, func(b *tstruct.StructBuilder[TCell]) {
	cellValue = tstruct.AddField(b, 1, "value", tstruct.FieldDefault, tstruct.Bytes, func(c *TCell) *[]byte { return &c.value })
	cellTimestamp = tstruct.AddField(b, 2, "timestamp", tstruct.FieldDefault, tstruct.I64, func(c *TCell) *int64 { return &c.timestamp })
})

var TCellCodec = tstruct.StructCodec(TCellType)

func NewTCell(value []byte, timestamp int64) *TCell {
	return TCellType.New().SetValue(value).SetTimestamp(timestamp)
}

func (c *TCell) StructType() tstruct.AnyStructType { return TCellType }

func (c *TCell) Value() []byte { return cellValue.Get(c) }
func (c *TCell) SetValue(v []byte) *TCell {
	cellValue.Set(c, v)
	return c
}
func (c *TCell) IsSetValue() bool { return cellValue.IsSet(c) }

func (c *TCell) Timestamp() int64 { return cellTimestamp.Get(c) }
func (c *TCell) SetTimestamp(v int64) *TCell {
	cellTimestamp.Set(c, v)
	return c
}
func (c *TCell) IsSetTimestamp() bool { return cellTimestamp.IsSet(c) }

func (c *TCell) Equal(o *TCell) bool { return TCellType.Equal(c, o) }
func (c *TCell) String() string      { return TCellType.Format(c) }
