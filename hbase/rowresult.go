package hbase

import "github.com/andreyvit/tstruct"

// TRowResult holds one row and its cells keyed by "family:qualifier" column
// name. Column names are byte strings on the wire; they are kept as Go
// strings so they can key a map.
type TRowResult struct {
	row     []byte
	columns map[string]*TCell
}

var (
	rrRow     *tstruct.Field[TRowResult, []byte]
	rrColumns *tstruct.Field[TRowResult, map[string]*TCell]
)

var TRowResultType = tstruct.NewStructType("TRowResult", nil, func(b *tstruct.StructBuilder[TRowResult]) {
	rrRow = tstruct.AddField(b, 1, "row", tstruct.FieldDefault, tstruct.Bytes, func(rr *TRowResult) *[]byte { return &rr.row })
	rrColumns = tstruct.AddField(b, 2, "columns", tstruct.FieldDefault, tstruct.MapOf(tstruct.String, TCellCodec), func(rr *TRowResult) *map[string]*TCell { return &rr.columns })
})

func NewTRowResult(row []byte) *TRowResult {
	return TRowResultType.New().SetRow(row)
}

func (rr *TRowResult) StructType() tstruct.AnyStructType { return TRowResultType }

func (rr *TRowResult) Row() []byte { return rrRow.Get(rr) }
func (rr *TRowResult) SetRow(v []byte) *TRowResult {
	rrRow.Set(rr, v)
	return rr
}
func (rr *TRowResult) IsSetRow() bool { return rrRow.IsSet(rr) }

func (rr *TRowResult) Columns() map[string]*TCell { return rrColumns.Get(rr) }
func (rr *TRowResult) SetColumns(v map[string]*TCell) *TRowResult {
	rrColumns.Set(rr, v)
	return rr
}
func (rr *TRowResult) IsSetColumns() bool { return rrColumns.IsSet(rr) }

// PutToColumns stores cell under column, creating the map if needed.
func (rr *TRowResult) PutToColumns(column string, cell *TCell) *TRowResult {
	m := rr.Columns()
	if m == nil {
		m = make(map[string]*TCell)
	}
	m[column] = cell
	return rr.SetColumns(m)
}

func (rr *TRowResult) Equal(o *TRowResult) bool { return TRowResultType.Equal(rr, o) }
func (rr *TRowResult) String() string           { return TRowResultType.Format(rr) }
