package hbase

import "github.com/andreyvit/tstruct"

// Mutation is a single put or delete of one column.
type Mutation struct {
	isDelete   bool
	column     []byte
	value      []byte
	writeToWAL bool
	isset      tstruct.Presence
}

var (
	mutIsDelete   *tstruct.Field[Mutation, bool]
	mutColumn     *tstruct.Field[Mutation, []byte]
	mutValue      *tstruct.Field[Mutation, []byte]
	mutWriteToWAL *tstruct.Field[Mutation, bool]
)

var MutationType = tstruct.NewStructType("Mutation", func(m *Mutation) *tstruct.Presence { return &m.isset }, func(b *tstruct.StructBuilder[Mutation]) {
	mutIsDelete = tstruct.AddFieldWithDefault(b, 1, "isDelete", tstruct.FieldDefault, tstruct.Bool, func(m *Mutation) *bool { return &m.isDelete }, false)
	mutColumn = tstruct.AddField(b, 2, "column", tstruct.FieldDefault, tstruct.Bytes, func(m *Mutation) *[]byte { return &m.column })
	mutValue = tstruct.AddField(b, 3, "value", tstruct.FieldDefault, tstruct.Bytes, func(m *Mutation) *[]byte { return &m.value })
	mutWriteToWAL = tstruct.AddFieldWithDefault(b, 4, "writeToWAL", tstruct.FieldDefault, tstruct.Bool, func(m *Mutation) *bool { return &m.writeToWAL }, true)
})

var MutationCodec = tstruct.StructCodec(MutationType)

func NewMutation() *Mutation {
	return MutationType.New()
}

// NewPut returns a mutation storing value into column.
func NewPut(column, value []byte) *Mutation {
	return NewMutation().SetColumn(column).SetValue(value)
}

// NewDelete returns a mutation deleting column.
func NewDelete(column []byte) *Mutation {
	return NewMutation().SetColumn(column).SetIsDelete(true)
}

func (m *Mutation) StructType() tstruct.AnyStructType { return MutationType }

func (m *Mutation) IsDelete() bool { return mutIsDelete.Get(m) }
func (m *Mutation) SetIsDelete(v bool) *Mutation {
	mutIsDelete.Set(m, v)
	return m
}
func (m *Mutation) IsSetIsDelete() bool { return mutIsDelete.IsSet(m) }

func (m *Mutation) Column() []byte { return mutColumn.Get(m) }
func (m *Mutation) SetColumn(v []byte) *Mutation {
	mutColumn.Set(m, v)
	return m
}
func (m *Mutation) IsSetColumn() bool { return mutColumn.IsSet(m) }

func (m *Mutation) Value() []byte { return mutValue.Get(m) }
func (m *Mutation) SetValue(v []byte) *Mutation {
	mutValue.Set(m, v)
	return m
}
func (m *Mutation) IsSetValue() bool { return mutValue.IsSet(m) }

func (m *Mutation) WriteToWAL() bool { return mutWriteToWAL.Get(m) }
func (m *Mutation) SetWriteToWAL(v bool) *Mutation {
	mutWriteToWAL.Set(m, v)
	return m
}
func (m *Mutation) IsSetWriteToWAL() bool { return mutWriteToWAL.IsSet(m) }

func (m *Mutation) Equal(o *Mutation) bool { return MutationType.Equal(m, o) }
func (m *Mutation) String() string         { return MutationType.Format(m) }

// BatchMutation groups the mutations applied to one row.
type BatchMutation struct {
	row       []byte
	mutations []*Mutation
}

var (
	bmRow       *tstruct.Field[BatchMutation, []byte]
	bmMutations *tstruct.Field[BatchMutation, []*Mutation]
)

var BatchMutationType = tstruct.NewStructType("BatchMutation", nil, func(b *tstruct.StructBuilder[BatchMutation]) {
	bmRow = tstruct.AddField(b, 1, "row", tstruct.FieldDefault, tstruct.Bytes, func(bm *BatchMutation) *[]byte { return &bm.row })
	bmMutations = tstruct.AddField(b, 2, "mutations", tstruct.FieldDefault, tstruct.ListOf(MutationCodec), func(bm *BatchMutation) *[]*Mutation { return &bm.mutations })
})

func NewBatchMutation(row []byte, mutations ...*Mutation) *BatchMutation {
	bm := BatchMutationType.New().SetRow(row)
	if mutations != nil {
		bm.SetMutations(mutations)
	}
	return bm
}

func (bm *BatchMutation) StructType() tstruct.AnyStructType { return BatchMutationType }

func (bm *BatchMutation) Row() []byte { return bmRow.Get(bm) }
func (bm *BatchMutation) SetRow(v []byte) *BatchMutation {
	bmRow.Set(bm, v)
	return bm
}
func (bm *BatchMutation) IsSetRow() bool { return bmRow.IsSet(bm) }

func (bm *BatchMutation) Mutations() []*Mutation { return bmMutations.Get(bm) }
func (bm *BatchMutation) SetMutations(v []*Mutation) *BatchMutation {
	bmMutations.Set(bm, v)
	return bm
}
func (bm *BatchMutation) IsSetMutations() bool { return bmMutations.IsSet(bm) }

// AddToMutations appends m, creating the list if needed.
func (bm *BatchMutation) AddToMutations(m *Mutation) *BatchMutation {
	return bm.SetMutations(append(bm.Mutations(), m))
}

func (bm *BatchMutation) Equal(o *BatchMutation) bool { return BatchMutationType.Equal(bm, o) }
func (bm *BatchMutation) String() string              { return BatchMutationType.Format(bm) }
