package hbase

import (
	"github.com/andreyvit/tstruct"
)

// Defaults HBase applies to a column family that doesn't override them.
const (
	DefaultMaxVersions     = 3
	DefaultCompression     = "NONE"
	DefaultBloomFilterType = "NONE"
	DefaultTimeToLive      = -1
)

// ColumnDescriptor holds column family settings: its name and the
// attributes HBase applies to every column in the family.
type ColumnDescriptor struct {
	name                  []byte
	maxVersions           int32
	compression           string
	inMemory              bool
	bloomFilterType       string
	bloomFilterVectorSize int32
	bloomFilterNbHashes   int32
	blockCacheEnabled     bool
	timeToLive            int32
	isset                 tstruct.Presence
}

var (
	cdName                  *tstruct.Field[ColumnDescriptor, []byte]
	cdMaxVersions           *tstruct.Field[ColumnDescriptor, int32]
	cdCompression           *tstruct.Field[ColumnDescriptor, string]
	cdInMemory              *tstruct.Field[ColumnDescriptor, bool]
	cdBloomFilterType       *tstruct.Field[ColumnDescriptor, string]
	cdBloomFilterVectorSize *tstruct.Field[ColumnDescriptor, int32]
	cdBloomFilterNbHashes   *tstruct.Field[ColumnDescriptor, int32]
	cdBlockCacheEnabled     *tstruct.Field[ColumnDescriptor, bool]
	cdTimeToLive            *tstruct.Field[ColumnDescriptor, int32]
)

var ColumnDescriptorType = tstruct.NewStructType("ColumnDescriptor", func(cd *ColumnDescriptor) *tstruct.Presence { return &cd.isset }, func(b *tstruct.StructBuilder[ColumnDescriptor]) {
	cdName = tstruct.AddField(b, 1, "name", tstruct.FieldDefault, tstruct.Bytes, func(cd *ColumnDescriptor) *[]byte { return &cd.name })
	cdMaxVersions = tstruct.AddFieldWithDefault(b, 2, "maxVersions", tstruct.FieldDefault, tstruct.I32, func(cd *ColumnDescriptor) *int32 { return &cd.maxVersions }, DefaultMaxVersions)
	cdCompression = tstruct.AddFieldWithDefault(b, 3, "compression", tstruct.FieldDefault, tstruct.String, func(cd *ColumnDescriptor) *string { return &cd.compression }, DefaultCompression)
	cdInMemory = tstruct.AddFieldWithDefault(b, 4, "inMemory", tstruct.FieldDefault, tstruct.Bool, func(cd *ColumnDescriptor) *bool { return &cd.inMemory }, false)
	cdBloomFilterType = tstruct.AddFieldWithDefault(b, 5, "bloomFilterType", tstruct.FieldDefault, tstruct.String, func(cd *ColumnDescriptor) *string { return &cd.bloomFilterType }, DefaultBloomFilterType)
	cdBloomFilterVectorSize = tstruct.AddFieldWithDefault(b, 6, "bloomFilterVectorSize", tstruct.FieldDefault, tstruct.I32, func(cd *ColumnDescriptor) *int32 { return &cd.bloomFilterVectorSize }, 0)
	cdBloomFilterNbHashes = tstruct.AddFieldWithDefault(b, 7, "bloomFilterNbHashes", tstruct.FieldDefault, tstruct.I32, func(cd *ColumnDescriptor) *int32 { return &cd.bloomFilterNbHashes }, 0)
	cdBlockCacheEnabled = tstruct.AddFieldWithDefault(b, 8, "blockCacheEnabled", tstruct.FieldDefault, tstruct.Bool, func(cd *ColumnDescriptor) *bool { return &cd.blockCacheEnabled }, false)
	cdTimeToLive = tstruct.AddFieldWithDefault(b, 9, "timeToLive", tstruct.FieldDefault, tstruct.I32, func(cd *ColumnDescriptor) *int32 { return &cd.timeToLive }, DefaultTimeToLive)
})

var ColumnDescriptorCodec = tstruct.StructCodec(ColumnDescriptorType)

// NewColumnDescriptor returns a descriptor with every attribute at its
// default and no name.
func NewColumnDescriptor() *ColumnDescriptor {
	return ColumnDescriptorType.New()
}

// NewColumnDescriptorWith returns a descriptor with every attribute
// explicitly set.
func NewColumnDescriptorWith(name []byte, maxVersions int32, compression string, inMemory bool, bloomFilterType string, bloomFilterVectorSize, bloomFilterNbHashes int32, blockCacheEnabled bool, timeToLive int32) *ColumnDescriptor {
	return NewColumnDescriptor().
		SetName(name).
		SetMaxVersions(maxVersions).
		SetCompression(compression).
		SetInMemory(inMemory).
		SetBloomFilterType(bloomFilterType).
		SetBloomFilterVectorSize(bloomFilterVectorSize).
		SetBloomFilterNbHashes(bloomFilterNbHashes).
		SetBlockCacheEnabled(blockCacheEnabled).
		SetTimeToLive(timeToLive)
}

func (cd *ColumnDescriptor) StructType() tstruct.AnyStructType { return ColumnDescriptorType }

func (cd *ColumnDescriptor) Name() []byte { return cdName.Get(cd) }
func (cd *ColumnDescriptor) SetName(v []byte) *ColumnDescriptor {
	cdName.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetName()      { cdName.Unset(cd) }
func (cd *ColumnDescriptor) IsSetName() bool { return cdName.IsSet(cd) }

func (cd *ColumnDescriptor) MaxVersions() int32 { return cdMaxVersions.Get(cd) }
func (cd *ColumnDescriptor) SetMaxVersions(v int32) *ColumnDescriptor {
	cdMaxVersions.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetMaxVersions()      { cdMaxVersions.Unset(cd) }
func (cd *ColumnDescriptor) IsSetMaxVersions() bool { return cdMaxVersions.IsSet(cd) }

func (cd *ColumnDescriptor) Compression() string { return cdCompression.Get(cd) }
func (cd *ColumnDescriptor) SetCompression(v string) *ColumnDescriptor {
	cdCompression.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetCompression()      { cdCompression.Unset(cd) }
func (cd *ColumnDescriptor) IsSetCompression() bool { return cdCompression.IsSet(cd) }

func (cd *ColumnDescriptor) InMemory() bool { return cdInMemory.Get(cd) }
func (cd *ColumnDescriptor) SetInMemory(v bool) *ColumnDescriptor {
	cdInMemory.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetInMemory()      { cdInMemory.Unset(cd) }
func (cd *ColumnDescriptor) IsSetInMemory() bool { return cdInMemory.IsSet(cd) }

func (cd *ColumnDescriptor) BloomFilterType() string { return cdBloomFilterType.Get(cd) }
func (cd *ColumnDescriptor) SetBloomFilterType(v string) *ColumnDescriptor {
	cdBloomFilterType.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetBloomFilterType()      { cdBloomFilterType.Unset(cd) }
func (cd *ColumnDescriptor) IsSetBloomFilterType() bool { return cdBloomFilterType.IsSet(cd) }

func (cd *ColumnDescriptor) BloomFilterVectorSize() int32 { return cdBloomFilterVectorSize.Get(cd) }
func (cd *ColumnDescriptor) SetBloomFilterVectorSize(v int32) *ColumnDescriptor {
	cdBloomFilterVectorSize.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetBloomFilterVectorSize()      { cdBloomFilterVectorSize.Unset(cd) }
func (cd *ColumnDescriptor) IsSetBloomFilterVectorSize() bool { return cdBloomFilterVectorSize.IsSet(cd) }

func (cd *ColumnDescriptor) BloomFilterNbHashes() int32 { return cdBloomFilterNbHashes.Get(cd) }
func (cd *ColumnDescriptor) SetBloomFilterNbHashes(v int32) *ColumnDescriptor {
	cdBloomFilterNbHashes.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetBloomFilterNbHashes()      { cdBloomFilterNbHashes.Unset(cd) }
func (cd *ColumnDescriptor) IsSetBloomFilterNbHashes() bool { return cdBloomFilterNbHashes.IsSet(cd) }

func (cd *ColumnDescriptor) BlockCacheEnabled() bool { return cdBlockCacheEnabled.Get(cd) }
func (cd *ColumnDescriptor) SetBlockCacheEnabled(v bool) *ColumnDescriptor {
	cdBlockCacheEnabled.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetBlockCacheEnabled()      { cdBlockCacheEnabled.Unset(cd) }
func (cd *ColumnDescriptor) IsSetBlockCacheEnabled() bool { return cdBlockCacheEnabled.IsSet(cd) }

func (cd *ColumnDescriptor) TimeToLive() int32 { return cdTimeToLive.Get(cd) }
func (cd *ColumnDescriptor) SetTimeToLive(v int32) *ColumnDescriptor {
	cdTimeToLive.Set(cd, v)
	return cd
}
func (cd *ColumnDescriptor) UnsetTimeToLive()      { cdTimeToLive.Unset(cd) }
func (cd *ColumnDescriptor) IsSetTimeToLive() bool { return cdTimeToLive.IsSet(cd) }

func (cd *ColumnDescriptor) GetFieldValue(name string) (any, error) {
	return ColumnDescriptorType.GetFieldValue(cd, name)
}

func (cd *ColumnDescriptor) SetFieldValue(name string, v any) error {
	return ColumnDescriptorType.SetFieldValue(cd, name, v)
}

func (cd *ColumnDescriptor) IsFieldSet(name string) (bool, error) {
	return ColumnDescriptorType.IsFieldSet(cd, name)
}

func (cd *ColumnDescriptor) Validate() error { return ColumnDescriptorType.Validate(cd) }

func (cd *ColumnDescriptor) Write(p tstruct.ProtocolWriter) error {
	return ColumnDescriptorType.Write(p, cd)
}

func (cd *ColumnDescriptor) Read(p tstruct.ProtocolReader) error {
	return ColumnDescriptorType.Read(p, cd)
}

func (cd *ColumnDescriptor) Equal(o *ColumnDescriptor) bool {
	return ColumnDescriptorType.Equal(cd, o)
}

func (cd *ColumnDescriptor) Compare(o *ColumnDescriptor) int {
	return ColumnDescriptorType.Compare(cd, o)
}

func (cd *ColumnDescriptor) Hash() uint64 { return ColumnDescriptorType.Hash(cd) }

func (cd *ColumnDescriptor) DeepCopy() *ColumnDescriptor {
	return ColumnDescriptorType.DeepCopy(cd)
}

func (cd *ColumnDescriptor) String() string { return ColumnDescriptorType.Format(cd) }
