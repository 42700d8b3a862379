package hbase

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/andreyvit/tstruct"
)

var allProtocols = []tstruct.Protocol{tstruct.Binary, tstruct.MsgPack}

func TestColumnDescriptorDefaults(t *testing.T) {
	cd := NewColumnDescriptor()
	deepEqual(t, cd.Name(), []byte(nil))
	deepEqual(t, cd.MaxVersions(), int32(3))
	deepEqual(t, cd.Compression(), "NONE")
	deepEqual(t, cd.InMemory(), false)
	deepEqual(t, cd.BloomFilterType(), "NONE")
	deepEqual(t, cd.BloomFilterVectorSize(), int32(0))
	deepEqual(t, cd.BloomFilterNbHashes(), int32(0))
	deepEqual(t, cd.BlockCacheEnabled(), false)
	deepEqual(t, cd.TimeToLive(), int32(-1))

	deepEqual(t, cd.IsSetName(), false)
	deepEqual(t, cd.IsSetMaxVersions(), false)
	deepEqual(t, cd.IsSetCompression(), true)
	deepEqual(t, cd.IsSetBloomFilterType(), true)
	deepEqual(t, cd.IsSetTimeToLive(), false)
}

func TestColumnDescriptorRoundTrip(t *testing.T) {
	for _, proto := range allProtocols {
		t.Run(proto.String(), func(t *testing.T) {
			cd := NewColumnDescriptor().SetName([]byte("cf1"))
			data := must(ColumnDescriptorType.Marshal(proto, cd))

			decoded := must(ColumnDescriptorType.Decode(proto, data))
			deepEqual(t, cd.Equal(decoded), true)
			deepEqual(t, cd.Hash(), decoded.Hash())
			deepEqual(t, cd.IsSetMaxVersions(), false)
			deepEqual(t, decoded.MaxVersions(), int32(3))
			deepEqual(t, decoded.IsSetMaxVersions(), true)
			deepEqual(t, string(decoded.Name()), "cf1")
		})
	}
}

func TestColumnDescriptorBinaryLayout(t *testing.T) {
	cd := NewColumnDescriptor().SetName([]byte("cf1"))
	deepEqual(t, must(ColumnDescriptorType.Marshal(tstruct.Binary, cd)), x(""+
		"0b 0001 00000003 636631"+
		"08 0002 00000003"+
		"0b 0003 00000004 4e4f4e45"+
		"02 0004 00"+
		"0b 0005 00000004 4e4f4e45"+
		"08 0006 00000000"+
		"08 0007 00000000"+
		"02 0008 00"+
		"08 0009 ffffffff"+
		"00"))

	cd.UnsetCompression()
	cd.UnsetName()
	deepEqual(t, must(ColumnDescriptorType.Marshal(tstruct.Binary, cd)), x(""+
		"08 0002 00000003"+
		"02 0004 00"+
		"0b 0005 00000004 4e4f4e45"+
		"08 0006 00000000"+
		"08 0007 00000000"+
		"02 0008 00"+
		"08 0009 ffffffff"+
		"00"))
}

func TestColumnDescriptorUnsetString(t *testing.T) {
	for _, proto := range allProtocols {
		cd := NewColumnDescriptor().SetName([]byte("cf1"))
		cd.UnsetCompression()
		decoded := must(ColumnDescriptorType.Decode(proto, must(ColumnDescriptorType.Marshal(proto, cd))))
		deepEqual(t, decoded.IsSetCompression(), false)
		deepEqual(t, decoded.Compression(), DefaultCompression)
		deepEqual(t, cd.Equal(decoded), true)
	}
}

func TestColumnDescriptorFullyPopulated(t *testing.T) {
	cd := NewColumnDescriptorWith([]byte("attrs"), 5, "GZ", true, "ROWCOL", 1024, 4, true, 86400)
	for _, proto := range allProtocols {
		var buf bytes.Buffer
		w := proto.NewWriter(&buf)
		ensure(cd.Write(w))
		ensure(w.Flush())

		decoded := NewColumnDescriptor()
		ensure(decoded.Read(proto.NewReader(&buf)))
		deepEqual(t, decoded.Equal(cd), true)
		deepEqual(t, decoded.String(), cd.String())
	}
	deepEqual(t, cd.String(), `ColumnDescriptor(name:"attrs", maxVersions:5, compression:"GZ", inMemory:true, bloomFilterType:"ROWCOL", bloomFilterVectorSize:1024, bloomFilterNbHashes:4, blockCacheEnabled:true, timeToLive:86400)`)
}

func TestColumnDescriptorString(t *testing.T) {
	deepEqual(t, NewColumnDescriptor().SetName([]byte("cf1")).String(), `ColumnDescriptor(name:"cf1", maxVersions:3, compression:"NONE", inMemory:false, bloomFilterType:"NONE", bloomFilterVectorSize:0, bloomFilterNbHashes:0, blockCacheEnabled:false, timeToLive:-1)`)
	deepEqual(t, strings.HasPrefix(NewColumnDescriptor().String(), "ColumnDescriptor(name:null, "), true)
}

func TestColumnDescriptorValueSemantics(t *testing.T) {
	a := NewColumnDescriptor().SetName([]byte("cf1"))
	b := NewColumnDescriptor().SetName([]byte("cf2"))
	deepEqual(t, a.Compare(b), -1)
	deepEqual(t, b.Compare(a), 1)
	deepEqual(t, a.Equal(b), false)

	cp := a.DeepCopy()
	deepEqual(t, cp.Compare(a), 0)
	cp.Name()[0] = 'X'
	cp.SetMaxVersions(1)
	deepEqual(t, string(a.Name()), "cf1")
	deepEqual(t, a.MaxVersions(), int32(3))
	deepEqual(t, a.IsSetMaxVersions(), false)

	// setting a default field to its default does not change its value
	c := NewColumnDescriptor().SetName([]byte("cf1")).SetMaxVersions(3)
	deepEqual(t, a.Equal(c), true)
	deepEqual(t, a.Hash(), c.Hash())

	deepEqual(t, tstruct.Compare(a, NewTCell(nil, 0)), -1)
}

func TestColumnDescriptorReflection(t *testing.T) {
	cd := NewColumnDescriptor()
	deepEqual(t, must(cd.GetFieldValue("maxVersions")), any(int32(3)))
	deepEqual(t, must(cd.GetFieldValue("name")), nil)
	deepEqual(t, must(cd.IsFieldSet("compression")), true)

	ensure(cd.SetFieldValue("timeToLive", int32(60)))
	deepEqual(t, cd.TimeToLive(), int32(60))
	deepEqual(t, cd.IsSetTimeToLive(), true)

	err := cd.SetFieldValue("timeToLive", "60")
	var tme *tstruct.TypeMismatchError
	if !errors.As(err, &tme) {
		t.Errorf("** got %v, wanted *tstruct.TypeMismatchError", err)
	}
	_, err = cd.GetFieldValue("blockSize")
	var ufe *tstruct.UnknownFieldError
	if !errors.As(err, &ufe) {
		t.Errorf("** got %v, wanted *tstruct.UnknownFieldError", err)
	}
}

func TestColumnDescriptorCatalog(t *testing.T) {
	var names []string
	for _, fd := range ColumnDescriptorType.Catalog().Fields() {
		names = append(names, fd.Name)
		if fd.Requiredness != tstruct.FieldDefault {
			t.Errorf("** %s: %v, wanted default requiredness", fd.Name, fd.Requiredness)
		}
	}
	deepEqual(t, names, []string{"name", "maxVersions", "compression", "inMemory", "bloomFilterType", "bloomFilterVectorSize", "bloomFilterNbHashes", "blockCacheEnabled", "timeToLive"})
	deepEqual(t, ColumnDescriptorCodec.Kind(), tstruct.KindStruct)
	deepEqual(t, NewColumnDescriptor().Validate(), nil)
}

func TestDecodeColumnDescriptorAsCell(t *testing.T) {
	data := must(ColumnDescriptorType.Marshal(tstruct.Binary, NewColumnDescriptor().SetName([]byte("cf1"))))
	cell := must(TCellType.Decode(tstruct.Binary, data))
	deepEqual(t, string(cell.Value()), "cf1")
	deepEqual(t, cell.Timestamp(), int64(0))
	deepEqual(t, cell.IsSetTimestamp(), false)
}

func TestBatchMutationRoundTrip(t *testing.T) {
	bm := NewBatchMutation([]byte("row1"), NewPut([]byte("f:a"), []byte("1")))
	bm.AddToMutations(NewDelete([]byte("f:b")))
	deepEqual(t, bm.String(), `BatchMutation(row:"row1", mutations:[Mutation(isDelete:false, column:"f:a", value:"1", writeToWAL:true), Mutation(isDelete:true, column:"f:b", value:null, writeToWAL:true)])`)

	for _, proto := range allProtocols {
		decoded := must(BatchMutationType.Decode(proto, must(BatchMutationType.Marshal(proto, bm))))
		deepEqual(t, decoded.Equal(bm), true)
		deepEqual(t, len(decoded.Mutations()), 2)
		deepEqual(t, decoded.Mutations()[1].IsSetValue(), false)
		deepEqual(t, decoded.Mutations()[0].WriteToWAL(), true)
	}

	empty := NewBatchMutation([]byte("row2"))
	deepEqual(t, empty.IsSetMutations(), false)
	decoded := must(BatchMutationType.Decode(tstruct.Binary, must(BatchMutationType.Marshal(tstruct.Binary, empty))))
	deepEqual(t, decoded.IsSetMutations(), false)
}

func TestRowResultRoundTrip(t *testing.T) {
	rr := NewTRowResult([]byte("row1")).
		PutToColumns("f:b", NewTCell([]byte("2"), 200)).
		PutToColumns("f:a", NewTCell([]byte("1"), 100))
	deepEqual(t, rr.String(), `TRowResult(row:"row1", columns:{"f:a": TCell(value:"1", timestamp:100), "f:b": TCell(value:"2", timestamp:200)})`)

	for _, proto := range allProtocols {
		decoded := must(TRowResultType.Decode(proto, must(TRowResultType.Marshal(proto, rr))))
		deepEqual(t, decoded.Equal(rr), true)
		deepEqual(t, decoded.Columns()["f:b"].Timestamp(), int64(200))
	}
}

func TestErrorStructs(t *testing.T) {
	var err error = NewIllegalArgument("no such family")
	deepEqual(t, err.Error(), "hbase: illegal argument: no such family")
	var ia *IllegalArgument
	if !errors.As(err, &ia) || !ia.IsSetMessage() {
		t.Errorf("** errors.As failed for %v", err)
	}

	for _, proto := range allProtocols {
		ioe := NewIOError("disk full")
		decoded := must(IOErrorType.Decode(proto, must(IOErrorType.Marshal(proto, ioe))))
		deepEqual(t, decoded.Error(), "hbase: I/O error: disk full")

		ae := must(AlreadyExistsType.Decode(proto, must(AlreadyExistsType.Marshal(proto, NewAlreadyExists("t1")))))
		deepEqual(t, ae.Message(), "t1")
	}

	blank := must(IOErrorType.Decode(tstruct.Binary, x("00")))
	deepEqual(t, blank.IsSetMessage(), false)
}

func TestColumnDescriptorCollection(t *testing.T) {
	s := tstruct.NewMemStore(tstruct.StoreOptions{Protocol: tstruct.MsgPack})
	defer s.Close()
	coll := tstruct.NewCollection(s, ColumnDescriptorType)
	for _, name := range []string{"cf2", "cf1"} {
		ensure(coll.Put([]byte(name), NewColumnDescriptor().SetName([]byte(name))))
	}
	all := must(coll.All())
	deepEqual(t, len(all), 2)
	deepEqual(t, string(all[0].Name()), "cf1")
	deepEqual(t, all[0].IsSetMaxVersions(), true)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ensure(err error) {
	if err != nil {
		panic(err)
	}
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func x(data string) []byte {
	data = strings.ReplaceAll(data, " ", "")
	return must(hex.DecodeString(data))
}
