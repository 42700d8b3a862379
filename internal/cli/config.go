package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/andreyvit/tstruct/hbase"
)

// familyConfig is one [[family]] table. Attributes left out of the file stay
// unset on the descriptor.
type familyConfig struct {
	Name                  string  `toml:"name"`
	MaxVersions           *int32  `toml:"max_versions"`
	Compression           *string `toml:"compression"`
	InMemory              *bool   `toml:"in_memory"`
	BloomFilterType       *string `toml:"bloom_filter_type"`
	BloomFilterVectorSize *int32  `toml:"bloom_filter_vector_size"`
	BloomFilterNbHashes   *int32  `toml:"bloom_filter_nb_hashes"`
	BlockCacheEnabled     *bool   `toml:"block_cache_enabled"`
	TimeToLive            *int32  `toml:"time_to_live"`
}

type fileConfig struct {
	Families []familyConfig `toml:"family"`
}

func loadFamilies(path string) ([]*hbase.ColumnDescriptor, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load families: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("load families: unknown keys %v", undec)
	}
	if len(raw.Families) == 0 {
		return nil, fmt.Errorf("load families: %s defines no [[family]] tables", path)
	}

	seen := make(map[string]bool)
	out := make([]*hbase.ColumnDescriptor, 0, len(raw.Families))
	for i, fc := range raw.Families {
		name := strings.TrimSpace(fc.Name)
		if name == "" {
			return nil, fmt.Errorf("load families: family #%d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("load families: duplicate family %q", name)
		}
		seen[name] = true
		out = append(out, fc.descriptor(name))
	}
	return out, nil
}

func (fc *familyConfig) descriptor(name string) *hbase.ColumnDescriptor {
	cd := hbase.NewColumnDescriptor().SetName([]byte(name))
	if fc.MaxVersions != nil {
		cd.SetMaxVersions(*fc.MaxVersions)
	}
	if fc.Compression != nil {
		cd.SetCompression(strings.ToUpper(strings.TrimSpace(*fc.Compression)))
	}
	if fc.InMemory != nil {
		cd.SetInMemory(*fc.InMemory)
	}
	if fc.BloomFilterType != nil {
		cd.SetBloomFilterType(strings.ToUpper(strings.TrimSpace(*fc.BloomFilterType)))
	}
	if fc.BloomFilterVectorSize != nil {
		cd.SetBloomFilterVectorSize(*fc.BloomFilterVectorSize)
	}
	if fc.BloomFilterNbHashes != nil {
		cd.SetBloomFilterNbHashes(*fc.BloomFilterNbHashes)
	}
	if fc.BlockCacheEnabled != nil {
		cd.SetBlockCacheEnabled(*fc.BlockCacheEnabled)
	}
	if fc.TimeToLive != nil {
		cd.SetTimeToLive(*fc.TimeToLive)
	}
	return cd
}
