package tstruct

import (
	"math/bits"
	"slices"
)

// Presence is a fixed-size bitset recording which tracked fields hold an
// explicitly assigned value. Indices are assigned by the catalog, not by tags.
//
// The zero value is usable; words are allocated on the first MarkSet.
type Presence struct {
	words []uint64
}

func NewPresence(n int) Presence {
	if n <= 0 {
		return Presence{}
	}
	return Presence{words: make([]uint64, (n+63)/64)}
}

func (p *Presence) MarkSet(i int) {
	w := i / 64
	for w >= len(p.words) {
		p.words = append(p.words, 0)
	}
	p.words[w] |= 1 << (uint(i) % 64)
}

func (p *Presence) MarkUnset(i int) {
	w := i / 64
	if w < len(p.words) {
		p.words[w] &^= 1 << (uint(i) % 64)
	}
}

func (p *Presence) Assign(i int, set bool) {
	if set {
		p.MarkSet(i)
	} else {
		p.MarkUnset(i)
	}
}

func (p Presence) IsSet(i int) bool {
	w := i / 64
	return w < len(p.words) && p.words[w]&(1<<(uint(i)%64)) != 0
}

// Count returns the number of set bits.
func (p Presence) Count() int {
	var n int
	for _, w := range p.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (p Presence) Clone() Presence {
	return Presence{words: slices.Clone(p.words)}
}

func (p *Presence) Reset() {
	clear(p.words)
}
