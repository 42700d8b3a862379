package tstruct

import "testing"

func TestPresence(t *testing.T) {
	var p Presence
	deepEqual(t, p.IsSet(0), false)
	deepEqual(t, p.IsSet(200), false)
	deepEqual(t, p.Count(), 0)

	p.MarkSet(3)
	p.MarkSet(70)
	deepEqual(t, p.IsSet(3), true)
	deepEqual(t, p.IsSet(4), false)
	deepEqual(t, p.IsSet(70), true)
	deepEqual(t, p.Count(), 2)

	p.MarkUnset(3)
	p.MarkUnset(500)
	deepEqual(t, p.IsSet(3), false)
	deepEqual(t, p.Count(), 1)

	p.Assign(5, true)
	deepEqual(t, p.IsSet(5), true)
	p.Assign(5, false)
	deepEqual(t, p.IsSet(5), false)
}

func TestPresenceCloneIsIndependent(t *testing.T) {
	p := NewPresence(10)
	p.MarkSet(1)
	c := p.Clone()
	c.MarkSet(2)
	p.MarkUnset(1)
	deepEqual(t, p.IsSet(2), false)
	deepEqual(t, c.IsSet(1), true)
	deepEqual(t, c.IsSet(2), true)
}

func TestPresenceReset(t *testing.T) {
	p := NewPresence(100)
	p.MarkSet(0)
	p.MarkSet(99)
	p.Reset()
	deepEqual(t, p.Count(), 0)
	deepEqual(t, len(p.words), 2)
}
