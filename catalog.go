package tstruct

import (
	"fmt"
	"strconv"
)

type Requiredness int8

const (
	// FieldDefault fields have no explicit requiredness: value-kind ones carry a
	// presence bit but are written whether or not it is set.
	FieldDefault Requiredness = iota
	// FieldRequired fields must hold a value to encode, and must appear in the
	// stream to decode.
	FieldRequired
	// FieldOptional fields are written only when present.
	FieldOptional
)

func (r Requiredness) String() string {
	switch r {
	case FieldDefault:
		return "default"
	case FieldRequired:
		return "required"
	case FieldOptional:
		return "optional"
	default:
		return "Requiredness(" + strconv.Itoa(int(r)) + ")"
	}
}

// FieldDescriptor declares one field of a struct type.
type FieldDescriptor struct {
	Tag          int16
	Name         string
	Kind         Kind
	Requiredness Requiredness

	// Index is the position in declaration order.
	Index int

	// PresenceIndex is the bit tracking this field, or -1 when presence is
	// implied (nilable kinds and required value kinds).
	PresenceIndex int

	HasDefault bool
}

func (fd *FieldDescriptor) WireType() WireType {
	return fd.Kind.WireType()
}

func (fd *FieldDescriptor) Required() bool {
	return fd.Requiredness == FieldRequired
}

func (fd *FieldDescriptor) Tracked() bool {
	return fd.PresenceIndex >= 0
}

func (fd *FieldDescriptor) String() string {
	return fmt.Sprintf("%d:%s %v %s", fd.Tag, fd.Requiredness, fd.Kind, fd.Name)
}

// Catalog is the ordered, immutable field list of a struct type.
type Catalog struct {
	name    string
	fields  []*FieldDescriptor
	byTag   map[int16]*FieldDescriptor
	byName  map[string]*FieldDescriptor
	tracked int
}

func newCatalog(name string) *Catalog {
	return &Catalog{
		name:   name,
		byTag:  make(map[int16]*FieldDescriptor),
		byName: make(map[string]*FieldDescriptor),
	}
}

func (c *Catalog) Name() string {
	return c.name
}

// Fields returns the descriptors in declaration order. Callers must not
// modify them.
func (c *Catalog) Fields() []*FieldDescriptor {
	return c.fields
}

func (c *Catalog) Len() int {
	return len(c.fields)
}

// TrackedCount is the number of presence bits an instance needs.
func (c *Catalog) TrackedCount() int {
	return c.tracked
}

// FindByTag reports false for tags the catalog does not declare; decoding
// skips such fields.
func (c *Catalog) FindByTag(tag int16) (*FieldDescriptor, bool) {
	fd, ok := c.byTag[tag]
	return fd, ok
}

func (c *Catalog) FindByName(name string) (*FieldDescriptor, bool) {
	fd, ok := c.byName[name]
	return fd, ok
}

func (c *Catalog) add(tag int16, name string, kind Kind, req Requiredness, hasDefault bool) *FieldDescriptor {
	if name == "" {
		panic(fmt.Errorf("%s: field %d has no name", c.name, tag))
	}
	if tag <= 0 {
		panic(fmt.Errorf("%s.%s: field tag must be positive, got %d", c.name, name, tag))
	}
	if kind.Nilable() && hasDefault {
		panic(fmt.Errorf("%s.%s: %v fields cannot declare a default", c.name, name, kind))
	}
	switch req {
	case FieldDefault, FieldRequired, FieldOptional:
		break
	default:
		panic(fmt.Errorf("%s.%s: invalid requiredness %v", c.name, name, req))
	}
	if prev := c.byTag[tag]; prev != nil {
		panic(fmt.Errorf("%s: duplicate field tag %d (%s and %s)", c.name, tag, prev.Name, name))
	}
	if c.byName[name] != nil {
		panic(fmt.Errorf("%s: duplicate field name %q", c.name, name))
	}

	fd := &FieldDescriptor{
		Tag:           tag,
		Name:          name,
		Kind:          kind,
		Requiredness:  req,
		Index:         len(c.fields),
		PresenceIndex: -1,
		HasDefault:    hasDefault,
	}
	if !kind.Nilable() && req != FieldRequired {
		fd.PresenceIndex = c.tracked
		c.tracked++
	}
	c.fields = append(c.fields, fd)
	c.byTag[tag] = fd
	c.byName[name] = fd
	return fd
}
