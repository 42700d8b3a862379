package tstruct

import (
	"context"
	"fmt"
	"log/slog"
)

// Write validates r, then emits it as StructBegin, Field*, FieldStop,
// StructEnd. Fields are written in declaration order when present: required
// fields always, nilable fields when non-nil, string and optional fields when
// their presence bit is set, and default value fields unconditionally.
//
// Writing is not transactional. A failure in the middle leaves a partial
// struct in the sink.
func (st *StructType[R]) Write(p ProtocolWriter, r *R) error {
	if err := st.Validate(r); err != nil {
		return err
	}
	if err := p.WriteStructBegin(st.name); err != nil {
		return err
	}
	for _, f := range st.fields {
		if !f.present(r) {
			continue
		}
		fd := f.Descriptor()
		if err := p.WriteFieldBegin(fd.Name, fd.WireType(), fd.Tag); err != nil {
			return err
		}
		if err := f.write(p, r); err != nil {
			return fmt.Errorf("%s.%s: %w", st.name, fd.Name, err)
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(); err != nil {
		return err
	}
	return p.WriteStructEnd()
}

// Read decodes one struct from p into r, assigning each known field through
// its setter. Fields with unknown tags, and known tags arriving with a
// different wire type, are skipped. Once the struct ends, every required
// field must have been read (or, for nilable kinds, be non-nil).
//
// Read does not reset r first and does not roll back on failure: fields
// decoded before an error stay assigned.
func (st *StructType[R]) Read(p ProtocolReader, r *R) error {
	if err := p.ReadStructBegin(); err != nil {
		return err
	}
	var seen Presence
	for {
		typ, tag, err := p.ReadFieldBegin()
		if err != nil {
			return err
		}
		if typ == TypeStop {
			break
		}

		fd, known := st.catalog.FindByTag(tag)
		switch {
		case !known:
			st.logSkip(p, "unknown field", tag, typ, nil)
			err = skip(p, typ, maxSkipDepth)
		case fd.WireType() != typ:
			st.logSkip(p, "wire type mismatch", tag, typ, fd)
			err = skip(p, typ, maxSkipDepth)
		default:
			err = st.field(fd).read(p, r)
			if err != nil {
				err = fmt.Errorf("%s.%s: %w", st.name, fd.Name, err)
			}
			seen.MarkSet(fd.Index)
		}
		if err != nil {
			return err
		}

		if err := p.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := p.ReadStructEnd(); err != nil {
		return err
	}

	for _, f := range st.fields {
		fd := f.Descriptor()
		if !fd.Required() {
			continue
		}
		if fd.Kind.Nilable() {
			if !f.isSet(r) {
				return st.missing(fd)
			}
		} else if !seen.IsSet(fd.Index) {
			return st.missing(fd)
		}
	}
	return nil
}

// ReadNew decodes one struct from p into a cleared record.
func (st *StructType[R]) ReadNew(p ProtocolReader) (*R, error) {
	r := new(R)
	st.Clear(r)
	if err := st.Read(p, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (st *StructType[R]) logSkip(p ProtocolReader, reason string, tag int16, typ WireType, fd *FieldDescriptor) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String("struct", st.name),
		slog.Int("tag", int(tag)),
		slog.String("type", typ.String()),
	}
	if fd != nil {
		attrs = append(attrs, slog.String("field", fd.Name), slog.String("declared", fd.WireType().String()))
	}
	if off := offsetOf(p); off >= 0 {
		attrs = append(attrs, slog.Int64("off", off))
	}
	slog.LogAttrs(context.Background(), slog.LevelDebug, "tstruct: skipping "+reason, attrs...)
}
