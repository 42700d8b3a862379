package tstruct

import "fmt"

func (st *StructType[R]) fieldByName(name string) (fieldImpl[R], error) {
	fd, ok := st.catalog.FindByName(name)
	if !ok {
		return nil, &UnknownFieldError{Struct: st.name, Name: name}
	}
	return st.field(fd), nil
}

func (st *StructType[R]) fieldByTag(tag int16) (fieldImpl[R], error) {
	fd, ok := st.catalog.FindByTag(tag)
	if !ok {
		return nil, &UnknownFieldError{Struct: st.name, Tag: tag}
	}
	return st.field(fd), nil
}

// GetFieldValue returns the named field's value boxed in an interface, or nil
// for an absent nilable field.
func (st *StructType[R]) GetFieldValue(r *R, name string) (any, error) {
	f, err := st.fieldByName(name)
	if err != nil {
		return nil, err
	}
	return f.getAny(r), nil
}

func (st *StructType[R]) GetFieldValueByTag(r *R, tag int16) (any, error) {
	f, err := st.fieldByTag(tag)
	if err != nil {
		return nil, err
	}
	return f.getAny(r), nil
}

// SetFieldValue assigns v to the named field through its setter. v must have
// exactly the field's Go type (int32 for I32, []byte for BYTES, and so on);
// a nil v unsets the field.
func (st *StructType[R]) SetFieldValue(r *R, name string, v any) error {
	f, err := st.fieldByName(name)
	if err != nil {
		return err
	}
	return st.setAny(f, r, v)
}

func (st *StructType[R]) SetFieldValueByTag(r *R, tag int16, v any) error {
	f, err := st.fieldByTag(tag)
	if err != nil {
		return err
	}
	return st.setAny(f, r, v)
}

func (st *StructType[R]) setAny(f fieldImpl[R], r *R, v any) error {
	if !f.setAny(r, v) {
		fd := f.Descriptor()
		return &TypeMismatchError{Struct: st.name, Field: fd.Name, Want: fd.Kind, Got: fmt.Sprintf("%T", v)}
	}
	return nil
}

func (st *StructType[R]) IsFieldSet(r *R, name string) (bool, error) {
	f, err := st.fieldByName(name)
	if err != nil {
		return false, err
	}
	return f.isSet(r), nil
}

func (st *StructType[R]) IsFieldSetByTag(r *R, tag int16) (bool, error) {
	f, err := st.fieldByTag(tag)
	if err != nil {
		return false, err
	}
	return f.isSet(r), nil
}

func (st *StructType[R]) UnsetFieldValue(r *R, name string) error {
	f, err := st.fieldByName(name)
	if err != nil {
		return err
	}
	f.unset(r)
	return nil
}

func (st *StructType[R]) UnsetFieldValueByTag(r *R, tag int16) error {
	f, err := st.fieldByTag(tag)
	if err != nil {
		return err
	}
	f.unset(r)
	return nil
}
