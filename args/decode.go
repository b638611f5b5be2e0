package args

import (
	"fmt"
	"reflect"
	"strings"
)

// Decode fills a command struct from raw option values keyed by option name.
// dst must be a non-nil pointer to a struct. A missing value for a
// non-pointer field fails with ErrInvalidType; a missing value for a pointer
// field leaves it nil. The struct is either fully populated or the error is
// returned before any handler sees it.
func Decode(dst any, opts map[string]Value) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: decode target must be a non-nil struct pointer", ErrSchema)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() || f.Tag.Get("option") == "-" {
			continue
		}
		name := f.Tag.Get("option")
		if name == "" {
			name = strings.ToLower(f.Name)
		}

		v, present := opts[name]
		fv := rv.Field(i)

		if f.Type.Kind() == reflect.Ptr {
			if !present {
				continue
			}
			fv.Set(reflect.New(f.Type.Elem()))
			if err := decodeInto(fv.Elem(), v); err != nil {
				return fmt.Errorf("option %q: %w", name, err)
			}
			continue
		}

		if !present {
			return fmt.Errorf("option %q: missing required value: %w", name, ErrInvalidType)
		}
		if err := decodeInto(fv, v); err != nil {
			return fmt.Errorf("option %q: %w", name, err)
		}
	}
	return nil
}

func decodeInto(fv reflect.Value, v Value) error {
	switch fv.Type() {
	case charType:
		s, ok := v.AsString()
		if !ok || s == "" {
			return fmt.Errorf("expected a non-empty string, got %s: %w", v.Kind(), ErrInvalidType)
		}
		for _, r := range s {
			fv.SetInt(int64(r))
			break
		}
		return nil
	case userIDType:
		id, ok := v.AsUser()
		if !ok {
			return kindMismatch(KindUser, v)
		}
		fv.SetString(id)
		return nil
	case roleIDType:
		id, ok := v.AsRole()
		if !ok {
			return kindMismatch(KindRole, v)
		}
		fv.SetString(id)
		return nil
	case channelIDType:
		id, ok := v.AsChannel()
		if !ok {
			return kindMismatch(KindChannel, v)
		}
		fv.SetString(id)
		return nil
	case mentionableType:
		id, ok := v.AsMentionable()
		if !ok {
			return kindMismatch(KindMentionable, v)
		}
		fv.SetString(id)
		return nil
	}

	if cp, ok := fv.Interface().(ChoiceProvider); ok {
		raw, isStr := v.AsString()
		if !isStr {
			return kindMismatch(KindString, v)
		}
		for _, c := range cp.Choices() {
			if c.Value == raw {
				fv.SetString(raw)
				return nil
			}
		}
		return fmt.Errorf("%q matches no declared choice: %w", raw, ErrInvalidType)
	}
	if fv.CanAddr() {
		if dec, ok := fv.Addr().Interface().(ValueDecoder); ok {
			return dec.DecodeValue(v)
		}
	}

	switch fv.Kind() {
	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return kindMismatch(KindString, v)
		}
		fv.SetString(s)
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return kindMismatch(KindBoolean, v)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := v.AsNumber()
		if !ok {
			return kindMismatch(KindNumber, v)
		}
		fv.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, ok := v.AsNumber()
		if !ok {
			return kindMismatch(KindNumber, v)
		}
		fv.SetUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		f, ok := v.AsNumber()
		if !ok {
			return kindMismatch(KindNumber, v)
		}
		fv.SetFloat(f)
	default:
		return fmt.Errorf("%w: unsupported option type %s", ErrSchema, fv.Type())
	}
	return nil
}

func kindMismatch(want ValueKind, got Value) error {
	return fmt.Errorf("expected %s, got %s: %w", want, got.Kind(), ErrInvalidType)
}
