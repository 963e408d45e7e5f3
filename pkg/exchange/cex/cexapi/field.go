package cexapi

import (
	"strconv"

	"github.com/valyala/fastjson"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

// Field is an optional scalar of a venue payload kept in its wire text.
// The venue quotes most numbers as strings and omits fields freely,
// so a Field records presence separately from the value.
type Field struct {
	Text  string
	Valid bool
}

func NewField(text string) Field {
	return Field{Text: text, Valid: true}
}

// fieldOf reads a scalar. null and the empty string are treated as absent.
func fieldOf(v *fastjson.Value) Field {
	if v == nil {
		return Field{}
	}

	switch v.Type() {
	case fastjson.TypeNull:
		return Field{}

	case fastjson.TypeString:
		s := string(v.GetStringBytes())
		if s == "" {
			return Field{}
		}
		return NewField(s)
	}

	return NewField(v.String())
}

func getField(v *fastjson.Value, key string) Field {
	return fieldOf(v.Get(key))
}

func getString(v *fastjson.Value, key string) string {
	return getField(v, key).Text
}

// Number returns nil for an absent field and a MalformedPayload error for a present one
// that is not a number or does not fit a fixedpoint.Value.
func (f Field) Number() (*fixedpoint.Value, error) {
	if !f.Valid {
		return nil, nil
	}

	n, err := fixedpoint.NewFromString(f.Text)
	if err != nil {
		return nil, types.NewMalformedPayloadError("%q is not a number: %v", f.Text, err)
	}

	return &n, nil
}

// NumberOr returns def for an absent field.
func (f Field) NumberOr(def fixedpoint.Value) (fixedpoint.Value, error) {
	n, err := f.Number()
	if err != nil {
		return def, err
	}

	if n == nil {
		return def, nil
	}

	return *n, nil
}

// Int64 parses an integer field, ok is false when the field is absent.
func (f Field) Int64() (i int64, ok bool, err error) {
	if !f.Valid {
		return 0, false, nil
	}

	i, err = strconv.ParseInt(f.Text, 10, 64)
	if err != nil {
		fv, ferr := strconv.ParseFloat(f.Text, 64)
		if ferr != nil {
			return 0, false, types.NewMalformedPayloadError("%q is not an integer", f.Text)
		}
		i = int64(fv)
	}

	return i, true, nil
}

func (f Field) String() string {
	return f.Text
}

func rawOf(v *fastjson.Value) []byte {
	if v == nil {
		return nil
	}
	return v.MarshalTo(nil)
}
