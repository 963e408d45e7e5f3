package fixedpoint

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultPrecision = 8

const DefaultPow = 1e8

// Value is a decimal number stored as an int64 scaled by DefaultPow.
type Value int64

const Zero = Value(0)

const One = Value(int64(DefaultPow))

var (
	ErrOutOfRange = errors.New("number is out of the fixedpoint range")
	ErrTooPrecise = errors.New("number has more fractional digits than the fixedpoint precision")
)

var ratPow = new(big.Rat).SetInt64(int64(DefaultPow))

// maxFloat is the largest magnitude whose scaled form still fits an int64.
const maxFloat = float64(math.MaxInt64) / DefaultPow

func (v Value) Float64() float64 {
	return float64(v) / DefaultPow
}

func (v Value) Int64() int64 {
	return int64(v)
}

func (v Value) Mul(v2 Value) Value {
	return NewFromFloat(v.Float64() * v2.Float64())
}

// MulChecked is Mul that fails with ErrOutOfRange instead of wrapping around.
func (v Value) MulChecked(v2 Value) (Value, error) {
	return newFromFloatChecked(v.Float64() * v2.Float64())
}

func (v Value) MulFloat64(v2 float64) Value {
	return NewFromFloat(v.Float64() * v2)
}

func (v Value) Div(v2 Value) Value {
	return NewFromFloat(v.Float64() / v2.Float64())
}

func (v Value) Sub(v2 Value) Value {
	return Value(int64(v) - int64(v2))
}

func (v Value) Add(v2 Value) Value {
	return Value(int64(v) + int64(v2))
}

func (v Value) Neg() Value {
	return -v
}

func (v Value) Abs() Value {
	if v < 0 {
		return -v
	}
	return v
}

func (v Value) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (v Value) IsZero() bool {
	return v == 0
}

func (v Value) Compare(v2 Value) int {
	switch {
	case v > v2:
		return 1
	case v < v2:
		return -1
	}
	return 0
}

func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
}

// FormatString formats the value with the given number of fractional digits, truncating the rest.
func (v Value) FormatString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	if prec > DefaultPrecision {
		prec = DefaultPrecision
	}

	pow := math.Pow10(DefaultPrecision - prec)
	truncated := math.Trunc(float64(v)/pow) * pow
	return strconv.FormatFloat(truncated/DefaultPow, 'f', prec, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalYAML(unmarshal func(a interface{}) error) (err error) {
	var f float64
	if err = unmarshal(&f); err == nil {
		*v, err = newFromFloatChecked(f)
		return
	}

	var s string
	if err = unmarshal(&s); err == nil {
		nv, err2 := NewFromString(s)
		if err2 == nil {
			*v = nv
			return
		}
		err = err2
	}

	return err
}

// UnmarshalJSON accepts both JSON numbers and numeric strings, since most venues quote decimals.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Zero
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		if s == "" {
			*v = Zero
			return nil
		}

		nv, err := NewFromString(s)
		if err != nil {
			return err
		}

		*v = nv
		return nil
	}

	nv, err := NewFromString(string(data))
	if err != nil {
		return errors.Wrapf(err, "unsupported fixedpoint value: %s", data)
	}

	*v = nv
	return nil
}

// NewFromString parses a decimal text exactly. It fails with ErrOutOfRange when the value
// does not fit the scaled int64 and with ErrTooPrecise when it carries more than
// DefaultPrecision fractional digits, instead of wrapping around or rounding.
func NewFromString(input string) (Value, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Zero, errors.New("empty string is not a number")
	}

	// big.Rat also takes "a/b" fractions
	if strings.ContainsRune(input, '/') {
		return Zero, errors.Errorf("%q is not a number", input)
	}

	r, ok := new(big.Rat).SetString(input)
	if !ok {
		return Zero, errors.Errorf("%q is not a number", input)
	}

	r.Mul(r, ratPow)
	if !r.IsInt() {
		return Zero, errors.Wrapf(ErrTooPrecise, "%q", input)
	}

	n := r.Num()
	if !n.IsInt64() {
		return Zero, errors.Wrapf(ErrOutOfRange, "%q", input)
	}

	return Value(n.Int64()), nil
}

func MustNewFromString(input string) Value {
	v, err := NewFromString(input)
	if err != nil {
		panic(errors.Wrapf(err, "can not parse %q as fixedpoint value", input))
	}
	return v
}

func NewFromFloat(val float64) Value {
	return Value(int64(math.Round(val * DefaultPow)))
}

func newFromFloatChecked(val float64) (Value, error) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return Zero, errors.Errorf("%v is not a finite number", val)
	}

	if math.Abs(val) >= maxFloat {
		return Zero, errors.Wrapf(ErrOutOfRange, "%v", val)
	}

	return NewFromFloat(val), nil
}

func NewFromInt(val int64) Value {
	return Value(val * DefaultPow)
}
