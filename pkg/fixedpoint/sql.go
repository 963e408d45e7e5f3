package fixedpoint

import (
	"database/sql/driver"
	"fmt"
)

// Value implements the driver.Valuer interface, decimals are written as their string form.
func (v Value) Value() (driver.Value, error) {
	return v.String(), nil
}

func (v *Value) Scan(src interface{}) error {
	switch d := src.(type) {
	case nil:
		*v = Zero
		return nil

	case int64:
		*v = NewFromInt(d)
		return nil

	case float64:
		*v = NewFromFloat(d)
		return nil

	case []byte:
		return v.scanString(string(d))

	case string:
		return v.scanString(d)
	}

	return fmt.Errorf("fixedpoint.Value scan error, type %T is not supported, value: %+v", src, src)
}

func (v *Value) scanString(s string) error {
	parsed, err := NewFromString(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
