package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MillisecondTimestamp is a point in time encoded as unix milliseconds on the wire.
type MillisecondTimestamp time.Time

func NewMillisecondTimestampFromInt(i int64) MillisecondTimestamp {
	return MillisecondTimestamp(time.UnixMilli(i))
}

func (t MillisecondTimestamp) String() string {
	return time.Time(t).UTC().Format(time.RFC3339Nano)
}

func (t MillisecondTimestamp) Time() time.Time {
	return time.Time(t)
}

func (t MillisecondTimestamp) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t MillisecondTimestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func (t *MillisecondTimestamp) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch vt := v.(type) {
	case string:
		if vt == "" {
			*t = MillisecondTimestamp(time.Time{})
			return nil
		}

		m, err := strconv.ParseInt(vt, 10, 64)
		if err != nil {
			return err
		}

		*t = NewMillisecondTimestampFromInt(m)
		return nil

	case float64:
		*t = NewMillisecondTimestampFromInt(int64(vt))
		return nil

	case nil:
		*t = MillisecondTimestamp(time.Time{})
		return nil
	}

	return fmt.Errorf("can not parse %T %+v as millisecond timestamp", v, v)
}
