package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMillisecondTimestamp_JSON(t *testing.T) {
	var ts MillisecondTimestamp
	assert.NoError(t, json.Unmarshal([]byte(`"1513167855000"`), &ts))
	assert.Equal(t, int64(1513167855000), ts.UnixMilli())

	assert.NoError(t, json.Unmarshal([]byte(`1513167855123`), &ts))
	assert.Equal(t, int64(1513167855123), ts.UnixMilli())

	out, err := json.Marshal(ts)
	assert.NoError(t, err)
	assert.Equal(t, "1513167855123", string(out))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &ts))
}
