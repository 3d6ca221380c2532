package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(1965, time.July, 31)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1965-07-31"`, string(data))
}

func TestDateMarshalJSONZero(t *testing.T) {
	var d Date
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: `"2001-09-11"`, want: NewDate(2001, time.September, 11)},
		{name: "null becomes zero", input: `null`, want: Date{}},
		{name: "empty string becomes zero", input: `""`, want: Date{}},
		{name: "wrong layout", input: `"11/09/2001"`, wantErr: true},
		{name: "not a string", input: `20010911`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.Equal(tt.want.Time), "got %s, want %s", d, tt.want)
		})
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1990-03-05", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	d := NewDate(1990, time.March, 5)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, d.Time, v)

	var zero Date
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
