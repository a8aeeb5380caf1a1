package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    string
		valid   bool
		wantErr bool
	}{
		{name: "nil", value: nil, valid: false},
		{name: "time", value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: "2024-01-01", valid: true},
		{name: "bytes", value: []byte("2024-03-15"), want: "2024-03-15", valid: true},
		{name: "string", value: "2024-12-31", want: "2024-12-31", valid: true},
		{name: "timestamp text", value: "2024-05-06T00:00:00Z", want: "2024-05-06", valid: true},
		{name: "garbage", value: "tomorrow", wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.valid, d.Valid)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	c := Course{ID: 1, StartDate: NewDate(2024, time.January, 1)}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"start_date":"2024-01-01"`)

	b, err = json.Marshal(Course{ID: 2})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"start_date":null`)

	var decoded Course
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"start_date":"2025-02-03"}`), &decoded))
	assert.True(t, decoded.StartDate.Valid)
	assert.Equal(t, "2025-02-03", decoded.StartDate.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"start_date":null}`), &decoded))
	assert.False(t, decoded.StartDate.Valid)
}
