package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeString
		wantErr  bool
	}{
		{name: "canonical", input: "09:05", expected: "09:05"},
		{name: "single digit hour", input: "9:05", expected: "09:05"},
		{name: "midnight", input: "00:00", expected: "00:00"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "single digit minute", input: "10:5", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "seconds are not accepted", input: "14:30:00", wantErr: true},
		{name: "seconds out of range", input: "10:30:99", wantErr: true},
		{name: "non-numeric seconds", input: "10:30:abc", wantErr: true},
		{name: "trailing colon", input: "10:30:", wantErr: true},
		{name: "signed hour", input: "+9:30", wantErr: true},
		{name: "negative hour", input: "-0:30", wantErr: true},
		{name: "three digit hour", input: "009:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("13:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, m)

	_, err = TimeString("").Minutes()
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("11:00:00")))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_ScanSeconds(t *testing.T) {
	tests := []struct {
		name     string
		src      interface{}
		expected TimeString
		wantErr  bool
	}{
		{name: "postgres time", src: "14:30:00", expected: "14:30"},
		{name: "seconds dropped", src: []byte("09:05:59"), expected: "09:05"},
		{name: "without seconds", src: "09:05", expected: "09:05"},
		{name: "seconds out of range", src: "10:30:99", wantErr: true},
		{name: "non-numeric seconds", src: "10:30:abc", wantErr: true},
		{name: "empty seconds", src: "10:30:", wantErr: true},
		{name: "signed hour", src: "+9:30:00", wantErr: true},
		{name: "four parts", src: "10:30:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tt.src)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ts)
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("08:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("8.30").Value()
	assert.Error(t, err)
}
