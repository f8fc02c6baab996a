package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{
			name:  "plain integer",
			input: "1250",
			want:  125000,
		},
		{
			name:  "two decimal places",
			input: "12.50",
			want:  1250,
		},
		{
			name:  "one decimal place",
			input: "0.1",
			want:  10,
		},
		{
			name:  "sub-cent rounds to nearest",
			input: "0.005",
			want:  1,
		},
		{
			name:  "zero",
			input: "0",
			want:  0,
		},
		{
			name:  "negative is representable",
			input: "-3.25",
			want:  -325,
		},
		{
			name:    "not a number",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		want    Amount
		wantErr bool
	}{
		{
			name:  "whole units",
			input: 250,
			want:  25000,
		},
		{
			name:  "fractional",
			input: 12.34,
			want:  1234,
		},
		{
			name:  "rounds float noise",
			input: 0.1 + 0.2,
			want:  30,
		},
		{
			name:    "negative rejected",
			input:   -5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromFloat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithmeticIsExact(t *testing.T) {
	// A sum that loses precision in binary floating point stays exact
	// in minor units.
	var total Amount
	tenth := MustParse("0.10")
	for i := 0; i < 1000; i++ {
		total = total.Add(tenth)
	}
	assert.Equal(t, MustParse("100"), total)
	assert.Equal(t, "100", total.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.5", MustParse("12.50").String())
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "-3.25", MustParse("-3.25").String())
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Amount
	}{
		{name: "number", in: `1250.5`, want: 125050},
		{name: "integer number", in: `1000`, want: 100000},
		{name: "quoted string", in: `"42.42"`, want: 4242},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a)

			out, err := json.Marshal(a)
			require.NoError(t, err)

			var back Amount
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, a, back, "marshal/unmarshal must be lossless")
		})
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	var a Amount
	err := json.Unmarshal([]byte(`"not money"`), &a)
	require.Error(t, err)
}

func TestMin(t *testing.T) {
	assert.Equal(t, Amount(5), Min(5, 10))
	assert.Equal(t, Amount(5), Min(10, 5))
	assert.Equal(t, Amount(-1), Min(-1, 0))
}
