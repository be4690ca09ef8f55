package guid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCanonicalizesCase(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "05024756-765e-41a9-89d7-1407436d9a58", "05024756-765e-41a9-89d7-1407436d9a58"},
		{"uppercase", "05024756-765E-41A9-89D7-1407436D9A58", "05024756-765e-41a9-89d7-1407436d9a58"},
		{"mixed case", "05024756-765E-41a9-89D7-1407436d9A58", "05024756-765e-41a9-89d7-1407436d9a58"},
		{"surrounding whitespace", "  05024756-765e-41a9-89d7-1407436d9a58\n", "05024756-765e-41a9-89d7-1407436d9a58"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrEmpty, "input %q", in)
	}
}

func TestNormalizeMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"plain word", "not-a-guid"},
		{"digits only", "12345"},
		{"unhyphenated hex", "05024756765e41a989d71407436d9a58"},
		{"braced form", "{05024756-765e-41a9-89d7-1407436d9a58}"},
		{"urn form", "urn:uuid:05024756-765e-41a9-89d7-1407436d9a58"},
		{"wrong grouping", "05024756765e-41a9-89d7-1407-436d9a58"},
		{"non-hex digits", "z5024756-765e-41a9-89d7-1407436d9a58"},
		{"too short", "05024756-765e-41a9-89d7-1407436d9a5"},
		{"too long", "05024756-765e-41a9-89d7-1407436d9a580"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.in)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
