package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"flour", "flour"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`c\d`, `c\\d`},
		{"%_", `\%\_`},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), "prefix=%q", tc.in)
	}
}
