package greeter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeName(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`"Alice"`, "Alice"},
		{`  "Bob"  `, "Bob"},
		{`""`, ""},
		{`null`, ""},
		{`"café"`, "café"},
		{"\"x\"\n", "x"},
	}
	for _, tt := range tests {
		got, err := DecodeName(strings.NewReader(tt.body))
		require.NoError(t, err, "body %q", tt.body)
		assert.Equal(t, tt.want, got, "body %q", tt.body)
	}
}

func TestDecodeNameInvalidJSON(t *testing.T) {
	for _, body := range []string{"", "World", `"unterminated`, `{`, `"a" "b"`, `"a" }`, `"a" 1`} {
		_, err := DecodeName(strings.NewReader(body))
		require.Error(t, err, "body %q", body)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr), "body %q", body)
		assert.Empty(t, decodeErr.Kind, "body %q", body)
		assert.NotNil(t, decodeErr.Unwrap(), "body %q", body)
	}
}

func TestDecodeNameRejectsNonStrings(t *testing.T) {
	tests := []struct {
		body string
		kind string
	}{
		{`42`, "number"},
		{`-1.5`, "number"},
		{`true`, "boolean"},
		{`false`, "boolean"},
		{`{"n":"a"}`, "object"},
		{`["a"]`, "array"},
	}
	for _, tt := range tests {
		body, kind := tt.body, tt.kind
		_, err := DecodeName(strings.NewReader(body))

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr), "body %q", body)
		assert.Equal(t, kind, decodeErr.Kind)
		assert.Equal(t, "expected a JSON string, got "+kind, decodeErr.Error())
	}
}
