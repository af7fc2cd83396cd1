package claims

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNative(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"string", "John Doe", String("John Doe")},
		{"int", 42, Integer(42)},
		{"int64", int64(1516239022), Integer(1516239022)},
		{"uint32", uint32(7), Integer(7)},
		{"uint64 in range", uint64(math.MaxInt64), Integer(math.MaxInt64)},
		{"float", 1.5, Float(1.5)},
		{"bool", true, Boolean(true)},
		{"sequence", []any{"a", int64(1), false}, Sequence{String("a"), Integer(1), Boolean(false)}},
		{"mapping", map[string]any{"role": "admin", "level": int64(3)}, Mapping{"role": String("admin"), "level": Integer(3)}},
		{"yaml style mapping", map[any]any{"role": "admin"}, Mapping{"role": String("admin")}},
		{
			"nested",
			map[string]any{"org": map[string]any{"ids": []any{int64(1), int64(2)}}},
			Mapping{"org": Mapping{"ids": Sequence{Integer(1), Integer(2)}}},
		},
		{"already converted", String("x"), String("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromNative("payload", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromNativeUnsupported(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		errPart string
	}{
		{"null", nil, "payload.claim: null"},
		{"datetime", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "payload.claim: time.Time"},
		{"uint64 overflow", uint64(math.MaxUint64), "overflows int64"},
		{"nested in sequence", []any{"ok", nil}, "payload.claim[1]: null"},
		{"non string key", map[any]any{1: "one"}, "is not a string"},
		{"nested mapping", map[string]any{"inner": struct{}{}}, "payload.claim.inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromNative("payload.claim", tt.in)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrUnsupportedValue)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestNative(t *testing.T) {
	m := Mapping{
		"sub":   String("1234567890"),
		"iat":   Integer(1516239022),
		"admin": Boolean(true),
		"score": Float(0.5),
		"tags":  Sequence{String("a"), Integer(2)},
		"org":   Mapping{"name": String("acme")},
	}

	assert.Equal(t, map[string]any{
		"sub":   "1234567890",
		"iat":   int64(1516239022),
		"admin": true,
		"score": 0.5,
		"tags":  []any{"a", int64(2)},
		"org":   map[string]any{"name": "acme"},
	}, m.NativeMap())

	assert.Equal(t, []string{"admin", "iat", "org", "score", "sub", "tags"}, m.Keys())
}

func TestMappingFromNativeEmpty(t *testing.T) {
	m, err := MappingFromNative("payload", map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)
}
