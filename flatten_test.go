package valfmt_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/valfmt"
)

func TestFlattenValidationPayload(t *testing.T) {
	t.Parallel()
	got, err := valfmt.Flatten(map[string]any{
		"a":                []int{1, 2},
		"non_field_errors": "x",
	})
	require.NoError(t, err)

	assert.NotContains(t, got, "{")
	assert.NotContains(t, got, "}")
	assert.NotContains(t, got, `"`)
	assert.NotContains(t, got, "non_field_errors:")
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "1,2")
	assert.Contains(t, got, "x")
	assert.Equal(t, "a: 1,2 ,x", got)
}

func TestFlattenKeepsStructFieldOrder(t *testing.T) {
	t.Parallel()
	payload := struct {
		Name   string   `json:"name"`
		Errors []string `json:"errors"`
	}{"n", []string{"bad", "worse"}}

	got, err := valfmt.Flatten(payload)
	require.NoError(t, err)
	assert.Equal(t, "name:n,errors: bad,worse ", got)
}

func TestFlattenPrimitives(t *testing.T) {
	t.Parallel()
	for in, want := range map[any]string{
		42:      "42",
		"<a&b>": "<a&b>",
		true:    "true",
	} {
		got, err := valfmt.Flatten(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := valfmt.Flatten(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", got)
}

func TestFlattenCycleFails(t *testing.T) {
	t.Parallel()
	m := map[string]any{}
	m["self"] = m

	_, err := valfmt.Flatten(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, valfmt.ErrUnflattenable)

	var unsupported *json.UnsupportedValueError
	assert.True(t, errors.As(err, &unsupported))
}

func TestFlattenUnsupportedType(t *testing.T) {
	t.Parallel()
	_, err := valfmt.Flatten(make(chan int))
	assert.ErrorIs(t, err, valfmt.ErrUnflattenable)
}
