package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/resolver"
)

func Test_ExtractPrice_SimplePath(t *testing.T) {
	body := []byte(`{"price": 100}`)

	price, err := resolver.ExtractPrice(body, "price")
	assert.NoError(t, err)
	assert.Equal(t, uint64(10000000000), price.Uint64())
}

func Test_ExtractPrice_NestedPath(t *testing.T) {
	body := []byte(`{"price": {"data": {"value": 800}}}`)

	price, err := resolver.ExtractPrice(body, "price.data.value")
	assert.NoError(t, err)
	assert.Equal(t, uint64(80000000000), price.Uint64())
}

func Test_ExtractPrice_NumericString(t *testing.T) {
	// Scale 10^8, rounded
	body := []byte(`{"data": {"amount": "1234.56"}}`)

	price, err := resolver.ExtractPrice(body, "data.amount")
	assert.NoError(t, err)
	assert.Equal(t, uint64(123456000000), price.Uint64())
}

func Test_ExtractPrice_Rounding(t *testing.T) {
	body := []byte(`{"amount": 0.123456789}`)

	price, err := resolver.ExtractPrice(body, "amount")
	assert.NoError(t, err)
	assert.Equal(t, uint64(12345679), price.Uint64())
}

func Test_ExtractPrice_KeyNotFound(t *testing.T) {
	body := []byte(`{"data": {"amount": 1}}`)

	_, err := resolver.ExtractPrice(body, "data.missing")

	var parseErr *core.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, core.KeyNotFound, parseErr.Kind)
	assert.Equal(t, "missing", parseErr.Key)
}

func Test_ExtractPrice_NotAnObject(t *testing.T) {
	body := []byte(`{"data": [1, 2, 3]}`)

	_, err := resolver.ExtractPrice(body, "data.amount")

	var parseErr *core.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, core.NotAnObject, parseErr.Kind)
}

func Test_ExtractPrice_RejectsNegative(t *testing.T) {
	body := []byte(`{"amount": -1.5}`)

	_, err := resolver.ExtractPrice(body, "amount")

	var parseErr *core.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, core.NotNumeric, parseErr.Kind)
}

func Test_ExtractPrice_RejectsOverflow(t *testing.T) {
	// Scaled values at or beyond 2^63 would overflow the conversion
	for _, raw := range []string{`1e30`, `"99999999999999999999"`, `92233720370`} {
		body := []byte(`{"amount": ` + raw + `}`)

		_, err := resolver.ExtractPrice(body, "amount")

		var parseErr *core.ParseError
		assert.True(t, errors.As(err, &parseErr), "value %s", raw)
		assert.Equal(t, core.NotNumeric, parseErr.Kind)
	}
}

func Test_ExtractPrice_NonNumericLeaf(t *testing.T) {
	body := []byte(`{"data": {"amount": "not-a-number"}}`)

	_, err := resolver.ExtractPrice(body, "data.amount")

	var parseErr *core.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, core.NotNumeric, parseErr.Kind)
}

func Test_ExtractPrice_MalformedBody(t *testing.T) {
	body := []byte(`{"data": `)

	_, err := resolver.ExtractPrice(body, "data")
	assert.Error(t, err)

	var httpErr *core.HttpError
	assert.True(t, errors.As(err, &httpErr))
}
