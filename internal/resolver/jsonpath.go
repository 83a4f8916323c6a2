package resolver

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/oracular-labs/oracular/internal/core"
)

// PriceMultiple ... Fixed-point scale applied to every resolved price
const PriceMultiple = 1_0000_0000.0

// walkPath ... Walks a dot-separated key path into a decoded JSON
// document, failing when a segment is missing or the current node is
// not an object
func walkPath(doc interface{}, dotPath string) (interface{}, error) {
	current := doc

	for _, key := range strings.Split(dotPath, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, &core.ParseError{Kind: core.NotAnObject, Key: key}
		}

		next, exists := obj[key]
		if !exists {
			return nil, &core.ParseError{Kind: core.KeyNotFound, Key: key}
		}

		current = next
	}

	return current, nil
}

// ExtractPrice ... Parses a JSON body, walks the path to the price
// leaf and converts it to a fixed-point unsigned integer. The leaf may
// be a JSON number or a numeric string; either is scaled by the fixed
// multiplier and rounded to the nearest integer.
func ExtractPrice(body []byte, jsonPath string) (*big.Int, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, core.NewHttpError("could not decode json body: %s", err)
	}

	leaf, err := walkPath(doc, jsonPath)
	if err != nil {
		return nil, err
	}

	var raw string
	switch v := leaf.(type) {
	case json.Number:
		raw = v.String()

	case string:
		raw = v

	default:
		return nil, &core.ParseError{Kind: core.NotNumeric, Key: jsonPath}
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &core.ParseError{Kind: core.NotNumeric, Key: jsonPath}
	}

	// 2^63 is exactly representable as a float64; anything at or past it
	// would make the uint64 conversion platform-defined
	scaled := math.Round(price * PriceMultiple)
	if scaled < 0 || scaled >= float64(1<<63) || math.IsNaN(scaled) {
		return nil, &core.ParseError{Kind: core.NotNumeric, Key: jsonPath}
	}

	return new(big.Int).SetUint64(uint64(scaled)), nil
}
