package models

import (
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/oracular-labs/oracular/internal/core"
)

// Status ... Represents the status of an API response
type Status string

const (
	OK    Status = "OK"
	NotOK Status = "NOTOK"
)

// Result ... Response result payload
type Result map[string]interface{}

// Response ... Generic API response envelope
type Response struct {
	Status Status      `json:"status"`
	Code   int         `json:"code"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// OracleRequestBody ... Request body for oracle creation
type OracleRequestBody struct {
	Owner           common.Address      `json:"owner"`
	Origin          core.Origin         `json:"origin"`
	IntervalSeconds uint64              `json:"interval_seconds"`
	Destination     core.EvmDestination `json:"destination"`
}

// OracleUpdateBody ... Request body for partial metadata updates
type OracleUpdateBody struct {
	Owner    common.Address            `json:"owner"`
	Contract common.Address            `json:"contract"`
	Patch    core.UpdateOracleMetadata `json:"patch"`
}

// OwnerUpdateBody ... Request body for service ownership transfer
type OwnerUpdateBody struct {
	Caller common.Address `json:"caller"`
	Owner  common.Address `json:"owner"`
}

// FeedRequestBody ... Request body for price feed deployment
type FeedRequestBody struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	Decimals    uint8              `json:"decimals"`
	Version     uint64             `json:"version"`
	Provider    core.ChainEndpoint `json:"provider"`
}

// HealthCheck ... API health check response
type HealthCheck struct {
	Timestamp string `json:"timestamp"`
	Healthy   bool   `json:"healthy"`
}

// NewAcceptedResp ... Returns a response with status accepted
func NewAcceptedResp(result interface{}) *Response {
	return &Response{
		Status: OK,
		Code:   http.StatusAccepted,
		Result: result,
	}
}

// NewOKResp ... Returns a response with status ok
func NewOKResp(result interface{}) *Response {
	return &Response{
		Status: OK,
		Code:   http.StatusOK,
		Result: result,
	}
}

// NewUnmarshalErrResp ... New unmarshal error response construction
func NewUnmarshalErrResp() *Response {
	return &Response{
		Status: NotOK,
		Code:   http.StatusBadRequest,
		Error:  "could not unmarshal request body",
	}
}

// NewErrResp ... Maps a business-logic error to a structured response
func NewErrResp(err error) *Response {
	return &Response{
		Status: NotOK,
		Code:   errStatusCode(err),
		Error:  err.Error(),
	}
}

// errStatusCode ... Maps error taxonomy entries to HTTP status codes
func errStatusCode(err error) int {
	switch {
	case errors.Is(err, core.ErrOracleNotFound),
		errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrFeedNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrOracleAlreadyExists),
		errors.Is(err, core.ErrFeedAlreadyExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrNotOwner),
		errors.Is(err, core.ErrAnonymousOwner):
		return http.StatusForbidden

	case errors.Is(err, core.ErrEmptyUpdate):
		return http.StatusBadRequest
	}

	var parseErr *core.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
