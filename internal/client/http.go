//go:generate mockgen -package mocks --destination ../mocks/price_client.go . PriceClient

package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/oracular-labs/oracular/internal/core"
)

const (
	// maxResponseBytes ... Cap on price source response bodies
	maxResponseBytes = 8192

	// requestTimeout ... Bound on every outbound price fetch
	requestTimeout = 20 * time.Second
)

// PriceClient ... Fetches raw price documents from arbitrary HTTP sources
type PriceClient interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// priceClient ... Size-capped, timeout-bounded HTTP fetcher
type priceClient struct {
	client *http.Client
}

// NewPriceClient ... Initializer
func NewPriceClient() PriceClient {
	return &priceClient{
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Get ... Issues a GET request and returns the body; a non-200 status
// or an over-sized body is an HttpError
func (pc *priceClient) Get(ctx context.Context, rawURL string) ([]byte, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return nil, core.NewHttpError("invalid url %s: %s", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, core.NewHttpError("could not build request: %s", err)
	}
	req.Header.Set("User-Agent", "Oracular")

	resp, err := pc.client.Do(req)
	if err != nil {
		return nil, core.NewHttpError("request failed: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, core.NewHttpError("url is not valid, status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, core.NewHttpError("could not read body: %s", err)
	}

	if len(body) > maxResponseBytes {
		return nil, core.NewHttpError("response exceeds %d byte cap", maxResponseBytes)
	}

	return body, nil
}
