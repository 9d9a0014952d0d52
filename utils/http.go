package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxErrorBodySize caps how much of a non-200 response body ends up in an error message.
const maxErrorBodySize = 1024

// HTTPStatusError is returned by HttpRequest when the server answers with a non-200 status.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// Temporary reports whether retrying the same request later could succeed.
func (e *HTTPStatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

func HttpRequest[T any](ctx context.Context, logger *zap.Logger, httpClient *http.Client, url string, method string, req any) (T, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger.Debug("sending api request", zap.String("url", url), zap.Any("req", req))

	var resp T
	var body io.Reader
	if req != nil {
		requestBody, err := json.Marshal(req)
		if err != nil {
			return resp, errors.Wrapf(err, "failed to marshal request body")
		}
		body = bytes.NewBuffer(requestBody)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return resp, errors.Wrapf(err, "failed to create request to %s", url)
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := httpClient.Do(httpRequest)
	if err != nil {
		return resp, errors.Wrapf(err, "failed to send request to %s", url)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))
		return resp, errors.WithStack(&HTTPStatusError{
			StatusCode: response.StatusCode,
			URL:        url,
			Body:       string(errBody),
		})
	}

	if err := json.NewDecoder(response.Body).Decode(&resp); err != nil {
		return resp, errors.Wrapf(err, "failed to decode response body")
	}

	logger.Debug("received api response", zap.String("url", url), zap.Any("resp", resp))

	return resp, nil
}
