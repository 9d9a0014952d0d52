package skipapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gjermundgaraba/libbridge/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.skip.build"

type Client struct {
	baseUrl    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(logger *zap.Logger, baseUrl string) *Client {
	logger.Debug("creating skip api client", zap.String("baseUrl", baseUrl))
	return &Client{
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// WithHTTPClient replaces the http client used for every request.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

func (c *Client) Route(ctx context.Context, req RouteRequest) (*RouteResponse, error) {
	url := fmt.Sprintf("%s/v2/fungible/route", c.baseUrl)
	resp, err := utils.HttpRequest[RouteResponse](ctx, c.logger, c.httpClient, url, http.MethodPost, req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call Route API")
	}

	return &resp, nil
}

func (c *Client) Msgs(ctx context.Context, req MsgsRequest) (*MsgsResponse, error) {
	url := fmt.Sprintf("%s/v2/fungible/msgs", c.baseUrl)
	resp, err := utils.HttpRequest[MsgsResponse](ctx, c.logger, c.httpClient, url, http.MethodPost, req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call Msgs API")
	}

	return &resp, nil
}

func (c *Client) AssetsFromSource(ctx context.Context, req AssetsFromSourceRequest) (*AssetsFromSourceResponse, error) {
	url := fmt.Sprintf("%s/v2/fungible/assets_from_source", c.baseUrl)
	resp, err := utils.HttpRequest[AssetsFromSourceResponse](ctx, c.logger, c.httpClient, url, http.MethodPost, req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call AssetsFromSource API")
	}

	return &resp, nil
}
