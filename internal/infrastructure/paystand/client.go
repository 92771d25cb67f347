package paystand

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingBaseURL = errors.New("missing PAYSTAND_BASE_URL")

const defaultTimeout = 15 * time.Second

// Config carries everything the client injects into upstream calls. The
// tenant header is only sent when TenantID is set.
type Config struct {
	BaseURL      string
	TenantHeader string
	TenantID     string
	Timeout      time.Duration
}

// Client talks to the Paystand REST API.
type Client struct {
	http *resty.Client
}

var _ interfaces.IPaystandClient = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		log.Printf("[paystand][client] missing base url")
		return nil, ErrMissingBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if cfg.TenantHeader != "" && cfg.TenantID != "" {
		rc.SetHeader(cfg.TenantHeader, cfg.TenantID)
	}
	log.Printf("[paystand][client] initialized base_url=%s timeout=%s", baseURL, timeout)

	return &Client{http: rc}, nil
}

func (c *Client) Post(ctx context.Context, path string, authorization string, body map[string]interface{}) (entities.UpstreamResponse, error) {
	log.Printf("[paystand][client] post start path=%s", path)

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if authorization != "" {
		req.SetHeader("Authorization", authorization)
	}

	resp, err := req.Post(path)
	if err != nil {
		log.Printf("[paystand][client] post failed path=%s err=%v", path, err)
		return entities.UpstreamResponse{}, err
	}
	log.Printf("[paystand][client] post done path=%s status=%d duration=%s", path, resp.StatusCode(), resp.Time())

	return entities.UpstreamResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
