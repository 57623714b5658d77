package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RawResponse is an HTTP response as received, before decoding.
type RawResponse struct {
	StatusCode int
	Reason     string
	Header     http.Header
	Body       []byte
}

// Client sends JSON requests to one REST service.
type Client struct {
	base    *url.URL
	timeout time.Duration
	http    *fiber.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient creates a client for the configured base URL.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid remote base url %q: scheme and host are required", cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		base:    base,
		timeout: time.Duration(timeout) * time.Second,
		http:    &fiber.Client{UserAgent: cfg.UserAgent},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}, nil
}

// URL resolves path segments against the base URL.
func (c *Client) URL(segments ...string) string {
	return c.base.JoinPath(segments...).String()
}

// Do sends one request. A nil payload sends no body.
// The returned error is set only when no response was received.
func (c *Client) Do(ctx context.Context, method, target string, payload any) (*RawResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%s %s: %w", method, target, context.DeadlineExceeded)
	}

	agent := c.agent(method, target).Timeout(timeout)
	if payload != nil {
		agent = agent.JSON(payload)
	}

	type result struct {
		resp *RawResponse
		err  error
	}
	done := make(chan result, 1)
	start := time.Now()

	go func() {
		fresp := fiber.AcquireResponse()
		defer fiber.ReleaseResponse(fresp)

		code, body, errs := agent.SetResponse(fresp).Bytes()
		if len(errs) > 0 {
			done <- result{err: errors.Join(errs...)}
			return
		}

		header := make(http.Header)
		fresp.Header.VisitAll(func(key, value []byte) {
			header.Add(string(key), string(value))
		})

		done <- result{resp: &RawResponse{
			StatusCode: code,
			Reason:     utils.StatusMessage(code),
			Header:     header,
			Body:       body,
		}}
	}()

	select {
	case <-ctx.Done():
		// The request finishes in the background within its timeout.
		return nil, fmt.Errorf("%s %s: %w", method, target, ctx.Err())
	case r := <-done:
		if r.err != nil {
			c.logger.Debug("Remote request failed",
				zap.String("method", method),
				zap.String("url", target),
				zap.Error(r.err))
			return nil, fmt.Errorf("%s %s: %w", method, target, r.err)
		}
		c.logger.Debug("Remote request",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("status", r.resp.StatusCode),
			zap.Duration("took", time.Since(start)))
		return r.resp, nil
	}
}

func (c *Client) agent(method, target string) *fiber.Agent {
	switch method {
	case fiber.MethodPost:
		return c.http.Post(target)
	case fiber.MethodPut:
		return c.http.Put(target)
	case fiber.MethodPatch:
		return c.http.Patch(target)
	case fiber.MethodDelete:
		return c.http.Delete(target)
	case fiber.MethodHead:
		return c.http.Head(target)
	default:
		return c.http.Get(target)
	}
}
