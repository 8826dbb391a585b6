package infra

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"triptalk/internal/models/trip_models"
	"triptalk/pkg/logger"
)

const (
	SinkReasonDisabled         = "disabled"
	SinkReasonEncodeError      = "encode_error"
	SinkReasonTimeout          = "timeout"
	SinkReasonTransportError   = "transport_error"
	SinkReasonUnexpectedStatus = "unexpected_status"
)

// SinkResult reports the outcome of one delivery. Failures are values, never
// errors.
type SinkResult struct {
	Success    bool   `json:"success"`
	Reason     string `json:"reason,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

type SinkClientInterface interface {
	Enabled() bool
	Send(ctx context.Context, plan trip_models.TripPlan) SinkResult
}

// SinkClient posts finished trips to the downstream relational service.
type SinkClient struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	log        *logger.Logger
}

// NewSinkClient returns a disabled client when url is empty.
func NewSinkClient(url string, timeout time.Duration, log *logger.Logger) *SinkClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &SinkClient{
		url:        strings.TrimSpace(url),
		timeout:    timeout,
		httpClient: &http.Client{Transport: tr},
		log:        log,
	}
}

// NewSinkClientWithHTTPClient is intended for tests.
func NewSinkClientWithHTTPClient(url string, timeout time.Duration, httpClient *http.Client, log *logger.Logger) *SinkClient {
	c := NewSinkClient(url, timeout, log)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

func (c *SinkClient) Enabled() bool {
	return c.url != ""
}

func (c *SinkClient) Send(ctx context.Context, plan trip_models.TripPlan) SinkResult {
	if !c.Enabled() {
		return SinkResult{Reason: SinkReasonDisabled, Message: "SINK_URL is not set"}
	}

	body, err := EncodeSinkPayload(plan)
	if err != nil {
		c.log.Warn("encoding sink payload", "trip_id", plan.ID, "error", err)
		return SinkResult{Reason: SinkReasonEncodeError, Message: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return SinkResult{Reason: SinkReasonTransportError, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			c.log.Warn("sink request timed out", "trip_id", plan.ID, "timeout", c.timeout)
			return SinkResult{Reason: SinkReasonTimeout, Message: fmt.Sprintf("no response within %s", c.timeout)}
		}
		c.log.Warn("sink request failed", "trip_id", plan.ID, "error", err)
		return SinkResult{Reason: SinkReasonTransportError, Message: err.Error()}
	}
	defer resp.Body.Close()
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.log.Info("trip sent to sink", "trip_id", plan.ID, "status", resp.StatusCode)
		return SinkResult{Success: true, StatusCode: resp.StatusCode}
	default:
		c.log.Warn("sink rejected trip", "trip_id", plan.ID, "status", resp.StatusCode)
		return SinkResult{
			Reason:     SinkReasonUnexpectedStatus,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(snippet)),
		}
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
