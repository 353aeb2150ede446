package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Result holds a single text-classification outcome.
type Result struct {
	Label string
	Score float64
}

// Classifier provides access to a text-classification model.
type Classifier interface {
	// Classify sends a short text and returns the top label with its
	// confidence score.
	Classify(ctx context.Context, text string) (Result, error)

	// Available checks whether the inference server is reachable.
	Available(ctx context.Context) bool
}

// httpClassifier implements Classifier against a local sentiment
// inference server exposing the HuggingFace pipeline shape.
type httpClassifier struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClassifier creates a Classifier that talks to a local
// text-classification inference server.
func NewHTTPClassifier(cfg Config, observer Observer) Classifier {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClassifier{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// predictRequest is the JSON body sent to POST /predict.
type predictRequest struct {
	Inputs string `json:"inputs"`
	Model  string `json:"model,omitempty"`
}

// prediction is one element of the JSON array returned by POST /predict.
type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *httpClassifier) Classify(ctx context.Context, text string) (Result, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := predictRequest{
		Inputs: text,
		Model:  c.cfg.Model,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		result, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Model:     c.cfg.Model,
				Label:     result.Label,
				LatencyMs: latency,
				Success:   true,
			})
			return result, nil
		}
		lastErr = err

		// Malformed output won't improve on retry.
		if errors.Is(err, ErrMalformedOutput) {
			break
		}

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	// Map the raw transport error to a sentinel before observing so the
	// event carries the same code the caller sees.
	var finalErr error
	switch {
	case ctx.Err() != nil:
		finalErr = ErrTimeout
	case errors.Is(lastErr, ErrMalformedOutput):
		finalErr = lastErr
	case isConnectionError(lastErr):
		finalErr = ErrUnavailable
	default:
		finalErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(finalErr),
	})

	return Result{}, finalErr
}

func (c *httpClassifier) doRequest(ctx context.Context, body predictRequest) (Result, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return Result{}, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/predict"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("classifier returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	// The pipeline shape is an array of {label, score} sorted by score.
	var preds []prediction
	if err := json.Unmarshal(respBody, &preds); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(preds) == 0 {
		return Result{}, fmt.Errorf("%w: empty prediction array", ErrMalformedOutput)
	}

	top := preds[0]
	if top.Label == "" {
		return Result{}, fmt.Errorf("%w: missing label", ErrMalformedOutput)
	}
	if top.Score < 0 || top.Score > 1 {
		return Result{}, fmt.Errorf("%w: score %v outside [0,1]", ErrMalformedOutput, top.Score)
	}

	return Result{Label: top.Label, Score: top.Score}, nil
}

func (c *httpClassifier) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.Endpoint + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrMalformedOutput):
		return "MALFORMED_OUTPUT"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
