package trackingapi

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/ecoshop/backend/internal/domain/providers"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/ecoshop/backend/pkg/errors"
)

var responseValidate = validator.New()

// Option configures a Gateway or HTTPClient.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	timeout         time.Duration
	metrics         *observability.Metrics
	clientID        string
	suggestionLimit int
}

func defaultOptions() options {
	return options{
		timeout:         10 * time.Second,
		clientID:        DefaultClientID,
		suggestionLimit: DefaultSuggestionLimit,
	}
}

// WithHTTPClient replaces the instrumented default http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithTimeout sets the default http.Client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMetrics records call counts and durations.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

// WithClientID sets the client identifier sent with tracked searches.
func WithClientID(clientID string) Option {
	return func(o *options) {
		if clientID != "" {
			o.clientID = clientID
		}
	}
}

// WithSuggestionLimit sets the suggestion count used by TrackSearchWithSuggestions.
func WithSuggestionLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.suggestionLimit = limit
		}
	}
}

// Gateway performs single authenticated JSON calls against the search
// analytics service. It never retries.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	tokens     providers.TokenSource
	metrics    *observability.Metrics
}

func NewGateway(baseURL string, tokens providers.TokenSource, opts ...Option) *Gateway {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newGateway(baseURL, tokens, o)
}

func newGateway(baseURL string, tokens providers.TokenSource, o options) *Gateway {
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   o.timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		metrics:    o.metrics,
	}
}

// Do sends one request to route and decodes a successful JSON response into
// out. body, query and out may be nil.
//
// A missing token fails with AUTH_REQUIRED before any network activity.
// Connectivity failures are TRANSPORT errors; non-2xx and undecodable
// responses are SERVER errors.
func (g *Gateway) Do(ctx context.Context, method, route string, query url.Values, body, out interface{}) (err error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, fmt.Sprintf("tracking %s %s", method, route))
	defer span.End()
	observability.SetSpanAttributes(span,
		attribute.String("http.method", method),
		attribute.String("http.route", route),
	)

	defer func() {
		outcome := "ok"
		if appErr, ok := apperrors.As(err); ok {
			outcome = strings.ToLower(string(appErr.Type))
		}
		observability.RecordError(span, err)
		observability.RecordRequestMetric(ctx, g.metrics, method, route, outcome, time.Since(start))

		logger := observability.LoggerFromContext(ctx)
		if err != nil {
			logger.Warn().Err(err).Str("method", method).Str("route", route).Msg("tracking api call failed")
			return
		}
		logger.Debug().Str("method", method).Str("route", route).Dur("elapsed", time.Since(start)).Msg("tracking api call")
	}()

	token, ok := g.tokens.Token(ctx)
	if !ok || token == "" {
		return apperrors.NewAuthRequiredError()
	}

	endpoint := g.baseURL + route
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("failed to encode request body: %v", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.NewTransportError("failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError(fmt.Sprintf("%s %s failed", method, route), err)
	}
	defer resp.Body.Close()

	observability.SetSpanAttributes(span, attribute.Int("http.status_code", resp.StatusCode))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError("failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewServerError(resp.StatusCode, errorMessage(resp.StatusCode, data))
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return apperrors.NewServerError(resp.StatusCode, fmt.Sprintf("malformed response: %v", err))
		}
	}
	if err := validateResponse(out); err != nil {
		return apperrors.NewServerError(resp.StatusCode, fmt.Sprintf("malformed response: %v", err))
	}

	return nil
}

func validateResponse(out interface{}) error {
	err := responseValidate.Struct(out)
	var invalid *validator.InvalidValidationError
	if stderrors.As(err, &invalid) {
		// not a struct; nothing to check
		return nil
	}
	return err
}

// errorMessage extracts the server's error text, falling back to a message
// derived from the status code when the body is not a JSON error object.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
