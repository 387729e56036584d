package unsplash

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/DMarby/unsplash-tool/internal/params"
	"github.com/DMarby/unsplash-tool/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the Unsplash API root
const DefaultBaseURL = "https://api.unsplash.com"

// Endpoints
const (
	searchEndpoint = "/search/photos"
	randomEndpoint = "/photos/random"
	photosEndpoint = "/photos"
)

const (
	maxBodySize           = 10 << 20
	maxErrorMessageLength = 200
)

// Client calls the Unsplash API
// A Client holds no per-call state and is safe for concurrent use
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Log        *logger.Logger
	Tracer     *tracing.Tracer
}

// Search searches photos by keyword
func (c *Client) Search(ctx context.Context, credential Credential, req SearchRequest) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := requireCredential(credential); err != nil {
		return nil, err
	}

	ctx, span := c.Tracer.Start(ctx, "unsplash.Search")
	defer span.End()

	body, err := c.get(ctx, credential, searchEndpoint, req.query())
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	var result apiSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		recordError(span, err)
		return nil, malformedResponse(http.StatusOK)
	}

	if result.Results == nil {
		recordError(span, errNoResults)
		return nil, malformedResponse(http.StatusOK)
	}

	if err := checkPhotos(*result.Results); err != nil {
		recordError(span, err)
		return nil, malformedResponse(http.StatusOK)
	}

	response := newResponse(*result.Results)
	response.Total = result.Total
	response.TotalPages = result.TotalPages

	span.SetAttributes(attribute.Int("unsplash.photos", len(response.Photos)))
	return response, nil
}

// Random returns random photos
// Unsplash answers with a single object or a list depending on the count,
// both are returned as a list
func (c *Client) Random(ctx context.Context, credential Credential, req RandomRequest) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := requireCredential(credential); err != nil {
		return nil, err
	}

	ctx, span := c.Tracer.Start(ctx, "unsplash.Random")
	defer span.End()

	body, err := c.get(ctx, credential, randomEndpoint, req.query())
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	photos, err := decodePhotos(body)
	if err == nil {
		err = checkPhotos(photos)
	}
	if err != nil {
		recordError(span, err)
		return nil, malformedResponse(http.StatusOK)
	}

	response := newResponse(photos)
	response.Total = len(response.Photos)
	response.TotalPages = 1

	span.SetAttributes(attribute.Int("unsplash.photos", len(response.Photos)))
	return response, nil
}

// ValidateCredential checks that Unsplash accepts the access key
func (c *Client) ValidateCredential(ctx context.Context, credential Credential) error {
	if err := requireCredential(credential); err != nil {
		return err
	}

	ctx, span := c.Tracer.Start(ctx, "unsplash.ValidateCredential")
	defer span.End()

	if _, err := c.get(ctx, credential, photosEndpoint, url.Values{"per_page": {"1"}}); err != nil {
		recordError(span, err)
		return err
	}

	return nil
}

// Ping checks that the Unsplash API is reachable, without spending any of the rate limit
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.BaseURL+"/", nil)
	if err != nil {
		return &TransportError{Err: err}
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		return newUpstreamError(res.StatusCode, nil)
	}

	return nil
}

// get performs an authenticated GET and returns the body of a successful response
func (c *Client) get(ctx context.Context, credential Credential, endpoint string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint+params.BuildQuery(query), nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	credential.authorize(req)
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("Accept", "application/json")

	log := c.Log.With(
		"endpoint", endpoint,
		"query", req.URL.RawQuery,
		"credential", credential.Fingerprint(),
	)

	start := time.Now()
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Warnw("unsplash request failed", "error", err)
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		log.Warnw("error reading unsplash response", "error", err)
		return nil, &TransportError{Err: err}
	}

	log.Debugw("unsplash request completed",
		"status-code", res.StatusCode,
		"rate-limit-remaining", res.Header.Get("X-Ratelimit-Remaining"),
		"elapsed", time.Since(start).String(),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newUpstreamError(res.StatusCode, body)
	}

	return body, nil
}

// decodePhotos decodes either a single photo object or a list of photos
func decodePhotos(body []byte) ([]apiPhoto, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var photos []apiPhoto
		if err := json.Unmarshal(trimmed, &photos); err != nil {
			return nil, err
		}

		return photos, nil
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotAPhoto
	}

	var photo apiPhoto
	if err := json.Unmarshal(trimmed, &photo); err != nil {
		return nil, err
	}

	return []apiPhoto{photo}, nil
}

func requireCredential(credential Credential) error {
	if credential.Empty() {
		return &ValidationError{Param: "access_key", Message: "Unsplash access key cannot be empty"}
	}

	return nil
}

// checkPhotos rejects decoded photos that carry no id, e.g. from a null list element
func checkPhotos(photos []apiPhoto) error {
	for i := range photos {
		if photos[i].ID == "" {
			return errNotAPhoto
		}
	}

	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
