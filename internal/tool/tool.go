package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DMarby/unsplash-tool/internal/logger"
	"github.com/DMarby/unsplash-tool/internal/params"
	"github.com/DMarby/unsplash-tool/internal/unsplash"
)

// Tool names
const (
	SearchPhotos = "search_photos"
	RandomPhotos = "random_photos"
)

// Output variable names
const (
	OutputPhotos       = "photos"
	OutputRandomPhotos = "random_photos"
	OutputPhotoDetails = "photo_details"
	OutputTotalResults = "total_results"
)

// Errors
var (
	ErrUnknownTool = errors.New("unknown tool")
)

//go:generate mockgen -destination=../mocks/mock_provider.go -package=mocks github.com/DMarby/unsplash-tool/internal/tool Provider

// Provider is the photo API the tools call
type Provider interface {
	Search(ctx context.Context, credential unsplash.Credential, req unsplash.SearchRequest) (*unsplash.Response, error)
	Random(ctx context.Context, credential unsplash.Credential, req unsplash.RandomRequest) (*unsplash.Response, error)
	ValidateCredential(ctx context.Context, credential unsplash.Credential) error
}

// Definition declares a tool to the host runtime
type Definition struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Parameters  params.Schema `json:"parameters"`
	Outputs     []string      `json:"outputs"`
}

// Result is the outcome of a tool invocation
type Result struct {
	Summary    string                 `json:"summary"`
	Photos     []unsplash.Photo       `json:"photos"`
	Details    []unsplash.Details     `json:"photo_details"`
	Total      *int                   `json:"total,omitempty"`
	TotalPages *int                   `json:"total_pages,omitempty"`
	Parameters params.Values          `json:"parameters"`
	Variables  map[string]interface{} `json:"variables"`
}

type invokeFunc func(ctx context.Context, provider Provider, credential unsplash.Credential, values params.Values) (*Result, error)

type tool struct {
	Definition
	invoke invokeFunc
}

var tools = []tool{
	{
		Definition: Definition{
			Name:        SearchPhotos,
			Description: "Search Unsplash for photos matching keywords, optionally filtered by orientation and color",
			Parameters:  unsplash.SearchSchema,
			Outputs:     []string{OutputPhotos, OutputPhotoDetails, OutputTotalResults},
		},
		invoke: search,
	},
	{
		Definition: Definition{
			Name:        RandomPhotos,
			Description: "Get random photos from Unsplash, optionally limited to keywords, orientation and color",
			Parameters:  unsplash.RandomSchema,
			Outputs:     []string{OutputRandomPhotos, OutputPhotoDetails},
		},
		invoke: random,
	},
}

// Toolset dispatches tool invocations to a provider
type Toolset struct {
	Provider Provider
	Log      *logger.Logger
}

// Definitions returns the declarations of all tools, in a stable order
func (t *Toolset) Definitions() []Definition {
	definitions := make([]Definition, 0, len(tools))
	for _, entry := range tools {
		definitions = append(definitions, entry.Definition)
	}

	return definitions
}

// Invoke validates the raw parameters and runs the named tool
func (t *Toolset) Invoke(ctx context.Context, name string, credential unsplash.Credential, raw map[string]interface{}) (*Result, error) {
	entry, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	values, err := entry.Parameters.Validate(raw)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := entry.invoke(ctx, t.Provider, credential, values)
	if err != nil {
		t.Log.Debugw("tool failed",
			"tool", name,
			"credential", credential.Fingerprint(),
			"error", err,
		)
		return nil, err
	}

	t.Log.Debugw("tool invoked",
		"tool", name,
		"credential", credential.Fingerprint(),
		"photos", len(result.Photos),
		"elapsed", time.Since(start).String(),
	)

	return result, nil
}

// ValidateCredential checks that the credential is accepted by the provider
func (t *Toolset) ValidateCredential(ctx context.Context, credential unsplash.Credential) error {
	return t.Provider.ValidateCredential(ctx, credential)
}

func lookup(name string) (tool, bool) {
	for _, entry := range tools {
		if entry.Name == name {
			return entry, true
		}
	}

	return tool{}, false
}

func search(ctx context.Context, provider Provider, credential unsplash.Credential, values params.Values) (*Result, error) {
	req := unsplash.NewSearchRequest(values)

	response, err := provider.Search(ctx, credential, req)
	if err != nil {
		return nil, err
	}

	filters := describeFilters([]string{"query", req.Query, "orientation", req.Orientation, "color", req.Color})

	var summary string
	if response.Total > 0 {
		summary = fmt.Sprintf("Found %d photos for %s. Showing %d results.", response.Total, filters, len(response.Photos))
	} else {
		summary = fmt.Sprintf("No photos found for %s. Please try different keywords.", filters)
	}

	total, totalPages := response.Total, response.TotalPages
	return &Result{
		Summary:    summary,
		Photos:     response.Photos,
		Details:    response.Details,
		Total:      &total,
		TotalPages: &totalPages,
		Parameters: values,
		Variables: map[string]interface{}{
			OutputPhotos:       response.Photos,
			OutputPhotoDetails: response.Details,
			OutputTotalResults: total,
		},
	}, nil
}

func random(ctx context.Context, provider Provider, credential unsplash.Credential, values params.Values) (*Result, error) {
	req := unsplash.NewRandomRequest(values)

	response, err := provider.Random(ctx, credential, req)
	if err != nil {
		return nil, err
	}

	filters := describeFilters([]string{"query", req.Query, "orientation", req.Orientation, "color", req.Color})
	if filters == "" {
		filters = "no filters applied"
	}

	return &Result{
		Summary:    fmt.Sprintf("Retrieved %d random photos (%s)", len(response.Photos), filters),
		Photos:     response.Photos,
		Details:    response.Details,
		Parameters: values,
		Variables: map[string]interface{}{
			OutputRandomPhotos: response.Photos,
			OutputPhotoDetails: response.Details,
		},
	}, nil
}

// describeFilters renders name/value pairs as name='value', skipping empty values
func describeFilters(pairs []string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s='%s'", pairs[i], pairs[i+1]))
	}

	return strings.Join(parts, ", ")
}
