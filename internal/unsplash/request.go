package unsplash

import (
	"net/url"
	"strconv"

	"github.com/DMarby/unsplash-tool/internal/params"
)

// Bounds for per_page and count
const (
	minPhotos = 1
	maxPhotos = 30

	defaultPerPage = 10
	defaultCount   = 1
)

// Orientations are the accepted orientation filters
var Orientations = []string{"landscape", "portrait", "squarish"}

// Colors are the accepted color filters
var Colors = []string{
	"black_and_white",
	"black",
	"white",
	"yellow",
	"orange",
	"red",
	"purple",
	"magenta",
	"green",
	"teal",
	"blue",
}

var orientationParam = params.Param{
	Name:        "orientation",
	Label:       "Orientation",
	Type:        params.Select,
	Options:     Orientations,
	Description: "Filter by photo orientation",
}

var colorParam = params.Param{
	Name:        "color",
	Label:       "Color",
	Type:        params.Select,
	Options:     Colors,
	Description: "Filter by dominant color",
}

// SearchSchema declares the search parameters
var SearchSchema = params.Schema{
	{
		Name:        "query",
		Label:       "Search query",
		Type:        params.String,
		Required:    true,
		Description: "Keywords to search for",
	},
	{
		Name:        "per_page",
		Label:       "Results per page",
		Type:        params.Number,
		Default:     defaultPerPage,
		Min:         minPhotos,
		Max:         maxPhotos,
		Description: "Number of photos to return",
	},
	orientationParam,
	colorParam,
}

// RandomSchema declares the random photo parameters
var RandomSchema = params.Schema{
	{
		Name:        "query",
		Label:       "Query",
		Type:        params.String,
		Description: "Limit the selection to photos matching these keywords",
	},
	orientationParam,
	colorParam,
	{
		Name:        "count",
		Label:       "Photo count",
		Type:        params.Number,
		Default:     defaultCount,
		Min:         minPhotos,
		Max:         maxPhotos,
		Description: "Number of photos to return",
	},
}

// SearchRequest contains the parameters for a search
type SearchRequest struct {
	Query       string
	PerPage     int
	Orientation string
	Color       string
}

// NewSearchRequest builds a search request from validated values
func NewSearchRequest(v params.Values) SearchRequest {
	return SearchRequest{
		Query:       v.String("query"),
		PerPage:     v.Int("per_page"),
		Orientation: v.String("orientation"),
		Color:       v.String("color"),
	}
}

// Validate checks the request against SearchSchema
func (r SearchRequest) Validate() error {
	_, err := SearchSchema.Validate(map[string]interface{}{
		"query":       r.Query,
		"per_page":    r.PerPage,
		"orientation": r.Orientation,
		"color":       r.Color,
	})
	return err
}

func (r SearchRequest) query() url.Values {
	return url.Values{
		"query":       {r.Query},
		"per_page":    {strconv.Itoa(r.PerPage)},
		"page":        {"1"},
		"orientation": {r.Orientation},
		"color":       {r.Color},
	}
}

// RandomRequest contains the parameters for fetching random photos
type RandomRequest struct {
	Query       string
	Orientation string
	Color       string
	Count       int
}

// NewRandomRequest builds a random photo request from validated values
func NewRandomRequest(v params.Values) RandomRequest {
	return RandomRequest{
		Query:       v.String("query"),
		Orientation: v.String("orientation"),
		Color:       v.String("color"),
		Count:       v.Int("count"),
	}
}

// Validate checks the request against RandomSchema
func (r RandomRequest) Validate() error {
	_, err := RandomSchema.Validate(map[string]interface{}{
		"query":       r.Query,
		"orientation": r.Orientation,
		"color":       r.Color,
		"count":       r.Count,
	})
	return err
}

func (r RandomRequest) query() url.Values {
	return url.Values{
		"query":       {r.Query},
		"orientation": {r.Orientation},
		"color":       {r.Color},
		"count":       {strconv.Itoa(r.Count)},
	}
}
