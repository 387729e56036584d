package unsplash

import "fmt"

// License is the license every Unsplash photo is published under
const License = "Unsplash License - https://unsplash.com/license"

// Photo is the subset of the Unsplash photo object returned to callers
// Field names match the provider's
type Photo struct {
	ID             string  `json:"id"`
	Description    *string `json:"description"`
	AltDescription *string `json:"alt_description"`
	URLs           URLs    `json:"urls"`
	User           User    `json:"user"`
	Links          Links   `json:"links"`
}

// URLs contains the image URLs for each size
type URLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// User is the author of a photo
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	PortfolioURL *string      `json:"portfolio_url"`
	ProfileImage ProfileImage `json:"profile_image"`
	Links        UserLinks    `json:"links"`
}

// ProfileImage contains the author's avatar URLs
type ProfileImage struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// UserLinks contains links related to the author
type UserLinks struct {
	Self   string `json:"self"`
	HTML   string `json:"html"`
	Photos string `json:"photos"`
	Likes  string `json:"likes"`
}

// Links contains links related to a photo
type Links struct {
	Self             string `json:"self"`
	HTML             string `json:"html"`
	Download         string `json:"download"`
	DownloadLocation string `json:"download_location"`
}

// Details is the attribution summary for a photo, for display next to it
type Details struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Dimensions  string `json:"dimensions"`
	Author      string `json:"author"`
	PhotoLink   string `json:"photo_link"`
	UserLink    string `json:"user_link"`
	License     string `json:"license"`
}

// Response is the result of a search or random request
// Photos is never nil, so it always encodes as a JSON array
type Response struct {
	Photos     []Photo   `json:"photos"`
	Details    []Details `json:"photo_details"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
}

// apiPhoto is the photo object as Unsplash returns it
// Only the fields needed for the projection and the details are decoded
type apiPhoto struct {
	Photo
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Color     *string `json:"color"`
	Likes     int     `json:"likes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// apiSearchResult is the body of a search response
type apiSearchResult struct {
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
	Results    *[]apiPhoto `json:"results"`
}

func (p *apiPhoto) details() Details {
	author := p.User.Name
	if author == "" {
		author = "Unknown"
	}

	description := fmt.Sprintf("Photo by %s", author)
	if p.Description != nil && *p.Description != "" {
		description = *p.Description
	} else if p.AltDescription != nil && *p.AltDescription != "" {
		description = *p.AltDescription
	}

	return Details{
		ID:          p.ID,
		Description: description,
		Dimensions:  fmt.Sprintf("%dx%d", p.Width, p.Height),
		Author:      author,
		PhotoLink:   p.Links.HTML,
		UserLink:    p.User.Links.HTML,
		License:     License,
	}
}

func newResponse(photos []apiPhoto) *Response {
	response := &Response{
		Photos:  make([]Photo, 0, len(photos)),
		Details: make([]Details, 0, len(photos)),
	}

	for i := range photos {
		response.Photos = append(response.Photos, photos[i].Photo)
		response.Details = append(response.Details, photos[i].details())
	}

	return response
}
