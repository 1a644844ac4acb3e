package publisher

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/KOMKZ/go-pubsite-service/httpx/types"
	"github.com/KOMKZ/go-pubsite-service/model"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UpsertInput request body for creating or updating a publisher
// A zero ID means lookup by name, a positive ID targets that record
type UpsertInput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ContactName string `json:"contactName"`
}

// Validate implements validator.Validatable
func (in *UpsertInput) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.ID, validation.Min(int64(0))),
		validation.Field(&in.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Email, validation.Match(emailPattern).Error("must be a valid email address")),
		validation.Field(&in.ContactName, validation.Length(0, 255)),
	)
}

// WebsiteSummary nested website view inside a publisher response
type WebsiteSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Response publisher view returned by the API and stored in the cache
type Response struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email,omitempty"`
	ContactName string           `json:"contactName,omitempty"`
	Websites    []WebsiteSummary `json:"websites,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// newResponse maps an entity to its response view
func newResponse(entity *model.Publisher, includeWebsites bool) *Response {
	resp := &Response{
		ID:          entity.ID,
		Name:        entity.Name,
		Email:       entity.Email,
		ContactName: entity.ContactName,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
	if includeWebsites {
		resp.Websites = types.CopySlice(entity.Websites, func(w model.Website) WebsiteSummary {
			return WebsiteSummary{ID: w.ID, Name: w.Name}
		})
		if resp.Websites == nil {
			resp.Websites = make([]WebsiteSummary, 0)
		}
	}
	return resp
}

// newResponseList maps entities to response views
// Always returns a non-nil slice so an empty list is a cacheable value
func newResponseList(entities []model.Publisher, includeWebsites bool) []Response {
	responses := make([]Response, 0, len(entities))
	for i := range entities {
		responses = append(responses, *newResponse(&entities[i], includeWebsites))
	}
	return responses
}
