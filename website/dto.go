package website

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/KOMKZ/go-pubsite-service/model"
)

// UpsertInput request body for creating or updating a website
// A zero ID means lookup by (name, publisherId), a positive ID targets
// that record
type UpsertInput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PublisherID int64  `json:"publisherId"`
}

// Validate implements validator.Validatable
func (in *UpsertInput) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.ID, validation.Min(int64(0))),
		validation.Field(&in.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.PublisherID, validation.Required, validation.Min(int64(1))),
	)
}

// PublisherSummary nested owner view inside a website response
type PublisherSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Response website view returned by the API and stored in the cache
type Response struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	PublisherID int64             `json:"publisherId"`
	Publisher   *PublisherSummary `json:"publisher,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// newResponse maps an entity to its response view
func newResponse(entity *model.Website, includePublisher bool) *Response {
	resp := &Response{
		ID:          entity.ID,
		Name:        entity.Name,
		PublisherID: entity.PublisherID,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
	if includePublisher && entity.Publisher != nil {
		resp.Publisher = &PublisherSummary{
			ID:   entity.Publisher.ID,
			Name: entity.Publisher.Name,
		}
	}
	return resp
}

// newResponseList maps entities to response views
// Always returns a non-nil slice so an empty list is a cacheable value
func newResponseList(entities []model.Website, includePublisher bool) []Response {
	responses := make([]Response, 0, len(entities))
	for i := range entities {
		responses = append(responses, *newResponse(&entities[i], includePublisher))
	}
	return responses
}
