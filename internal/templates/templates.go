// Package templates declares the reusable response and error shapes a host
// registers with the engine. The shapes are pure data: constructor-built
// object types wired into inheritance chains, with status-code fields
// already tagged. No resolution logic lives here.
package templates

import "github.com/griffnb/core-resolve/internal/domain"

// Library holds one instance of every shared shape. Shapes inside one
// library keep pointer identity, so a derived type and its base compare
// consistently across operations built from the same library.
type Library struct {
	// APIError is the base error body: code and message, no status field.
	APIError *domain.ObjectType

	// NotFoundError and ConflictError derive from APIError and pin an
	// explicit error status code.
	NotFoundError *domain.ObjectType
	ConflictError *domain.ObjectType

	// OK, Created, Accepted and NoContent are the bare success envelopes.
	// OK carries a numeric status literal, Created a string one; both
	// literal shapes must classify as 2xx.
	OK        *domain.ObjectType
	Created   *domain.ObjectType
	Accepted  *domain.ObjectType
	NoContent *domain.ObjectType
}

// NewLibrary builds a fresh shape library.
func NewLibrary() *Library {
	apiError := domain.NewErrorObject("ApiError",
		domain.NewField("code", domain.String()),
		domain.NewField("message", domain.String()),
	)

	notFound := domain.Extend("NotFoundError", apiError,
		domain.StatusCodeField("404"),
	)
	notFound.IsError = true

	conflict := domain.Extend("ConflictError", apiError,
		domain.StatusCodeField("409"),
	)
	conflict.IsError = true

	return &Library{
		APIError:      apiError,
		NotFoundError: notFound,
		ConflictError: conflict,
		OK:            domain.NewObject("OkResponse", domain.StatusCodeField(200)),
		Created:       domain.NewObject("CreatedResponse", domain.StatusCodeField("201")),
		Accepted:      domain.NewObject("AcceptedResponse", domain.StatusCodeField(202)),
		NoContent:     domain.NewObject("NoContentResponse", domain.StatusCodeField(204)),
	}
}

// Resource builds a plain success body with the given fields and no status
// code field, relying on the default code.
func (l *Library) Resource(name string, fields ...*domain.Field) *domain.ObjectType {
	return domain.NewObject(name, fields...)
}

// CreatedResource builds a success body derived from the Created envelope,
// inheriting its "201" status field.
func (l *Library) CreatedResource(name string, fields ...*domain.Field) *domain.ObjectType {
	return domain.Extend(name, l.Created, fields...)
}

// Paged builds the standard list page for an item type: an ordered value
// collection plus the continuation link.
func (l *Library) Paged(name string, item domain.TypeNode) *domain.ObjectType {
	return domain.NewObject(name,
		domain.NewField("value", domain.Tuple(item)),
		domain.NewField("nextLink", domain.String()),
	)
}
