package templates

import "github.com/griffnb/core-resolve/internal/domain"

// Catalog builds the canonical widget service used to document and exercise
// the standard shapes: one operation per envelope kind, each declaring its
// error outcomes after the success one.
func Catalog() *domain.Service {
	lib := NewLibrary()

	widget := lib.Resource("Widget",
		domain.NewField("id", domain.String()),
		domain.NewField("weight", domain.Number()),
	)
	widgetPage := lib.Paged("WidgetPage", widget)
	createdWidget := lib.CreatedResource("CreatedWidget",
		domain.NewField("id", domain.String()),
	)

	return &domain.Service{
		Name:    "Widgets",
		Version: "2026-08-01",
		Operations: []*domain.Operation{
			{
				Name: "Widgets_Get",
				Responses: []*domain.Response{
					{Body: widget, Description: "The requested widget"},
					{Body: lib.NotFoundError, Description: "No widget with that id"},
				},
			},
			{
				Name: "Widgets_List",
				Responses: []*domain.Response{
					{Body: widgetPage, Description: "One page of widgets"},
					{Body: lib.APIError, Description: "Unexpected error"},
				},
			},
			{
				Name: "Widgets_Create",
				Responses: []*domain.Response{
					{Body: domain.Union(lib.ConflictError, createdWidget), Description: "Created widget or conflict"},
				},
			},
			{
				Name: "Widgets_Delete",
				Responses: []*domain.Response{
					{Body: domain.Tuple(lib.NoContent, lib.APIError), Description: "Deletion outcome"},
				},
			},
		},
	}
}
