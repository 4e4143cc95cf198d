package model

type Category struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
}

type CategoryUpsertRequest struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug" validate:"required"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
}

type CategoryListResponse struct {
	Categories []Category `json:"categories"`
}
