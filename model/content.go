package model

// Content is a keyed piece of site copy (hero text, banners, footer blocks)
// grouped into sections.
type Content struct {
	ID      string        `json:"id"`
	Key     string        `json:"key"`
	Section string        `json:"section"`
	Value   LocalizedText `json:"value"`
}

type ContentUpsertRequest struct {
	ID      string        `json:"id"`
	Key     string        `json:"key" validate:"required"`
	Section string        `json:"section" validate:"required"`
	Value   LocalizedText `json:"value"`
}

type ContentListResponse struct {
	Content []Content `json:"content"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
