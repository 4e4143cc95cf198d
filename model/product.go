package model

// LocalizedText holds the bilingual (English/Vietnamese) copy used across
// products, categories and site content.
type LocalizedText struct {
	En string `json:"en"`
	Vi string `json:"vi"`
}

type Product struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CategoryID  string        `json:"categoryId,omitempty"`
	Featured    bool          `json:"featured"`
	InStock     bool          `json:"inStock"`
}

type ProductUpsertRequest struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       float64       `json:"price" validate:"required,gt=0"`
	ImageURL    string        `json:"imageUrl"`
	CategoryID  string        `json:"categoryId"`
	Featured    bool          `json:"featured"`
	InStock     bool          `json:"inStock"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
}
