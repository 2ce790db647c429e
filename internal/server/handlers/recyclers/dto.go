package recyclers

import "github.com/foodloop/foodloop/internal/collections"

// CreateRequest represents the request payload for registering a recycler
// profile.
type CreateRequest struct {
	ID                 string `json:"id,omitempty"                 validate:"omitempty,uuid"`
	RecyclerName       string `json:"recyclerName"                 validate:"required,min=1,max=200"`
	Logo               string `json:"logo,omitempty"`
	Description        string `json:"description,omitempty"        validate:"max=2000"`
	Location           string `json:"location,omitempty"           validate:"max=200"`
	WebsiteURL         string `json:"websiteUrl,omitempty"         validate:"omitempty,url"`
	WasteTypesAccepted string `json:"wasteTypesAccepted,omitempty" validate:"max=1000"`
	ProductsInReturn   string `json:"productsInReturn,omitempty"   validate:"max=1000"`
}

// UpdateRequest represents the request payload for updating a recycler.
type UpdateRequest struct {
	RecyclerName       *string `json:"recyclerName,omitempty"       validate:"omitempty,min=1,max=200"`
	Logo               *string `json:"logo,omitempty"`
	Description        *string `json:"description,omitempty"        validate:"omitempty,max=2000"`
	Location           *string `json:"location,omitempty"           validate:"omitempty,max=200"`
	WebsiteURL         *string `json:"websiteUrl,omitempty"         validate:"omitempty,url"`
	WasteTypesAccepted *string `json:"wasteTypesAccepted,omitempty" validate:"omitempty,max=1000"`
	ProductsInReturn   *string `json:"productsInReturn,omitempty"   validate:"omitempty,max=1000"`
}

// ListResponse represents the response payload for a full-collection fetch.
type ListResponse struct {
	Items []collections.Recycler `json:"items"`
}
