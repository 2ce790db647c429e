package listings

import (
	"time"

	"github.com/foodloop/foodloop/internal/collections"
)

// CreateRequest represents the request payload for creating a listing. The
// identifier may be supplied by the client (a pre-generated UUID); the store
// mints one otherwise.
type CreateRequest struct {
	ID             string     `json:"id,omitempty"             validate:"omitempty,uuid"`
	ListingTitle   string     `json:"listingTitle"             validate:"required,min=1,max=200"`
	Description    string     `json:"description,omitempty"    validate:"max=2000"`
	WasteType      string     `json:"wasteType,omitempty"      validate:"max=100"`
	Quantity       float64    `json:"quantity"                 validate:"gte=0"`
	UnitOfMeasure  string     `json:"unitOfMeasure,omitempty"  validate:"max=50"`
	PricePerUnit   float64    `json:"pricePerUnit"             validate:"gte=0"`
	Location       string     `json:"location,omitempty"       validate:"max=200"`
	ListingImage   string     `json:"listingImage,omitempty"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
}

// UpdateRequest represents the request payload for updating a listing.
type UpdateRequest struct {
	ListingTitle   *string    `json:"listingTitle,omitempty"   validate:"omitempty,min=1,max=200"`
	Description    *string    `json:"description,omitempty"    validate:"omitempty,max=2000"`
	WasteType      *string    `json:"wasteType,omitempty"      validate:"omitempty,max=100"`
	Quantity       *float64   `json:"quantity,omitempty"       validate:"omitempty,gte=0"`
	UnitOfMeasure  *string    `json:"unitOfMeasure,omitempty"  validate:"omitempty,max=50"`
	PricePerUnit   *float64   `json:"pricePerUnit,omitempty"   validate:"omitempty,gte=0"`
	Location       *string    `json:"location,omitempty"       validate:"omitempty,max=200"`
	ListingImage   *string    `json:"listingImage,omitempty"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
}

// ListingResponse represents the response payload for a listing. TotalValue
// is display-only, derived fresh on every read.
type ListingResponse struct {
	collections.MarketplaceListing

	TotalValue string `json:"totalValue"`
}

// ListResponse represents the response payload for a full-collection fetch.
type ListResponse struct {
	Items []ListingResponse `json:"items"`
}

// FacetsResponse lists the distinct filter choices present in the collection.
type FacetsResponse struct {
	WasteTypes []string `json:"wasteTypes"`
	Locations  []string `json:"locations"`
}

// InquiryResponse is the templated seller-contact email for a listing.
type InquiryResponse struct {
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	MailtoURL  string `json:"mailtoUrl"`
	TotalValue string `json:"totalValue"`
}
