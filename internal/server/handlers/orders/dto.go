package orders

import (
	"time"

	"github.com/foodloop/foodloop/internal/collections"
)

// CreateMarketplaceRequest represents the request payload for recording a
// marketplace order.
type CreateMarketplaceRequest struct {
	ID              string     `json:"id,omitempty"              validate:"omitempty,uuid"`
	OrderNumber     string     `json:"orderNumber,omitempty"     validate:"max=100"`
	BuyerID         string     `json:"buyerId,omitempty"         validate:"omitempty,uuid"`
	ListingID       string     `json:"listingId"                 validate:"required,uuid"`
	Quantity        float64    `json:"quantity"                  validate:"required,gt=0"`
	TotalPrice      float64    `json:"totalPrice"                validate:"gte=0"`
	TransactionDate *time.Time `json:"transactionDate,omitempty"`
	OrderStatus     string     `json:"orderStatus,omitempty"     validate:"max=50"`
}

// UpdateMarketplaceRequest represents the request payload for updating a
// marketplace order.
type UpdateMarketplaceRequest struct {
	OrderNumber     *string    `json:"orderNumber,omitempty"     validate:"omitempty,max=100"`
	Quantity        *float64   `json:"quantity,omitempty"        validate:"omitempty,gt=0"`
	TotalPrice      *float64   `json:"totalPrice,omitempty"      validate:"omitempty,gte=0"`
	TransactionDate *time.Time `json:"transactionDate,omitempty"`
	OrderStatus     *string    `json:"orderStatus,omitempty"     validate:"omitempty,max=50"`
}

// MarketplaceListResponse represents the response payload for a
// full-collection fetch of marketplace orders.
type MarketplaceListResponse struct {
	Items []collections.MarketplaceOrder `json:"items"`
}

// CreateRecyclerRequest represents the request payload for recording a
// recycler transaction.
type CreateRecyclerRequest struct {
	ID                        string     `json:"id,omitempty"                        validate:"omitempty,uuid"`
	InitiatingUserDisplayName string     `json:"initiatingUserDisplayName,omitempty" validate:"max=200"`
	RecyclerDisplayName       string     `json:"recyclerDisplayName"                 validate:"required,min=1,max=200"`
	TransactionType           string     `json:"transactionType,omitempty"           validate:"max=100"`
	TransactionDate           *time.Time `json:"transactionDate,omitempty"`
	Status                    string     `json:"status,omitempty"                    validate:"max=50"`
	Amount                    float64    `json:"amount"                              validate:"gte=0"`
	TransactionDetails        string     `json:"transactionDetails,omitempty"        validate:"max=2000"`
}

// UpdateRecyclerRequest represents the request payload for updating a
// recycler transaction.
type UpdateRecyclerRequest struct {
	TransactionType    *string    `json:"transactionType,omitempty"    validate:"omitempty,max=100"`
	TransactionDate    *time.Time `json:"transactionDate,omitempty"`
	Status             *string    `json:"status,omitempty"             validate:"omitempty,max=50"`
	Amount             *float64   `json:"amount,omitempty"             validate:"omitempty,gte=0"`
	TransactionDetails *string    `json:"transactionDetails,omitempty" validate:"omitempty,max=2000"`
}

// RecyclerListResponse represents the response payload for a full-collection
// fetch of recycler transactions.
type RecyclerListResponse struct {
	Items []collections.RecyclerOrder `json:"items"`
}
