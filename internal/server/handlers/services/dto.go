package services

import "github.com/foodloop/foodloop/internal/collections"

// CreateRequest represents the request payload for creating a sustainability
// service offering.
type CreateRequest struct {
	ID               string `json:"id,omitempty"               validate:"omitempty,uuid"`
	ServiceName      string `json:"serviceName"                validate:"required,min=1,max=200"`
	ShortDescription string `json:"shortDescription,omitempty" validate:"max=500"`
	FullDescription  string `json:"fullDescription,omitempty"  validate:"max=5000"`
	ServiceType      string `json:"serviceType,omitempty"      validate:"max=100"`
	PartnerName      string `json:"partnerName,omitempty"      validate:"max=200"`
	ServiceImage     string `json:"serviceImage,omitempty"`
	ContactURL       string `json:"contactUrl,omitempty"       validate:"omitempty,url"`
	RecyclerID       string `json:"recyclerId,omitempty"       validate:"omitempty,uuid"`
}

// UpdateRequest represents the request payload for updating a service.
type UpdateRequest struct {
	ServiceName      *string `json:"serviceName,omitempty"      validate:"omitempty,min=1,max=200"`
	ShortDescription *string `json:"shortDescription,omitempty" validate:"omitempty,max=500"`
	FullDescription  *string `json:"fullDescription,omitempty"  validate:"omitempty,max=5000"`
	ServiceType      *string `json:"serviceType,omitempty"      validate:"omitempty,max=100"`
	PartnerName      *string `json:"partnerName,omitempty"      validate:"omitempty,max=200"`
	ServiceImage     *string `json:"serviceImage,omitempty"`
	ContactURL       *string `json:"contactUrl,omitempty"       validate:"omitempty,url"`
	RecyclerID       *string `json:"recyclerId,omitempty"       validate:"omitempty,uuid"`
}

// ListResponse represents the response payload for a full-collection fetch.
type ListResponse struct {
	Items []collections.SustainabilityService `json:"items"`
}

// FacetsResponse lists the distinct filter choices present in the collection.
type FacetsResponse struct {
	ServiceTypes []string `json:"serviceTypes"`
}
