package collections

import (
	"time"

	"github.com/foodloop/foodloop/internal/storage"
)

// Collection identifiers. Field names and optionality of the entity shapes
// below are the wire contract of the store and must stay stable.
const (
	CollectionHowItWorksSteps        = "howitworkssteps"
	CollectionImpactMetrics          = "impactmetrics"
	CollectionMarketplaceListings    = "marketplacelistings"
	CollectionRecyclers              = "recyclers"
	CollectionSustainabilityServices = "sustainabilityservices"
	CollectionMarketplaceOrders      = "marketplaceorders"
	CollectionRecyclerOrders         = "recyclerorders"
	CollectionBlogPosts              = "blogposts"
)

// Names lists every registered collection.
func Names() []string {
	return []string{
		CollectionHowItWorksSteps,
		CollectionImpactMetrics,
		CollectionMarketplaceListings,
		CollectionRecyclers,
		CollectionSustainabilityServices,
		CollectionMarketplaceOrders,
		CollectionRecyclerOrders,
		CollectionBlogPosts,
	}
}

// HowItWorksStep is one step of the onboarding walkthrough, ordered for
// display by StepNumber ascending.
type HowItWorksStep struct {
	storage.BaseEntity

	StepNumber      int    `json:"stepNumber"`
	StepTitle       string `json:"stepTitle,omitempty"`
	StepDescription string `json:"stepDescription,omitempty"`
	StepImage       string `json:"stepImage,omitempty"`
	CTAText         string `json:"ctaText,omitempty"`
	CTAURL          string `json:"ctaUrl,omitempty"`
}

// ImpactMetric is one aggregate environmental figure on the impact dashboard.
// A present VisualRepresentation gates the secondary visualization view.
type ImpactMetric struct {
	storage.BaseEntity

	MetricName           string     `json:"metricName,omitempty"`
	MetricValue          float64    `json:"metricValue"`
	UnitOfMeasure        string     `json:"unitOfMeasure,omitempty"`
	MetricDescription    string     `json:"metricDescription,omitempty"`
	LastUpdated          *time.Time `json:"lastUpdated,omitempty"`
	VisualRepresentation string     `json:"visualRepresentation,omitempty"`
}

// MarketplaceListing is the primary transactable entity: surplus food waste
// offered for exchange. PricePerUnit times Quantity derives a display-only
// total value, never persisted. AvailableUntil, when present, is the point in
// time after which the listing counts as expired for display purposes.
type MarketplaceListing struct {
	storage.BaseEntity

	ListingTitle   string     `json:"listingTitle,omitempty"`
	Description    string     `json:"description,omitempty"`
	WasteType      string     `json:"wasteType,omitempty"`
	Quantity       float64    `json:"quantity"`
	UnitOfMeasure  string     `json:"unitOfMeasure,omitempty"`
	PricePerUnit   float64    `json:"pricePerUnit"`
	Location       string     `json:"location,omitempty"`
	ListingImage   string     `json:"listingImage,omitempty"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
}

// Recycler is a recycling company profile.
type Recycler struct {
	storage.BaseEntity

	RecyclerName       string `json:"recyclerName,omitempty"`
	Logo               string `json:"logo,omitempty"`
	Description        string `json:"description,omitempty"`
	Location           string `json:"location,omitempty"`
	WebsiteURL         string `json:"websiteUrl,omitempty"`
	WasteTypesAccepted string `json:"wasteTypesAccepted,omitempty"`
	ProductsInReturn   string `json:"productsInReturn,omitempty"`
}

// SustainabilityService is a third-party service offering distinct from a
// recycler profile.
type SustainabilityService struct {
	storage.BaseEntity

	ServiceName      string `json:"serviceName,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	FullDescription  string `json:"fullDescription,omitempty"`
	ServiceType      string `json:"serviceType,omitempty"`
	PartnerName      string `json:"partnerName,omitempty"`
	ServiceImage     string `json:"serviceImage,omitempty"`
	ContactURL       string `json:"contactUrl,omitempty"`
	RecyclerID       string `json:"recyclerId,omitempty"`
}

// MarketplaceOrder is a future-facing transactional record linking a buyer to
// a listing.
type MarketplaceOrder struct {
	storage.BaseEntity

	OrderNumber     string     `json:"orderNumber,omitempty"`
	BuyerID         string     `json:"buyerId,omitempty"`
	ListingID       string     `json:"listingId,omitempty"`
	Quantity        float64    `json:"quantity"`
	TotalPrice      float64    `json:"totalPrice"`
	TransactionDate *time.Time `json:"transactionDate,omitempty"`
	OrderStatus     string     `json:"orderStatus,omitempty"`
}

// RecyclerOrder is a future-facing transactional record between a member and
// a recycler.
type RecyclerOrder struct {
	storage.BaseEntity

	InitiatingUserDisplayName string     `json:"initiatingUserDisplayName,omitempty"`
	RecyclerDisplayName       string     `json:"recyclerDisplayName,omitempty"`
	TransactionType           string     `json:"transactionType,omitempty"`
	TransactionDate           *time.Time `json:"transactionDate,omitempty"`
	Status                    string     `json:"status,omitempty"`
	Amount                    float64    `json:"amount"`
	TransactionDetails        string     `json:"transactionDetails,omitempty"`
}

// BlogPost is declared for contract completeness; no marketplace surface
// serves it yet.
type BlogPost struct {
	storage.BaseEntity

	Title         string     `json:"title,omitempty"`
	Slug          string     `json:"slug,omitempty"`
	Author        string     `json:"author,omitempty"`
	PublishDate   *time.Time `json:"publishDate,omitempty"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content,omitempty"`
	Category      string     `json:"category,omitempty"`
}
