package home

import "github.com/foodloop/foodloop/internal/collections"

type Response struct {
	Steps            []collections.HowItWorksStep     `json:"steps"`
	ImpactMetrics    []collections.ImpactMetric       `json:"impactMetrics"`
	FeaturedListings []collections.MarketplaceListing `json:"featuredListings"`
}
