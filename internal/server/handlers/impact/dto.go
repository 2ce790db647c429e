package impact

import (
	"time"

	"github.com/foodloop/foodloop/internal/collections"
)

// CreateRequest represents the request payload for creating an impact metric.
type CreateRequest struct {
	ID                   string     `json:"id,omitempty"                   validate:"omitempty,uuid"`
	MetricName           string     `json:"metricName"                     validate:"required,min=1,max=200"`
	MetricValue          float64    `json:"metricValue"`
	UnitOfMeasure        string     `json:"unitOfMeasure,omitempty"        validate:"max=50"`
	MetricDescription    string     `json:"metricDescription,omitempty"    validate:"max=2000"`
	LastUpdated          *time.Time `json:"lastUpdated,omitempty"`
	VisualRepresentation string     `json:"visualRepresentation,omitempty"`
}

// UpdateRequest represents the request payload for updating a metric.
type UpdateRequest struct {
	MetricName           *string    `json:"metricName,omitempty"           validate:"omitempty,min=1,max=200"`
	MetricValue          *float64   `json:"metricValue,omitempty"`
	UnitOfMeasure        *string    `json:"unitOfMeasure,omitempty"        validate:"omitempty,max=50"`
	MetricDescription    *string    `json:"metricDescription,omitempty"    validate:"omitempty,max=2000"`
	LastUpdated          *time.Time `json:"lastUpdated,omitempty"`
	VisualRepresentation *string    `json:"visualRepresentation,omitempty"`
}

// ListResponse represents the response payload for a full-collection fetch.
type ListResponse struct {
	Items []collections.ImpactMetric `json:"items"`
}
