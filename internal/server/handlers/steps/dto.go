package steps

import "github.com/foodloop/foodloop/internal/collections"

// CreateRequest represents the request payload for creating a walkthrough step.
type CreateRequest struct {
	ID              string `json:"id,omitempty"              validate:"omitempty,uuid"`
	StepNumber      int    `json:"stepNumber"                validate:"required,gte=1"`
	StepTitle       string `json:"stepTitle"                 validate:"required,min=1,max=200"`
	StepDescription string `json:"stepDescription,omitempty" validate:"max=2000"`
	StepImage       string `json:"stepImage,omitempty"`
	CTAText         string `json:"ctaText,omitempty"         validate:"max=100"`
	CTAURL          string `json:"ctaUrl,omitempty"          validate:"omitempty,url"`
}

// UpdateRequest represents the request payload for updating a step.
type UpdateRequest struct {
	StepNumber      *int    `json:"stepNumber,omitempty"      validate:"omitempty,gte=1"`
	StepTitle       *string `json:"stepTitle,omitempty"       validate:"omitempty,min=1,max=200"`
	StepDescription *string `json:"stepDescription,omitempty" validate:"omitempty,max=2000"`
	StepImage       *string `json:"stepImage,omitempty"`
	CTAText         *string `json:"ctaText,omitempty"         validate:"omitempty,max=100"`
	CTAURL          *string `json:"ctaUrl,omitempty"          validate:"omitempty,url"`
}

// ListResponse holds the steps ordered for display by stepNumber ascending.
type ListResponse struct {
	Items []collections.HowItWorksStep `json:"items"`
}
