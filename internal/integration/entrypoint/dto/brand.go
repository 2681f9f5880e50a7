// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trackbill/backend/internal/domain/entity"
)

// CreateBrandRequest represents the request body for brand creation.
type CreateBrandRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=100"`
	ContactEmail      string  `json:"contact_email" binding:"required,email"`
	ContactName       string  `json:"contact_name,omitempty" binding:"omitempty,max=100"`
	CurrencyCode      string  `json:"currency_code,omitempty" binding:"omitempty,len=3"`
	DefaultHourlyRate *string `json:"default_hourly_rate,omitempty"`
}

// UpdateBrandRequest represents the request body for brand update.
type UpdateBrandRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	ContactEmail      *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactName       *string `json:"contact_name,omitempty" binding:"omitempty,max=100"`
	CurrencyCode      *string `json:"currency_code,omitempty" binding:"omitempty,len=3"`
	DefaultHourlyRate *string `json:"default_hourly_rate,omitempty"`
	ClearHourlyRate   bool    `json:"clear_hourly_rate,omitempty"`
}

// BrandResponse represents a single brand in API responses.
type BrandResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ContactEmail      string    `json:"contact_email"`
	ContactName       string    `json:"contact_name"`
	CurrencyCode      string    `json:"currency_code"`
	DefaultHourlyRate *string   `json:"default_hourly_rate,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BrandListResponse represents the response for listing brands.
type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
}

// ToBrandResponse converts a domain Brand entity to a BrandResponse DTO.
func ToBrandResponse(brand *entity.Brand) BrandResponse {
	response := BrandResponse{
		ID:           brand.ID.String(),
		Name:         brand.Name,
		ContactEmail: brand.ContactEmail,
		ContactName:  brand.ContactName,
		CurrencyCode: brand.CurrencyCode,
		CreatedAt:    brand.CreatedAt,
		UpdatedAt:    brand.UpdatedAt,
	}

	if brand.DefaultHourlyRate != nil {
		rate := brand.DefaultHourlyRate.StringFixed(2)
		response.DefaultHourlyRate = &rate
	}

	return response
}

// ToBrandListResponse converts brand entities to a BrandListResponse.
func ToBrandListResponse(brands []*entity.Brand) BrandListResponse {
	responses := make([]BrandResponse, len(brands))
	for i, brand := range brands {
		responses[i] = ToBrandResponse(brand)
	}
	return BrandListResponse{Brands: responses}
}
