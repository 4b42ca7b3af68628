package dto

import (
	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// ElementListResponse is one page of element names
type ElementListResponse struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Elements []string `json:"elements"`
}

// SearchResponse is one page of keyword search results
type SearchResponse struct {
	Keyword  string   `json:"keyword"`
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Elements []string `json:"elements"`
}

// ElementLabelResponse is the label resolution of one element
type ElementLabelResponse struct {
	ElementName string `json:"element_name"`
	Label       string `json:"label"`
}

// ElementReferencesResponse is the reference resolution of one element
type ElementReferencesResponse struct {
	ElementName string             `json:"element_name"`
	References  []entity.Reference `json:"references"`
}

// ServiceInfoResponse describes the service and its endpoint directory
type ServiceInfoResponse struct {
	Message      string            `json:"message"`
	Description  string            `json:"description"`
	Endpoints    map[string]string `json:"endpoints"`
	WebInterface string            `json:"web_interface"`
}
