package dto

import (
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

// Response is the envelope of every successful single-resource or action response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination describes the page returned by a list endpoint
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

// NewPagination computes the page count for a total
func NewPagination(total int64, page, limit int) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

// ListResponse is the envelope of a paginated list
type ListResponse[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CountResponse is the envelope of an unpaginated list scoped to a parent entity
type CountResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

// ConversationResponse is the envelope of a conversation with one contact
type ConversationResponse struct {
	Success   bool               `json:"success"`
	Count     int                `json:"count"`
	Data      []schema.AiMessage `json:"data"`
	ContactID string             `json:"contactId"`
}

// ClearResponse is the envelope returned after clearing a conversation history
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// ConversationSummary is one entry of the conversation list
type ConversationSummary struct {
	ContactID   string            `json:"contactId"`
	ContactName string            `json:"contactName"`
	LastMessage *schema.AiMessage `json:"lastMessage"`
}

// WebhookAck is the body returned to the automation platform, always with HTTP 200
type WebhookAck struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *schema.AiMessage `json:"data,omitempty"`
}

// ReplyResponse is returned after a user reply is saved
type ReplyResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *schema.AiMessage `json:"data"`
}

// HealthResponse is the body of the health check endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorBody is the error object of a failed response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every failed response
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   ErrorBody `json:"error"`
}

// NewErrorResponse wraps an API error in the failure envelope
func NewErrorResponse(err *apierrors.APIError) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: err.Message,
		Error: ErrorBody{
			Code:    string(err.Code),
			Message: err.Message,
			Details: err.Details,
		},
	}
}

// NewList builds a paginated list envelope, never encoding a nil slice
func NewList[T any](items []T, total int64, page, limit int) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Success:    true,
		Data:       items,
		Pagination: NewPagination(total, page, limit),
	}
}

// NewCount builds an unpaginated list envelope, never encoding a nil slice
func NewCount[T any](items []T) CountResponse[T] {
	if items == nil {
		items = []T{}
	}
	return CountResponse[T]{
		Success: true,
		Count:   len(items),
		Data:    items,
	}
}

// ContactPin is the result of a PIN lookup by phone number
type ContactPin struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Pin         *string `json:"pin"`
}
