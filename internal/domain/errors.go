package domain

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or is not visible to the caller
	ErrNotFound = errors.New("not found")

	// ErrReferenced is returned when a row cannot be deleted because dependent rows still reference it
	ErrReferenced = errors.New("referenced by dependent rows")

	// ErrAlreadyDelivered is returned when a reply has already reached the automation webhook
	ErrAlreadyDelivered = errors.New("message already delivered")

	// ErrWebhookNotConfigured is returned when the outbound automation webhook URL is unset
	ErrWebhookNotConfigured = errors.New("reply webhook not configured")
)
