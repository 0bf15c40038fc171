package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Role represents the role of an authenticated user
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	return role == RoleUser || role == RoleAdmin
}

// SenderType identifies who wrote a conversation message
type SenderType string

const (
	SenderTypeAI   SenderType = "AI"
	SenderTypeUser SenderType = "USER"
)

// ContactStatus represents the relationship stage of a contact
type ContactStatus string

const (
	ContactStatusLead         ContactStatus = "lead"
	ContactStatusClient       ContactStatus = "client"
	ContactStatusFormerClient ContactStatus = "former_client"
)

// IsValidContactStatus checks if a contact status is valid
func IsValidContactStatus(status ContactStatus) bool {
	return status == ContactStatusLead ||
		status == ContactStatusClient ||
		status == ContactStatusFormerClient
}

// DeliveryStatus tracks the hand-off of a user reply to the automation webhook
type DeliveryStatus string

const (
	DeliveryStatusNone       DeliveryStatus = "none"
	DeliveryStatusSkipped    DeliveryStatus = "skipped"
	DeliveryStatusQueued     DeliveryStatus = "queued"
	DeliveryStatusDelivering DeliveryStatus = "delivering"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusFailed     DeliveryStatus = "failed"
)

// Caller is the authenticated identity a request is executed for
type Caller struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the caller may see rows owned by other users
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// ReplyEvent is the payload posted to the automation webhook for a user reply
type ReplyEvent struct {
	EventID   string    `json:"eventId"`
	MessageID string    `json:"messageId"`
	UserID    string    `json:"userId"`
	ContactID string    `json:"contactId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MergeTags returns the ordered union of existing and added tags.
// Existing order is kept and new tags are appended in input order.
func MergeTags(existing []string, added []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(added))
	result := make([]string, 0, len(existing)+len(added))
	for _, tags := range [][]string{existing, added} {
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			result = append(result, tag)
		}
	}
	return result
}

// RemoveTags returns existing tags minus the removed ones, keeping order
func RemoveTags(existing []string, removed []string) []string {
	drop := make(map[string]struct{}, len(removed))
	for _, tag := range removed {
		drop[strings.TrimSpace(tag)] = struct{}{}
	}

	result := make([]string, 0, len(existing))
	for _, tag := range existing {
		if _, ok := drop[tag]; ok {
			continue
		}
		result = append(result, tag)
	}
	return result
}

// RealtimeEvent is a hub push fanned out to every API replica
type RealtimeEvent struct {
	ID      string          `json:"id"`
	UserID  string          `json:"userId"`
	Target  string          `json:"target"`
	Payload json.RawMessage `json:"payload"`
}

// UserGroup returns the hub group a user's connections join
func UserGroup(userID string) string {
	return REALTIME_USER_GROUP_PREFIX + userID
}
