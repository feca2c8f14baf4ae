package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/sixfigure-api/internal/errs"
)

// EventUserCreated is the only Clerk event type acted on.
const EventUserCreated = "user.created"

// Messages returned to the webhook sender.
const (
	MessageUserCreated       = "User created successfully"
	MessageUserAlreadyExists = "User already exists"

	messagePayloadNotObject = "Webhook payload must be a JSON object"
	messageInvalidData      = "Missing or invalid 'data' in webhook payload"
	messageInvalidUserID    = "Missing or invalid user ID in webhook data"
)

var errPayloadNotObject = errors.New(messagePayloadNotObject)

// ClerkWebhookEvent is a validated webhook envelope.
//
// ClerkID is only set when Type is EventUserCreated; every other type is
// acknowledged without being acted on.
type ClerkWebhookEvent struct {
	Type    string
	ClerkID string
}

// IsUserCreated reports whether the event requires a user to be created.
func (e ClerkWebhookEvent) IsUserCreated() bool {
	return e.Type == EventUserCreated
}

// IgnoredMessage is the acknowledgement sent for events that are not acted on.
func (e ClerkWebhookEvent) IgnoredMessage() string {
	return fmt.Sprintf("Event type '%s' ignored", e.Type)
}

// WebhookResponse is the 200 body of POST /api/users/webhook.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
	ClerkID string `json:"clerk_id,omitempty"`
}

// ClerkWebhookRequest is the envelope bound from the request body.
//
// Binding only checks that the body is a JSON object; Validate then parses
// the fields into a ClerkWebhookEvent. Nothing reads the raw fields after
// that.
type ClerkWebhookRequest struct {
	fields  map[string]json.RawMessage
	present bool
	event   ClerkWebhookEvent
}

// UnmarshalJSON accepts any JSON object. A literal null leaves the request
// empty so Validate rejects it.
func (r *ClerkWebhookRequest) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errPayloadNotObject
	}

	r.fields = fields
	r.present = true
	return nil
}

// BindErrorCode makes body decoding failures report INVALID_PAYLOAD.
func (r *ClerkWebhookRequest) BindErrorCode() string {
	return errs.CodeInvalidPayload
}

// Validate parses the envelope. See ParseClerkWebhook for the rules.
func (r *ClerkWebhookRequest) Validate() error {
	if !r.present {
		return errs.NewInvalidPayloadError(messagePayloadNotObject)
	}

	event, err := ParseClerkWebhook(r.fields)
	if err != nil {
		return err
	}

	r.event = event
	return nil
}

// Event returns the parsed event. Only meaningful after Validate succeeded.
func (r *ClerkWebhookRequest) Event() ClerkWebhookEvent {
	return r.event
}

// ParseClerkWebhook turns envelope fields into an event, in order:
//
//  1. a "type" other than "user.created" (missing and non-string included)
//     yields an event to be ignored, whatever "data" holds
//  2. "data" must be a JSON object
//  3. "data.id" must be a non-blank string
func ParseClerkWebhook(fields map[string]json.RawMessage) (ClerkWebhookEvent, error) {
	event := ClerkWebhookEvent{Type: eventType(fields["type"])}
	if !event.IsUserCreated() {
		return event, nil
	}

	var data map[string]json.RawMessage
	rawData, ok := fields["data"]
	if !ok || json.Unmarshal(rawData, &data) != nil || data == nil {
		return ClerkWebhookEvent{}, errs.NewInvalidPayloadError(messageInvalidData)
	}

	var clerkID string
	rawID, ok := data["id"]
	if !ok || json.Unmarshal(rawID, &clerkID) != nil || strings.TrimSpace(clerkID) == "" {
		return ClerkWebhookEvent{}, errs.NewInvalidPayloadError(messageInvalidUserID)
	}

	event.ClerkID = clerkID
	return event, nil
}

// eventType renders the "type" field. Strings are unquoted; any other JSON
// value is kept verbatim so it can still be echoed in the ignore message.
func eventType(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(bytes.TrimSpace(raw))
}
