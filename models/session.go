package models

import "time"

// ConversationState names a step of the booking conversation.
type ConversationState string

const (
	StateInitial           ConversationState = "initial"
	StateRoomSelection     ConversationState = "room_selection"
	StateDateConfirmation  ConversationState = "date_confirmation"
	StateGuestConfirmation ConversationState = "guest_confirmation"
	StatePriceConfirmation ConversationState = "price_confirmation"
	StateCompleted         ConversationState = "completed"
)

// BookingContext is the mutable working data a session accumulates while
// progressing through the conversation.
type BookingContext struct {
	SelectedRoom  string    `json:"selectedRoom,omitempty"`
	RoomPrice     int       `json:"roomPrice,omitempty"`
	CheckIn       string    `json:"checkIn,omitempty"` // YYYY-MM-DD
	CheckOut      string    `json:"checkOut,omitempty"`
	Nights        int       `json:"nights,omitempty"`
	Adults        int       `json:"adults,omitempty"`
	Children      int       `json:"children,omitempty"`
	Total         int       `json:"total,omitempty"`
	GuestName     string    `json:"guestName,omitempty"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ConversationSession holds one ongoing conversation, identified by an
// opaque session id. It owns exactly one state machine's worth of context.
type ConversationSession struct {
	SessionID string            `json:"sessionId"`
	State     ConversationState `json:"state"`
	Context   BookingContext    `json:"context"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// StepResult is returned for every processed message. Success=false means the
// input did not satisfy the current state's required shape; the response is a
// retryable user-facing prompt, not an error.
type StepResult struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	State    string `json:"state"`
}
