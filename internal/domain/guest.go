package domain

import "time"

const (
	// Bounds for the party size a single guest entry may consume.
	MinAccompanyingCount int32 = 1
	MaxAccompanyingCount int32 = 10
)

type Guest struct {
	ID                    int32      `json:"id"`
	EventID               int32      `json:"event_id"`
	AddedByUserID         int32      `json:"added_by_user_id"` // owner or collaborator user id
	Name                  string     `json:"name"`
	Phone                 string     `json:"phone"` // E.164
	AccompanyingCount     int32      `json:"accompanying_count"`
	WhatsappMessageSent   bool       `json:"whatsapp_message_sent"`
	WhatsappMessageSentAt *time.Time `json:"whatsapp_message_sent_at,omitempty"`
	CreatedOn             string     `json:"created_on"`
	UpdatedOn             string     `json:"updated_on"`
}

// GuestPatch carries the mutable fields of a guest entry. Nil means
// "leave unchanged".
type GuestPatch struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	AccompanyingCount *int32  `json:"accompanying_count,omitempty"`
}
