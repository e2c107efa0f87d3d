package domain

type PackageType string

const (
	PackageTypeClassic PackageType = "CLASSIC"
	PackageTypePremium PackageType = "PREMIUM"
	PackageTypeVIP     PackageType = "VIP"
)

// AllowsCollaboration reports whether the purchased tier supports
// delegating quota slices to collaborators.
func (p PackageType) AllowsCollaboration() bool {
	return p == PackageTypePremium || p == PackageTypeVIP
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "UPCOMING"
	EventStatusDone      EventStatus = "DONE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

type Event struct {
	ID               int32          `json:"id"`
	OwnerID          int32          `json:"owner_id"`
	Title            string         `json:"title"`
	PackageType      PackageType    `json:"package_type"`
	TotalInviteQuota int32          `json:"total_invite_quota"` // fixed at creation
	ApprovalStatus   ApprovalStatus `json:"approval_status"`
	Status           EventStatus    `json:"status"`
	EventDate        string         `json:"event_date"`
	CardAssetID      *int32         `json:"card_asset_id,omitempty"` // set on approval
	AdminNotes       string         `json:"admin_notes,omitempty"`
	CreatedOn        string         `json:"created_on"`
	UpdatedOn        string         `json:"updated_on"`
}

// EventSummary carries the server-computed numbers the host UI displays.
// Remaining counts are always derived from the roster, never cached.
type EventSummary struct {
	Event           Event          `json:"event"`
	GuestCount      int32          `json:"guest_count"`
	SeatsUsed       int32          `json:"seats_used"`
	SeatsAllocated  int32          `json:"seats_allocated"` // carved out for collaborators
	OwnerRemaining  int32          `json:"owner_remaining"`
	DispatchedCount int32          `json:"dispatched_count"`
	Collaborators   []Collaborator `json:"collaborators,omitempty"`
}
