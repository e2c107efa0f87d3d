package domain

type Collaborator struct {
	ID             int32  `json:"id"`
	EventID        int32  `json:"event_id"`
	UserID         int32  `json:"user_id"`
	AllocatedQuota int32  `json:"allocated_quota"`
	UsedQuota      int32  `json:"used_quota"` // derived, populated on read
	CreatedOn      string `json:"created_on"`
}

type Role string

const (
	RoleOwner        Role = "OWNER"
	RoleCollaborator Role = "COLLABORATOR"
)

// RoleGrant is the resolved capability of an actor against one event.
// It is computed once per request; all later checks are data inspection.
type RoleGrant struct {
	Role           Role  `json:"role"`
	UserID         int32 `json:"user_id"`
	CollaboratorID int32 `json:"collaborator_id,omitempty"` // zero for owner
	AllocatedQuota int32 `json:"allocated_quota,omitempty"`
	UsedQuota      int32 `json:"used_quota,omitempty"`
}

func (g RoleGrant) IsOwner() bool {
	return g.Role == RoleOwner
}

// CanMutateGuest reports whether the grant permits touching a guest
// entry. Owners manage only their own entries; collaborators likewise.
func (g RoleGrant) CanMutateGuest(guest *Guest) bool {
	return guest.AddedByUserID == g.UserID
}
