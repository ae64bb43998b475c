package model

import (
	"slices"
	"time"
)

type Project struct {
	ID          int64     `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	OwnerID     int64     `bson:"owner_id" json:"owner_id"`
	MemberIDs   []int64   `bson:"member_ids" json:"member_ids"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// IsOwner reports whether userID owns the project.
func (p *Project) IsOwner(userID int64) bool {
	return p != nil && userID != 0 && p.OwnerID == userID
}

// IsMember reports member-level access. The owner always has it, listed or not.
func (p *Project) IsMember(userID int64) bool {
	if p == nil || userID == 0 {
		return false
	}
	return p.OwnerID == userID || slices.Contains(p.MemberIDs, userID)
}

// ProjectFilter carries the client-side filters for project listings.
type ProjectFilter struct {
	Search string
	// Role is owner or member, evaluated against RoleUserID.
	Role       string
	RoleUserID int64
}

// ProjectResponse is the representation returned to callers.
type ProjectResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       *UserSummary   `json:"owner"`
	Members     []*UserSummary `json:"members"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
