package core

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyGroupName = errors.New("empty group name")

// Group is a set of users sharing expenses. The owner is seeded as the first
// member and can never be removed; the member list holds no duplicates.
type Group struct {
	GroupID     GroupID   `json:"group_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     UserID    `json:"owner_id"`
	Members     []UserID  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewGroup creates a group owned by ownerID, who becomes its first member.
func NewGroup(name, description string, ownerID UserID) *Group {
	now := time.Now().UTC()
	return &Group{
		GroupID:     NewGroupID(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		Members:     []UserID{ownerID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update applies the non-nil fields and refreshes UpdatedAt. Nil means
// "leave unchanged".
func (g *Group) Update(name, description *string) {
	if name != nil {
		g.Name = *name
	}
	if description != nil {
		g.Description = *description
	}
	g.UpdatedAt = time.Now().UTC()
}

// AddMember adds the user unless already a member. No-op calls leave
// UpdatedAt untouched.
func (g *Group) AddMember(userID UserID) {
	if g.IsMember(userID) {
		return
	}
	g.Members = append(g.Members, userID)
	g.UpdatedAt = time.Now().UTC()
}

// RemoveMember drops the user from the group. Removing the owner is silently
// rejected; the timestamp moves only when the member set actually changed.
func (g *Group) RemoveMember(userID UserID) {
	if userID == g.OwnerID {
		return
	}
	for i, member := range g.Members {
		if member == userID {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			g.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// IsMember reports whether the user belongs to the group.
func (g *Group) IsMember(userID UserID) bool {
	for _, member := range g.Members {
		if member == userID {
			return true
		}
	}
	return false
}

// IsOwner reports whether the user owns the group.
func (g *Group) IsOwner(userID UserID) bool {
	return g.OwnerID == userID
}

func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyGroupName
	}
	if strings.TrimSpace(string(g.OwnerID)) == "" {
		return ErrEmptyUserID
	}
	return nil
}
