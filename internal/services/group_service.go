package services

import (
	"context"
	"fmt"

	"kakeibo/internal/core"
)

// GroupService exposes group CRUD and membership changes. Membership rules
// (owner protection, dedup) live on the entity; the service only loads,
// mutates and persists.
type GroupService struct {
	repo GroupRepository
}

func NewGroupService(repo GroupRepository) *GroupService {
	return &GroupService{repo: repo}
}

// GetGroup returns the group, or nil when unknown.
func (s *GroupService) GetGroup(ctx context.Context, groupID core.GroupID) (*core.Group, error) {
	return s.repo.FindByID(ctx, groupID)
}

// GetGroups lists the groups a user belongs to.
func (s *GroupService) GetGroups(ctx context.Context, userID core.UserID) ([]*core.Group, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *GroupService) CreateGroup(ctx context.Context, group *core.Group) error {
	if err := s.repo.Save(ctx, group); err != nil {
		return fmt.Errorf("save group: %w", err)
	}
	return nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, group *core.Group) error {
	if err := s.repo.Update(ctx, group); err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, groupID core.GroupID) error {
	if err := s.repo.Delete(ctx, groupID); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// AddMember adds userID to the group. Returns the updated group, or nil
// when the group does not exist.
func (s *GroupService) AddMember(ctx context.Context, groupID core.GroupID, userID core.UserID) (*core.Group, error) {
	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}
	group.AddMember(userID)
	if err := s.repo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	return group, nil
}

// RemoveMember removes userID from the group. Owner removal is silently
// rejected by the entity; the group is persisted either way.
func (s *GroupService) RemoveMember(ctx context.Context, groupID core.GroupID, userID core.UserID) (*core.Group, error) {
	group, err := s.repo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}
	group.RemoveMember(userID)
	if err := s.repo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	return group, nil
}
