package services

import (
	"context"
	"testing"

	"kakeibo/internal/core"
	"kakeibo/internal/memory"
)

func TestGroupServiceMembership(t *testing.T) {
	ctx := context.Background()
	svc := NewGroupService(memory.NewGroupRepo())

	group := core.NewGroup("Household", "shared", "owner123")
	if err := svc.CreateGroup(ctx, group); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.AddMember(ctx, group.GroupID, "member456")
	if err != nil {
		t.Fatalf("add member: %v", err)
	}
	if !updated.IsMember("member456") {
		t.Fatalf("member missing: %v", updated.Members)
	}

	// Membership queries see the persisted state.
	groups, err := svc.GetGroups(ctx, "member456")
	if err != nil || len(groups) != 1 {
		t.Fatalf("groups for member: %v %v", groups, err)
	}

	updated, err = svc.RemoveMember(ctx, group.GroupID, "member456")
	if err != nil {
		t.Fatalf("remove member: %v", err)
	}
	if updated.IsMember("member456") {
		t.Fatal("member should be removed")
	}

	// Owner removal is silently rejected and the owner stays persisted.
	updated, err = svc.RemoveMember(ctx, group.GroupID, "owner123")
	if err != nil {
		t.Fatalf("remove owner: %v", err)
	}
	if !updated.IsMember("owner123") {
		t.Fatal("owner must survive removal attempts")
	}
}

func TestGroupServiceUnknownGroup(t *testing.T) {
	ctx := context.Background()
	svc := NewGroupService(memory.NewGroupRepo())

	group, err := svc.AddMember(ctx, "missing", "user123")
	if err != nil {
		t.Fatalf("add member: %v", err)
	}
	if group != nil {
		t.Fatal("unknown group should yield nil")
	}
}

func TestUserServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepo())

	profile := core.NewUserProfile("user123")
	if err := svc.CreateUser(ctx, profile); err != nil {
		t.Fatalf("create: %v", err)
	}

	stored, err := svc.GetUser(ctx, "user123")
	if err != nil || stored == nil {
		t.Fatalf("get: %v %v", stored, err)
	}
	if stored.Currency != "JPY" {
		t.Fatalf("currency = %q", stored.Currency)
	}

	name := "Alice"
	stored.Update(&name, nil, nil)
	if err := svc.UpdateUser(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := svc.GetUser(ctx, "user123")
	if err != nil || again == nil || again.DisplayName == nil || *again.DisplayName != "Alice" {
		t.Fatalf("update not persisted: %+v %v", again, err)
	}

	if err := svc.DeleteUser(ctx, "user123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := svc.GetUser(ctx, "user123")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if gone != nil {
		t.Fatal("profile should be gone")
	}
}
