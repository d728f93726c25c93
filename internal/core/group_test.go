package core

import (
	"testing"
	"time"
)

func TestNewGroup(t *testing.T) {
	group := NewGroup("Household", "shared expenses", "owner123")

	if group.GroupID == "" {
		t.Fatal("expected generated group id")
	}
	if !group.IsOwner("owner123") {
		t.Fatal("creator should be owner")
	}
	if !group.IsMember("owner123") || len(group.Members) != 1 {
		t.Fatalf("owner should be the sole initial member, got %v", group.Members)
	}
}

func TestGroupUpdate(t *testing.T) {
	group := NewGroup("Household", "shared expenses", "owner123")
	stamp := group.UpdatedAt

	time.Sleep(time.Millisecond)
	name := "Family"
	group.Update(&name, nil)

	if group.Name != "Family" || group.Description != "shared expenses" {
		t.Fatalf("partial update wrong: %q %q", group.Name, group.Description)
	}
	if !group.UpdatedAt.After(stamp) {
		t.Fatal("update must refresh updated_at")
	}
}

func TestGroupMembership(t *testing.T) {
	group := NewGroup("Household", "", "owner123")

	group.AddMember("member456")
	if !group.IsMember("member456") {
		t.Fatal("member not added")
	}
	if group.IsOwner("member456") {
		t.Fatal("membership must not confer ownership")
	}

	// Idempotent add: no duplicate, no timestamp change.
	stamp := group.UpdatedAt
	time.Sleep(time.Millisecond)
	group.AddMember("member456")
	if len(group.Members) != 2 {
		t.Fatalf("duplicate member added: %v", group.Members)
	}
	if !group.UpdatedAt.Equal(stamp) {
		t.Fatal("no-op add must not touch updated_at")
	}

	group.RemoveMember("member456")
	if group.IsMember("member456") {
		t.Fatal("member not removed")
	}
	if len(group.Members) != 1 || group.Members[0] != "owner123" {
		t.Fatalf("unexpected members after removal: %v", group.Members)
	}
}

func TestGroupOwnerCannotBeRemoved(t *testing.T) {
	group := NewGroup("Household", "", "owner123")
	stamp := group.UpdatedAt

	time.Sleep(time.Millisecond)
	group.RemoveMember("owner123")

	// Silently rejected: owner still present, no error raised, no timestamp bump.
	if !group.IsMember("owner123") {
		t.Fatal("owner must remain a member")
	}
	if !group.UpdatedAt.Equal(stamp) {
		t.Fatal("rejected removal must not touch updated_at")
	}
}

func TestGroupRemoveAbsentMember(t *testing.T) {
	group := NewGroup("Household", "", "owner123")
	stamp := group.UpdatedAt

	time.Sleep(time.Millisecond)
	group.RemoveMember("stranger")

	if !group.UpdatedAt.Equal(stamp) {
		t.Fatal("removing an absent member must not touch updated_at")
	}
}

func TestGroupValidate(t *testing.T) {
	if err := NewGroup("Household", "", "owner123").Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := NewGroup("  ", "", "owner123").Validate(); err == nil {
		t.Fatal("expected error for blank name")
	}
	if err := NewGroup("Household", "", "").Validate(); err == nil {
		t.Fatal("expected error for empty owner")
	}
}
