package core

import (
	"testing"
	"time"
)

func TestNewUserProfile(t *testing.T) {
	profile := NewUserProfile("user123")

	if profile.Currency != "JPY" {
		t.Fatalf("default currency = %q, want JPY", profile.Currency)
	}
	if profile.Timezone != "Asia/Tokyo" {
		t.Fatalf("default timezone = %q, want Asia/Tokyo", profile.Timezone)
	}
	if profile.DisplayName != nil {
		t.Fatal("display name should start unset")
	}
}

func TestUserProfilePartialUpdate(t *testing.T) {
	profile := NewUserProfile("user123")
	before := profile.UpdatedAt

	time.Sleep(time.Millisecond)
	name := "Alice"
	profile.Update(&name, nil, nil)

	if profile.DisplayName == nil || *profile.DisplayName != "Alice" {
		t.Fatalf("display name not applied: %v", profile.DisplayName)
	}
	if profile.Currency != "JPY" || profile.Timezone != "Asia/Tokyo" {
		t.Fatal("nil fields must leave prior values untouched")
	}
	if !profile.UpdatedAt.After(before) {
		t.Fatal("updated_at must be strictly greater after update")
	}
}

func TestUserProfileUpdateAlwaysBumpsTimestamp(t *testing.T) {
	profile := NewUserProfile("user123")
	before := profile.UpdatedAt

	time.Sleep(time.Millisecond)
	profile.Update(nil, nil, nil)

	// Current behavior: the timestamp moves even when nothing changed.
	if !profile.UpdatedAt.After(before) {
		t.Fatal("updated_at should move even for an empty update")
	}
}
