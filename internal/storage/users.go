package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kakeibo/internal/core"
)

type UserRepo struct {
	db *sql.DB
}

func (r *UserRepo) FindByID(ctx context.Context, userID core.UserID) (*core.UserProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, display_name, currency, timezone, created_at, updated_at
		FROM users WHERE user_id = ?`, string(userID))

	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	return profile, nil
}

func (r *UserRepo) Save(ctx context.Context, profile *core.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, display_name, currency, timezone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(profile.UserID), profile.DisplayName, profile.Currency, profile.Timezone,
		formatTime(profile.CreatedAt), formatTime(profile.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save user %s: %w", profile.UserID, err)
	}
	return nil
}

func (r *UserRepo) Update(ctx context.Context, profile *core.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET display_name = ?, currency = ?, timezone = ?, updated_at = ?
		WHERE user_id = ?`,
		profile.DisplayName, profile.Currency, profile.Timezone,
		formatTime(profile.UpdatedAt), string(profile.UserID))
	if err != nil {
		return fmt.Errorf("update user %s: %w", profile.UserID, err)
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, userID core.UserID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, string(userID))
	if err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*core.UserProfile, error) {
	var (
		profile     core.UserProfile
		displayName sql.NullString
		createdAt   string
		updatedAt   string
	)
	if err := row.Scan(&profile.UserID, &displayName, &profile.Currency, &profile.Timezone, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if displayName.Valid {
		profile.DisplayName = &displayName.String
	}

	var err error
	if profile.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if profile.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &profile, nil
}
