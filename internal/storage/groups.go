package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"kakeibo/internal/core"
)

type GroupRepo struct {
	db *sql.DB
}

const groupColumns = `group_id, name, description, owner_id, members, created_at, updated_at`

func (r *GroupRepo) FindByID(ctx context.Context, groupID core.GroupID) (*core.Group, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE group_id = ?`, string(groupID))

	group, err := scanGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find group %s: %w", groupID, err)
	}
	return group, nil
}

// FindByUserID returns the groups the user belongs to. Membership lives in a
// JSON column, so the filter runs in Go rather than SQL.
func (r *GroupRepo) FindByUserID(ctx context.Context, userID core.UserID) ([]*core.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM groups ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []*core.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		if group.IsMember(userID) {
			groups = append(groups, group)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return groups, nil
}

func (r *GroupRepo) Save(ctx context.Context, group *core.Group) error {
	members, err := json.Marshal(group.Members)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO groups (`+groupColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(group.GroupID), group.Name, group.Description, string(group.OwnerID),
		string(members), formatTime(group.CreatedAt), formatTime(group.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save group %s: %w", group.GroupID, err)
	}
	return nil
}

func (r *GroupRepo) Update(ctx context.Context, group *core.Group) error {
	members, err := json.Marshal(group.Members)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE groups SET name = ?, description = ?, members = ?, updated_at = ?
		WHERE group_id = ?`,
		group.Name, group.Description, string(members),
		formatTime(group.UpdatedAt), string(group.GroupID))
	if err != nil {
		return fmt.Errorf("update group %s: %w", group.GroupID, err)
	}
	return nil
}

func (r *GroupRepo) Delete(ctx context.Context, groupID core.GroupID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE group_id = ?`, string(groupID))
	if err != nil {
		return fmt.Errorf("delete group %s: %w", groupID, err)
	}
	return nil
}

func scanGroup(row rowScanner) (*core.Group, error) {
	var (
		group     core.Group
		members   string
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&group.GroupID, &group.Name, &group.Description, &group.OwnerID,
		&members, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(members), &group.Members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}

	var err error
	if group.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if group.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &group, nil
}
