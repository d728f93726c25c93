package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"kakeibo/internal/core"
)

type TransactionRepo struct {
	db *sql.DB
}

const transactionColumns = `transaction_id, user_id, tx_type, amount_minor, currency,
	description, category, tags, tx_date,
	settlement_id, settlement_creditor, settlement_debtor, settlement_status,
	created_at, updated_at`

func (r *TransactionRepo) FindByID(ctx context.Context, transactionID core.TransactionID) (*core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = ?`,
		string(transactionID))

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", transactionID, err)
	}
	return tx, nil
}

func (r *TransactionRepo) FindByUserID(ctx context.Context, userID core.UserID) ([]*core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? ORDER BY tx_date DESC`,
		string(userID))
	if err != nil {
		return nil, fmt.Errorf("list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txs []*core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (r *TransactionRepo) Save(ctx context.Context, tx *core.Transaction) error {
	tags, err := json.Marshal(tx.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	var settlementID, creditor, debtor, status sql.NullString
	if tx.Settlement != nil {
		settlementID = sql.NullString{String: tx.Settlement.SettlementID, Valid: true}
		creditor = sql.NullString{String: string(tx.Settlement.CreditorUserID), Valid: true}
		debtor = sql.NullString{String: string(tx.Settlement.DebtorUserID), Valid: true}
		status = sql.NullString{String: string(tx.Settlement.Status), Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(tx.TransactionID), string(tx.UserID), string(tx.Type),
		tx.Amount.Value, tx.Amount.Currency,
		tx.Description, string(tx.Category), string(tags), formatTime(tx.Date),
		settlementID, creditor, debtor, status,
		formatTime(tx.CreatedAt), formatTime(tx.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save transaction %s: %w", tx.TransactionID, err)
	}
	return nil
}

func (r *TransactionRepo) Update(ctx context.Context, tx *core.Transaction) error {
	tags, err := json.Marshal(tx.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	var settlementID, creditor, debtor, status sql.NullString
	if tx.Settlement != nil {
		settlementID = sql.NullString{String: tx.Settlement.SettlementID, Valid: true}
		creditor = sql.NullString{String: string(tx.Settlement.CreditorUserID), Valid: true}
		debtor = sql.NullString{String: string(tx.Settlement.DebtorUserID), Valid: true}
		status = sql.NullString{String: string(tx.Settlement.Status), Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE transactions SET
			tx_type = ?, amount_minor = ?, currency = ?, description = ?, category = ?,
			tags = ?, tx_date = ?,
			settlement_id = ?, settlement_creditor = ?, settlement_debtor = ?, settlement_status = ?,
			updated_at = ?
		WHERE transaction_id = ?`,
		string(tx.Type), tx.Amount.Value, tx.Amount.Currency, tx.Description, string(tx.Category),
		string(tags), formatTime(tx.Date),
		settlementID, creditor, debtor, status,
		formatTime(tx.UpdatedAt), string(tx.TransactionID))
	if err != nil {
		return fmt.Errorf("update transaction %s: %w", tx.TransactionID, err)
	}
	return nil
}

func (r *TransactionRepo) Delete(ctx context.Context, transactionID core.TransactionID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?`, string(transactionID))
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", transactionID, err)
	}
	return nil
}

func scanTransaction(row rowScanner) (*core.Transaction, error) {
	var (
		tx           core.Transaction
		tags         string
		txDate       string
		settlementID sql.NullString
		creditor     sql.NullString
		debtor       sql.NullString
		status       sql.NullString
		createdAt    string
		updatedAt    string
	)
	if err := row.Scan(&tx.TransactionID, &tx.UserID, &tx.Type,
		&tx.Amount.Value, &tx.Amount.Currency,
		&tx.Description, &tx.Category, &tags, &txDate,
		&settlementID, &creditor, &debtor, &status,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &tx.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if settlementID.Valid {
		tx.Settlement = &core.SettlementInfo{
			SettlementID:   settlementID.String,
			CreditorUserID: core.UserID(creditor.String),
			DebtorUserID:   core.UserID(debtor.String),
			Status:         core.SettlementStatus(status.String),
		}
	}

	var err error
	if tx.Date, err = parseTime(txDate); err != nil {
		return nil, err
	}
	if tx.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if tx.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &tx, nil
}
