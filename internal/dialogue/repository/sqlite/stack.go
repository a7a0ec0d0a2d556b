package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/dialogue/repository"
)

func (r *implRepository) GetStack(ctx context.Context, key dialogue.Key) (repository.Snapshot, error) {
	const query = `SELECT payload, version FROM dialogue_stacks WHERE user_id = ? AND session_id = ?`

	var snap repository.Snapshot
	err := r.db.QueryRowContext(ctx, query, key.UserID, key.SessionID).Scan(&snap.Payload, &snap.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.Snapshot{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStack"), err)
		return repository.Snapshot{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return snap, nil
}

func (r *implRepository) ReplaceStack(ctx context.Context, key dialogue.Key, opt repository.ReplaceStackOptions) (int64, error) {
	now := time.Now().UTC()

	var (
		res sql.Result
		err error
	)
	if opt.ExpectedVersion == 0 {
		const insert = `
			INSERT INTO dialogue_stacks (user_id, session_id, payload, version, updated_at)
			VALUES (?, ?, ?, 1, ?)
			ON CONFLICT (user_id, session_id) DO NOTHING`
		res, err = r.db.ExecContext(ctx, insert, key.UserID, key.SessionID, opt.Payload, now)
	} else {
		const update = `
			UPDATE dialogue_stacks
			SET payload = ?, version = version + 1, updated_at = ?
			WHERE user_id = ? AND session_id = ? AND version = ?`
		res, err = r.db.ExecContext(ctx, update, opt.Payload, now, key.UserID, key.SessionID, opt.ExpectedVersion)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceStack"), err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToReplace, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToReplace, err)
	}
	if affected == 0 {
		return 0, repository.ErrVersionConflict
	}
	return opt.ExpectedVersion + 1, nil
}
