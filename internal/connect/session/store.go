package session

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"
)

// store is the persistence layer. Queries are raw SQL bound onto the boil
// tagged structs in types.go; writes go through the passed executor so they
// participate in util/db.WithTransaction.
type store struct {
	db *sql.DB
}

func newStore(db *sql.DB) *store {
	return &store{db: db}
}

func (st *store) insertSession(ctx context.Context, exec boil.ContextExecutor, s *Session) error {
	_, err := exec.ExecContext(ctx, `
		INSERT INTO sessions (id, topic, status, chain_id, accounts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.Topic, s.Status, s.ChainID, s.Accounts, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return errors.Wrap(err, "failed to insert session")
	}

	return nil
}

func (st *store) getSession(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := queries.Raw(`
		SELECT id, topic, status, chain_id, accounts, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`, id).Bind(ctx, st.db, &s)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "failed to get session")
	}

	return &s, nil
}

func (st *store) listSessions(ctx context.Context, statuses []string) ([]*Session, error) {
	query := `
		SELECT id, topic, status, chain_id, accounts, created_at, updated_at
		FROM sessions
	`
	args := make([]interface{}, 0, len(statuses))

	if len(statuses) > 0 {
		query += " WHERE status IN (" + strmangle.Placeholders(true, len(statuses), 1, 1) + ")"
		for _, status := range statuses {
			args = append(args, status)
		}
	}

	query += " ORDER BY created_at DESC"

	var sessions []*Session
	if err := queries.Raw(query, args...).Bind(ctx, st.db, &sessions); err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

func (st *store) updateSession(ctx context.Context, exec boil.ContextExecutor, s *Session) error {
	res, err := exec.ExecContext(ctx, `
		UPDATE sessions
		SET status = $2, chain_id = $3, accounts = $4, updated_at = $5
		WHERE id = $1
	`, s.ID, s.Status, s.ChainID, s.Accounts, s.UpdatedAt)

	if err != nil {
		return errors.Wrap(err, "failed to update session")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (st *store) insertRequest(ctx context.Context, exec boil.ContextExecutor, r *Request) error {
	_, err := exec.ExecContext(ctx, `
		INSERT INTO session_requests (id, session_id, method, params, status, result, error_message, user_rejected, created_at, updated_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, r.ID, r.SessionID, r.Method, r.Params, r.Status, r.Result, r.ErrorMessage, r.UserRejected, r.CreatedAt, r.UpdatedAt, r.ResolvedAt)

	if err != nil {
		return errors.Wrap(err, "failed to insert session request")
	}

	return nil
}

func (st *store) getRequest(ctx context.Context, id string) (*Request, error) {
	var r Request
	err := queries.Raw(`
		SELECT id, session_id, method, params, status, result, error_message, user_rejected, created_at, updated_at, resolved_at
		FROM session_requests
		WHERE id = $1
	`, id).Bind(ctx, st.db, &r)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, errors.Wrap(err, "failed to get session request")
	}

	return &r, nil
}

func (st *store) listRequests(ctx context.Context, sessionID string) ([]*Request, error) {
	var requests []*Request
	err := queries.Raw(`
		SELECT id, session_id, method, params, status, result, error_message, user_rejected, created_at, updated_at, resolved_at
		FROM session_requests
		WHERE session_id = $1
		ORDER BY created_at DESC
	`, sessionID).Bind(ctx, st.db, &requests)

	if err != nil {
		return nil, errors.Wrap(err, "failed to list session requests")
	}

	return requests, nil
}

func (st *store) updateRequest(ctx context.Context, exec boil.ContextExecutor, r *Request) error {
	res, err := exec.ExecContext(ctx, `
		UPDATE session_requests
		SET status = $2, result = $3, error_message = $4, user_rejected = $5, updated_at = $6, resolved_at = $7
		WHERE id = $1
	`, r.ID, r.Status, r.Result, r.ErrorMessage, r.UserRejected, r.UpdatedAt, r.ResolvedAt)

	if err != nil {
		return errors.Wrap(err, "failed to update session request")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return ErrRequestNotFound
	}

	return nil
}

func (st *store) countPendingRequests(ctx context.Context, sessionID string) (int, error) {
	var result struct {
		Count int `boil:"count"`
	}
	err := queries.Raw(`
		SELECT COUNT(*) AS count
		FROM session_requests
		WHERE session_id = $1 AND status = $2
	`, sessionID, RequestStatusPending).Bind(ctx, st.db, &result)

	if err != nil {
		return 0, errors.Wrap(err, "failed to count pending requests")
	}

	return result.Count, nil
}
