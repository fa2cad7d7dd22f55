package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RequestEventData captures one coach/LLM API call for appending.
type RequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RequestEvent is a stored request-log row.
type RequestEvent struct {
	ID        int
	Timestamp time.Time
	RequestEventData
}

// PurposeUsage aggregates calls and tokens for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates calls and tokens for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// RequestLog provides append and query access to the coach request log.
type RequestLog interface {
	// Append records one API call. Never called on the hot path without
	// tolerating failure; callers log and continue.
	Append(ctx context.Context, data RequestEventData) error

	// Recent returns the newest events, up to limit (0 = no limit).
	Recent(ctx context.Context, limit int) ([]RequestEvent, error)

	// Get returns one event by id, or nil if it doesn't exist.
	Get(ctx context.Context, id int) (*RequestEvent, error)

	// UsageByPurpose aggregates token usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// UsageByModel aggregates token usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// requestLog implements RequestLog on the request_log table.
type requestLog struct {
	db *sql.DB
}

func (r *requestLog) Append(ctx context.Context, data RequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO request_log (
			timestamp, provider, model, purpose,
			input_tokens, output_tokens, latency_ms,
			success, error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append request event: %w", err)
	}
	return nil
}

func (r *requestLog) Recent(ctx context.Context, limit int) ([]RequestEvent, error) {
	query := `
		SELECT id, timestamp, provider, model, purpose,
		       input_tokens, output_tokens, latency_ms,
		       success, error_message, request_body, response_body
		FROM request_log ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query request events: %w", err)
	}
	defer rows.Close()

	var events []RequestEvent
	for rows.Next() {
		e, err := scanRequestEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *requestLog) Get(ctx context.Context, id int) (*RequestEvent, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, provider, model, purpose,
		       input_tokens, output_tokens, latency_ms,
		       success, error_message, request_body, response_body
		FROM request_log WHERE id = ?`, id)

	e, err := scanRequestEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get request event %d: %w", id, err)
	}
	return e, nil
}

func (r *requestLog) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens),
		       CAST(AVG(latency_ms) AS INTEGER)
		FROM request_log GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var usage []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan purpose usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r *requestLog) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM request_log GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var usage []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRequestEvent(s scanner) (*RequestEvent, error) {
	var e RequestEvent
	var ts int64
	var success int
	err := s.Scan(
		&e.ID, &ts, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs,
		&success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		return nil, err
	}
	e.Timestamp = time.Unix(ts, 0)
	e.Success = success != 0
	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
