package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/visamarker/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// visaColumns is the column list of visa_records after destination, in
// domain.VisaFields order. Column names equal the field keys.
var visaColumns = func() string {
	cols := make([]string, len(domain.VisaFields))
	for i, f := range domain.VisaFields {
		cols[i] = string(f)
	}
	return strings.Join(cols, ", ")
}()

// PGVisaRepo is the Postgres implementation of VisaRepo.
// Each field is a nullable text column: NULL is an absent field,
// an empty string is a present-but-blank one.
type PGVisaRepo struct {
	db db
}

// NewPGVisaRepo constructs a PGVisaRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPGVisaRepo(db db) *PGVisaRepo {
	return &PGVisaRepo{db: db}
}

// Get retrieves the record for destination by primary key.
func (r *PGVisaRepo) Get(ctx context.Context, destination string) (domain.VisaRecord, error) {
	q := `SELECT destination, ` + visaColumns + ` FROM visa_records WHERE destination = @destination`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"destination": destination})
	rec, err := scanVisaRecord(row)
	if err != nil {
		return domain.VisaRecord{}, fmt.Errorf("repo.VisaRepo.Get: %q: %w", destination, err)
	}
	return rec, nil
}

// List returns every record ordered by destination.
func (r *PGVisaRepo) List(ctx context.Context) ([]domain.VisaRecord, error) {
	q := `SELECT destination, ` + visaColumns + ` FROM visa_records ORDER BY destination`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VisaRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.VisaRecord
	for rows.Next() {
		rec, err := scanVisaRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VisaRepo.List: scan: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisaRepo.List: rows: %w", err)
	}
	return out, nil
}

// Upsert inserts or replaces the record for rec.Destination.
// Fields absent from rec are stored as NULL.
func (r *PGVisaRepo) Upsert(ctx context.Context, rec domain.VisaRecord) error {
	names := make([]string, len(domain.VisaFields))
	sets := make([]string, len(domain.VisaFields))
	args := pgx.NamedArgs{"destination": rec.Destination}
	for i, f := range domain.VisaFields {
		names[i] = "@" + string(f)
		sets[i] = string(f) + " = EXCLUDED." + string(f)
		if v, ok := rec.Field(f); ok {
			args[string(f)] = v
		} else {
			args[string(f)] = nil // NULL
		}
	}

	q := `INSERT INTO visa_records (destination, ` + visaColumns + `)
		VALUES (@destination, ` + strings.Join(names, ", ") + `)
		ON CONFLICT (destination) DO UPDATE SET ` + strings.Join(sets, ", ") + `, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.VisaRepo.Upsert: %q: %w", rec.Destination, err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanVisaRecord
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanVisaRecord maps one row into a domain.VisaRecord, leaving NULL
// columns out of the field map.
func scanVisaRecord(s scanner) (domain.VisaRecord, error) {
	var dest string
	values := make([]*string, len(domain.VisaFields))
	targets := make([]any, 0, len(values)+1)
	targets = append(targets, &dest)
	for i := range values {
		targets = append(targets, &values[i])
	}

	if err := s.Scan(targets...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.VisaRecord{}, domain.ErrNotFound
		}
		return domain.VisaRecord{}, err
	}

	rec := domain.VisaRecord{Destination: dest, Fields: make(map[domain.VisaField]string)}
	for i, f := range domain.VisaFields {
		if values[i] != nil {
			rec.Fields[f] = *values[i]
		}
	}
	return rec, nil
}
