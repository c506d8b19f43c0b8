package readstore

import (
	"context"

	"showroom-scheduler/internal/infra"
	sqlc "showroom-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type LookupQueries interface {
	UserExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	StaffExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	CarExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

// LookupReadStore answers existence checks against the customer and inventory tables.
type LookupReadStore struct {
	queries LookupQueries
	db      sqlc.DBTX
}

func NewLookupReadStore(queries LookupQueries, db sqlc.DBTX) *LookupReadStore {
	return &LookupReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *LookupReadStore) CustomerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.queries.UserExists(ctx, s.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer", err)
	}
	return ok, nil
}

// AgentExists reports whether id is an active staff or admin user.
func (s *LookupReadStore) AgentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.queries.StaffExists(ctx, s.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check agent", err)
	}
	return ok, nil
}

func (s *LookupReadStore) CarExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.queries.CarExists(ctx, s.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check car", err)
	}
	return ok, nil
}
