//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"showroom-scheduler/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		kinds []infra.RepositoryErrorKind
		want  infra.RepositoryErrorKind
	}{
		{name: "exclusion violation is a conflict", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "non pg error", err: errors.New("io"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kinds: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "nil error with kind", err: nil, kinds: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tc.err, tc.kinds...)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestIsKind_IgnoresForeignErrors(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
