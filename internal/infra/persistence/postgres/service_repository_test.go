package postgres

import (
	"context"
	"slices"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// capturedStatement is one statement built by a dry-run session.
type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunDB returns a postgres-dialect session that builds statements
// without a server, and the statements it built.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=marketplace dbname=marketplace sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var captured []capturedStatement
	capture := func(tx *gorm.DB) {
		captured = append(captured, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: slices.Clone(tx.Statement.Vars),
		})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Raw().After("gorm:raw").Register("test:capture_raw", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture))

	return db, &captured
}

func TestServiceRepository_Find_Filters(t *testing.T) {
	tests := []struct {
		name      string
		filter    entity.ServiceFilter
		wantWhere string
		wantVars  []any
	}{
		{
			name:      "published unpriced",
			filter:    entity.ServiceFilter{Status: entity.ServiceStatusPublished, ZeroPrice: true},
			wantWhere: "WHERE status = $1 AND price = $2",
			wantVars:  []any{"Published", 0},
		},
		{
			name:      "published",
			filter:    entity.ServiceFilter{Status: entity.ServiceStatusPublished},
			wantWhere: "WHERE status = $1",
			wantVars:  []any{"Published"},
		},
		{
			name:   "all",
			filter: entity.ServiceFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, captured := newDryRunDB(t)
			repo := NewServiceRepository(db)

			_, err := repo.Find(context.Background(), tt.filter, entity.ExpandNone)
			require.NoError(t, err)

			require.Len(t, *captured, 1)
			stmt := (*captured)[0]
			assert.Contains(t, stmt.sql, `FROM "services"`)
			assert.Contains(t, stmt.sql, "ORDER BY created_at ASC")
			if tt.wantWhere == "" {
				assert.NotContains(t, stmt.sql, "WHERE")
				assert.Empty(t, stmt.vars)

				return
			}
			assert.Contains(t, stmt.sql, tt.wantWhere)
			assert.NotContains(t, stmt.sql, "price = $1", "status must be filtered alongside price")
			assert.Equal(t, tt.wantVars, stmt.vars)
		})
	}
}

func TestServiceRepository_Delete_TargetsOneRow(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewServiceRepository(db)
	id := uuid.New()

	// no row is affected without a server
	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrServiceNotFound)

	require.Len(t, *captured, 1)
	assert.Contains(t, (*captured)[0].sql, `DELETE FROM "services" WHERE id = $1`)
	assert.Equal(t, []any{id}, (*captured)[0].vars)
}

func TestSubCategoryRepository_AppendServiceSQL(t *testing.T) {
	db, _ := newDryRunDB(t)
	subCategoryID, serviceID := uuid.New(), uuid.New()

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Exec(appendServiceSQL, subCategoryID, serviceID, subCategoryID)
	})

	assert.Contains(t, sql, "INSERT INTO sub_category_services (sub_category_id, service_id, position)")
	assert.Contains(t, sql, "COALESCE(MAX(position), 0) + 1")
	assert.Contains(t, sql, "WHERE sub_category_id = '"+subCategoryID.String()+"'")
	assert.Contains(t, sql, "ON CONFLICT (sub_category_id, service_id) DO NOTHING")
}

func TestSubCategoryRepository_RemoveService(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewSubCategoryRepository(db)
	subCategoryID, serviceID := uuid.New(), uuid.New()

	require.NoError(t, repo.RemoveService(context.Background(), subCategoryID, serviceID))

	require.Len(t, *captured, 1)
	assert.Contains(t, (*captured)[0].sql, `DELETE FROM "sub_category_services" WHERE sub_category_id = $1 AND service_id = $2`)
	assert.Equal(t, []any{subCategoryID, serviceID}, (*captured)[0].vars)
}
