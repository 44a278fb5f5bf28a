package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "select * from services where id = 'x'", 1 }

	t.Run("failed query", func(t *testing.T) {
		l, buf := newCapturingLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("relation does not exist"))

		out := buf.String()
		assert.Contains(t, out, "Query failed")
		assert.Contains(t, out, "op=SELECT")
		assert.Contains(t, out, "component=gorm")
		assert.Contains(t, out, "relation does not exist")
	})

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newCapturingLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query", func(t *testing.T) {
		cfg := &config.Config{Catalog: &config.CatalogConfig{SlowQueryThreshold: time.Millisecond}}
		l, buf := newCapturingLogger(cfg)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "Slow query")
		assert.Contains(t, buf.String(), "threshold=1ms")
	})

	t.Run("fast query is only logged in debug", func(t *testing.T) {
		l, buf := newCapturingLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = newCapturingLogger(cfg)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "msg=Query")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newCapturingLogger(&config.Config{})

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestTruncateSQL(t *testing.T) {
	short := "delete from faqs where service_id = 'x'"
	assert.Equal(t, short, truncateSQL(short))

	long := "insert into includes values " + strings.Repeat("('a'),", 1000)
	got := truncateSQL(long)
	assert.Len(t, got, maxLoggedSQL+len("...(truncated)"))
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
}

func TestStatementVerb(t *testing.T) {
	assert.Equal(t, "UPDATE", statementVerb("  update services set price = 1"))
	assert.Equal(t, "", statementVerb(""))
}
