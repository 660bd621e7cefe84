package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ghrepositor/ghrepositor/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestCtxRunID(t *testing.T) {
	t.Run("new run ID is issued once per context", func(t *testing.T) {
		ctx := context.Background()

		id1, ctx := logging.CtxRunID(ctx)
		gt.V(t, string(id1)).NotEqual("")

		id2, _ := logging.CtxRunID(ctx)
		gt.V(t, id2).Equal(id1)
	})

	t.Run("distinct contexts get distinct run IDs", func(t *testing.T) {
		id1, _ := logging.CtxRunID(context.Background())
		id2, _ := logging.CtxRunID(context.Background())
		gt.V(t, id1).NotEqual(id2)
	})
}

func TestLoggerContext(t *testing.T) {
	t.Run("From returns logger set by With", func(t *testing.T) {
		logger := slog.Default().With("component", "test")
		ctx := logging.With(context.Background(), logger)
		gt.V(t, logging.From(ctx)).Equal(logger)
	})

	t.Run("From returns default logger when nothing is set", func(t *testing.T) {
		gt.V(t, logging.From(context.Background())).Equal(logging.Default())
	})
}
