package sample

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/fluidcarousel/internal/database"
	"github.com/jask/fluidcarousel/internal/service"
)

func TestSeedIsDeterministic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seeded := func() []string {
		path := filepath.Join(t.TempDir(), "seed.db")
		require.NoError(t, database.RunMigrations(path, ""))
		db, err := database.Open(ctx, path)
		require.NoError(t, err)
		defer db.Close()

		svc := service.NewDeckService(db)
		deck, err := svc.Open(ctx, "sample")
		require.NoError(t, err)
		require.NoError(t, Seed(ctx, svc, deck.ID, 5, 42))

		slides, err := svc.List(ctx, deck.ID)
		require.NoError(t, err)
		var out []string
		for _, s := range slides {
			out = append(out, s.Title+"|"+s.Body)
		}
		return out
	}

	first := seeded()
	require.Len(t, first, 5)
	require.Equal(t, first, seeded())
}
