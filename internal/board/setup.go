package board

import (
	"fmt"
	"time"

	"github.com/debemdeboas/dallama/internal/editor"
	"github.com/debemdeboas/dallama/internal/identity"
	"github.com/debemdeboas/dallama/internal/model"
	"github.com/debemdeboas/dallama/internal/repository"
	"github.com/debemdeboas/dallama/internal/seed"
	"github.com/debemdeboas/dallama/internal/votes"
)

type Options struct {
	QueueSize         int
	ImplicitCancel    bool
	NotificationDelay time.Duration
}

// FromDataset builds a board with in-memory stores loaded from ds.
func FromDataset(ds *seed.Dataset, opts Options) (*Board, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	users, err := identity.NewDirectory(ds.Users)
	if err != nil {
		return nil, err
	}

	posts := repository.NewMemoryPostRepository()
	ledger := votes.NewLedger()

	seeded := make([]model.Post, 0, len(ds.Posts))
	for _, e := range ds.Posts {
		seeded = append(seeded, e.Post)
		ledger.Seed(e.Post.ID, e.Tally)
	}
	if err := posts.Seed(seeded); err != nil {
		return nil, fmt.Errorf("seed posts: %w", err)
	}

	return New(
		posts,
		ledger,
		users,
		editor.NewSession(opts.ImplicitCancel),
		identity.NewNotifier(opts.NotificationDelay),
		opts.QueueSize,
	), nil
}
