// Package votes keeps per-post vote counters, independent of the post store.
package votes

import (
	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/cache"
	"github.com/debemdeboas/dallama/internal/model"
)

var votesLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	votesLogger = l
}

// Ledger counts upvotes and downvotes. Votes cannot be retracted.
type Ledger struct {
	tallies *cache.Cache[model.PostID, model.VoteTally]
}

func NewLedger() *Ledger {
	return &Ledger{
		tallies: cache.NewCache[model.PostID, model.VoteTally](),
	}
}

// Init creates a zero tally for id unless one already exists.
func (l *Ledger) Init(id model.PostID) {
	l.tallies.SetIfAbsent(id, model.VoteTally{})
}

// Seed sets the starting counts for id. Negative counts are clamped to zero.
func (l *Ledger) Seed(id model.PostID, tally model.VoteTally) {
	tally.Upvotes = max(tally.Upvotes, 0)
	tally.Downvotes = max(tally.Downvotes, 0)
	l.tallies.Set(id, tally)
}

func (l *Ledger) Upvote(id model.PostID) model.VoteTally {
	t := l.tallies.Update(id, func(t model.VoteTally) model.VoteTally {
		t.Upvotes++
		return t
	})
	votesLogger.Debug().Int64("post_id", int64(id)).Int("upvotes", t.Upvotes).Msg("Upvote")
	return t
}

func (l *Ledger) Downvote(id model.PostID) model.VoteTally {
	t := l.tallies.Update(id, func(t model.VoteTally) model.VoteTally {
		t.Downvotes++
		return t
	})
	votesLogger.Debug().Int64("post_id", int64(id)).Int("downvotes", t.Downvotes).Msg("Downvote")
	return t
}

// TallyOf returns the counts for id, zero when no vote was ever cast.
func (l *Ledger) TallyOf(id model.PostID) model.VoteTally {
	t, _ := l.tallies.Get(id)
	return t
}

// Forget drops the tally of a deleted post.
func (l *Ledger) Forget(id model.PostID) {
	l.tallies.Delete(id)
}

// Len is the number of tracked tallies.
func (l *Ledger) Len() int {
	return l.tallies.Len()
}
