// Package board composes the identity directory, post store, vote ledger and
// edit session behind one ordered command queue.
//
// Every command and query runs on the goroutine started by Run, one at a time,
// so concurrent callers (HTTP handlers, simulated users) never interleave
// mutations.
package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/editor"
	"github.com/debemdeboas/dallama/internal/identity"
	"github.com/debemdeboas/dallama/internal/model"
	"github.com/debemdeboas/dallama/internal/repository"
	"github.com/debemdeboas/dallama/internal/votes"
)

var boardLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	boardLogger = l
}

type ChangeKind string

const (
	ChangePosted       ChangeKind = "posted"
	ChangeVoted        ChangeKind = "voted"
	ChangeEdited       ChangeKind = "edited"
	ChangeDeleted      ChangeKind = "deleted"
	ChangeEditSession  ChangeKind = "edit_session"
	ChangeFilter       ChangeKind = "filter"
	ChangeIdentity     ChangeKind = "identity"
	ChangeNotification ChangeKind = "notification"
)

// Change describes a successful mutation. PostID is zero when not post specific.
type Change struct {
	Kind   ChangeKind   `json:"kind"`
	PostID model.PostID `json:"post_id,omitempty"`
}

type command struct {
	fn     func() error
	result chan error
}

type Board struct {
	posts    repository.PostRepository
	votes    *votes.Ledger
	users    *identity.Directory
	session  *editor.Session
	notifier *identity.Notifier

	// Only read or written from the Run goroutine.
	filter model.Filter

	cmds           chan command
	changes        chan Change
	stopped        chan struct{}
	changeNotifier func(Change)
}

// Changes queued for the notifier before it falls behind the loop.
const changeBuffer = 64

func New(
	posts repository.PostRepository,
	ledger *votes.Ledger,
	users *identity.Directory,
	session *editor.Session,
	notifier *identity.Notifier,
	queueSize int,
) *Board {
	b := &Board{
		posts:    posts,
		votes:    ledger,
		users:    users,
		session:  session,
		notifier: notifier,
		cmds:     make(chan command, max(queueSize, 0)),
		changes:  make(chan Change, changeBuffer),
		stopped:  make(chan struct{}),
	}
	notifier.SetOnChange(func() {
		b.notify(Change{Kind: ChangeNotification})
	})
	return b
}

// SetChangeNotifier sets a function called after every successful mutation.
// It must be set before Run.
func (b *Board) SetChangeNotifier(notifier func(Change)) {
	b.changeNotifier = notifier
}

// Run processes queued commands until ctx is done. Changes are handed to
// the change notifier from a single goroutine, in the order they happened.
func (b *Board) Run(ctx context.Context) error {
	boardLogger.Info().Msg("Board event loop started")
	defer close(b.stopped)
	defer b.notifier.Stop()

	go b.dispatch()

	for {
		select {
		case <-ctx.Done():
			boardLogger.Info().Msg("Board event loop stopped")
			return ctx.Err()
		case cmd := <-b.cmds:
			cmd.result <- cmd.fn()
		}
	}
}

// dispatch runs until Run returns, so a command blocked in notify is always drained.
func (b *Board) dispatch() {
	for {
		select {
		case c := <-b.changes:
			if b.changeNotifier != nil {
				b.changeNotifier(c)
			}
		case <-b.stopped:
			return
		}
	}
}

func (b *Board) do(ctx context.Context, op string, fn func() error) error {
	cmd := command{fn: fn, result: make(chan error, 1)}

	select {
	case b.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.result:
		if errors.Is(err, model.ErrInvalidTransition) {
			boardLogger.Error().Err(err).Str("op", op).Msg("Edit session misuse")
		} else if err != nil {
			boardLogger.Debug().Err(err).Str("op", op).Msg("Command rejected")
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// notify queues c for the change notifier. Commands call it from inside
// their closure so changes are queued in loop order.
func (b *Board) notify(c Change) {
	if b.changeNotifier == nil {
		return
	}
	select {
	case b.changes <- c:
	case <-b.stopped:
	}
}

// authorize checks that the acting identity wrote post id. Runs on the loop.
func (b *Board) authorize(id model.PostID) (*model.Post, error) {
	post, err := b.posts.Get(id)
	if err != nil {
		return nil, err
	}
	if actor := b.users.Current(); actor.ID != post.Author {
		return nil, fmt.Errorf("post %d by user %d, acting as %d: %w", id, post.Author, actor.ID, model.ErrUnauthorized)
	}
	return post, nil
}

// dropPost removes a post and everything keyed by its id. Runs on the loop.
func (b *Board) dropPost(id model.PostID) {
	b.posts.Remove(id)
	b.votes.Forget(id)
	if st := b.session.State(); st.Active() && st.TargetPostID == id {
		b.session.Reset()
	}
	b.notify(Change{Kind: ChangeDeleted, PostID: id})
}
