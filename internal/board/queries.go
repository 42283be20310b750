package board

import (
	"context"

	"github.com/debemdeboas/dallama/internal/identity"
	"github.com/debemdeboas/dallama/internal/model"
	"github.com/debemdeboas/dallama/internal/view"
)

// Feed is the visible feed under the current filter.
func (b *Board) Feed(ctx context.Context) ([]model.Entry, error) {
	var entries []model.Entry
	err := b.do(ctx, "feed", func() error {
		entries = view.VisiblePosts(b.posts, b.votes, b.filter)
		return nil
	})
	return entries, err
}

// FeedFor is the visible feed under filter, ignoring the stored filter.
func (b *Board) FeedFor(ctx context.Context, filter model.Filter) ([]model.Entry, error) {
	var entries []model.Entry
	err := b.do(ctx, "feed", func() error {
		entries = view.VisiblePosts(b.posts, b.votes, filter)
		return nil
	})
	return entries, err
}

func (b *Board) Posts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := b.do(ctx, "posts", func() error {
		posts = b.posts.List()
		return nil
	})
	return posts, err
}

func (b *Board) Tally(ctx context.Context, id model.PostID) (model.VoteTally, error) {
	var tally model.VoteTally
	err := b.do(ctx, "tally", func() error {
		tally = b.votes.TallyOf(id)
		return nil
	})
	return tally, err
}

func (b *Board) EditState(ctx context.Context) (model.EditSession, error) {
	var st model.EditSession
	err := b.do(ctx, "edit state", func() error {
		st = b.session.State()
		return nil
	})
	return st, err
}

func (b *Board) Filter(ctx context.Context) (model.Filter, error) {
	var f model.Filter
	err := b.do(ctx, "filter", func() error {
		f = b.filter
		return nil
	})
	return f, err
}

func (b *Board) CurrentUser(ctx context.Context) (model.User, error) {
	var u model.User
	err := b.do(ctx, "current user", func() error {
		u = b.users.Current()
		return nil
	})
	return u, err
}

// Users never change after load, so they are read without the queue.
func (b *Board) Users() []model.User {
	return b.users.Users()
}

func (b *Board) Notification() identity.Notification {
	return b.notifier.Current()
}
