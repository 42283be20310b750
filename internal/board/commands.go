package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/debemdeboas/dallama/internal/model"
)

// SubmitPost creates a post authored by the current identity.
func (b *Board) SubmitPost(ctx context.Context, content string) (*model.Post, error) {
	var post *model.Post
	err := b.do(ctx, "submit", func() error {
		p, err := b.posts.Create(b.users.Current().ID, content)
		if err != nil {
			return err
		}
		b.votes.Init(p.ID)
		post = p
		b.notify(Change{Kind: ChangePosted, PostID: p.ID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (b *Board) Upvote(ctx context.Context, id model.PostID) (model.VoteTally, error) {
	return b.vote(ctx, id, true)
}

func (b *Board) Downvote(ctx context.Context, id model.PostID) (model.VoteTally, error) {
	return b.vote(ctx, id, false)
}

func (b *Board) vote(ctx context.Context, id model.PostID, up bool) (model.VoteTally, error) {
	var tally model.VoteTally
	err := b.do(ctx, "vote", func() error {
		if _, err := b.posts.Get(id); err != nil {
			return err
		}
		if up {
			tally = b.votes.Upvote(id)
		} else {
			tally = b.votes.Downvote(id)
		}
		b.notify(Change{Kind: ChangeVoted, PostID: id})
		return nil
	})
	if err != nil {
		return model.VoteTally{}, err
	}
	return tally, nil
}

// DeletePost removes a post written by the current identity. Deleting a
// missing post succeeds without a change.
func (b *Board) DeletePost(ctx context.Context, id model.PostID) error {
	return b.do(ctx, "delete", func() error {
		if _, err := b.authorize(id); err != nil {
			if errors.Is(err, model.ErrPostNotFound) {
				return nil
			}
			return err
		}
		b.dropPost(id)
		return nil
	})
}

// BeginEdit opens the edit session on a post written by the current identity,
// seeded with its current content.
func (b *Board) BeginEdit(ctx context.Context, id model.PostID) (model.EditSession, error) {
	return b.editStep(ctx, "begin edit", id, func(post *model.Post) error {
		return b.session.Begin(id, post.Content)
	})
}

// UpdateEdit replaces the pending text of the active session.
func (b *Board) UpdateEdit(ctx context.Context, id model.PostID, content string) (model.EditSession, error) {
	return b.editStep(ctx, "update edit", id, func(*model.Post) error {
		return b.session.SetPending(id, content)
	})
}

func (b *Board) RequestSave(ctx context.Context, id model.PostID) (model.EditSession, error) {
	return b.editStep(ctx, "request save", id, func(*model.Post) error {
		return b.session.RequestSave(id)
	})
}

// ConfirmSave writes the pending text to the post and ends the session.
func (b *Board) ConfirmSave(ctx context.Context, id model.PostID) (model.EditSession, error) {
	return b.editStep(ctx, "confirm save", id, func(*model.Post) error {
		return b.session.ConfirmSave(id, func(id model.PostID, content string) error {
			if _, err := b.posts.Edit(id, content); err != nil {
				return err
			}
			b.notify(Change{Kind: ChangeEdited, PostID: id})
			return nil
		})
	})
}

func (b *Board) CancelConfirm(ctx context.Context, id model.PostID) (model.EditSession, error) {
	return b.editStep(ctx, "cancel confirm", id, func(*model.Post) error {
		return b.session.CancelConfirm(id)
	})
}

func (b *Board) RequestDiscard(ctx context.Context, id model.PostID) (model.EditSession, error) {
	return b.editStep(ctx, "request discard", id, func(*model.Post) error {
		return b.session.RequestDiscard(id)
	})
}

// ConfirmDiscard ends the session and deletes the post being edited.
func (b *Board) ConfirmDiscard(ctx context.Context, id model.PostID) (model.EditSession, error) {
	return b.editStep(ctx, "confirm discard", id, func(*model.Post) error {
		return b.session.ConfirmDiscard(id, b.dropPost)
	})
}

// CancelEdit ends the session leaving the post untouched.
func (b *Board) CancelEdit(ctx context.Context, id model.PostID) (model.EditSession, error) {
	return b.editStep(ctx, "cancel edit", id, func(*model.Post) error {
		return b.session.Cancel(id)
	})
}

// editStep authorizes the acting identity against post id, then runs step.
// A session whose post disappeared is reset.
func (b *Board) editStep(ctx context.Context, op string, id model.PostID, step func(*model.Post) error) (model.EditSession, error) {
	var st model.EditSession
	err := b.do(ctx, op, func() error {
		post, err := b.authorize(id)
		if err != nil {
			if errors.Is(err, model.ErrPostNotFound) && b.session.State().TargetPostID == id {
				b.session.Reset()
			}
			return err
		}
		if err := step(post); err != nil {
			return err
		}
		st = b.session.State()
		b.notify(Change{Kind: ChangeEditSession, PostID: id})
		return nil
	})
	if err != nil {
		return model.EditSession{}, err
	}
	return st, nil
}

// SetFilter restricts the feed to author, or clears the filter when author is nil.
func (b *Board) SetFilter(ctx context.Context, author *model.UserID) error {
	return b.do(ctx, "set filter", func() error {
		switch {
		case author == nil:
			b.filter = model.Filter{}
		case !b.users.Exists(*author):
			return fmt.Errorf("filter by user %d: %w", *author, model.ErrUserNotFound)
		default:
			b.filter = model.FilterBy(*author)
		}
		b.notify(Change{Kind: ChangeFilter})
		return nil
	})
}

// SwitchUser changes the acting identity and shows the switch notification.
func (b *Board) SwitchUser(ctx context.Context, id model.UserID) (model.User, error) {
	var user model.User
	err := b.do(ctx, "switch user", func() error {
		u, err := b.users.Switch(id)
		if err != nil {
			return err
		}
		b.notifier.Show(u)
		user = u
		b.notify(Change{Kind: ChangeIdentity})
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}
