// Package editor implements the single, process-wide post edit session.
//
// A session moves through idle -> editing -> confirming (save or discard) and
// back to idle. Only one post can be edited at a time.
package editor

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/model"
)

var editorLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	editorLogger = l
}

// CommitFunc stores the confirmed content of the edited post.
type CommitFunc func(id model.PostID, content string) error

// DiscardFunc is called with the target post when a discard is confirmed.
type DiscardFunc func(id model.PostID)

type Session struct {
	mu    sync.Mutex
	state model.EditSession

	// When set, Begin during an active session cancels it instead of failing.
	implicitCancel bool
}

func NewSession(implicitCancel bool) *Session {
	return &Session{implicitCancel: implicitCancel}
}

func (s *Session) State() model.EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin starts editing id with content as the pending text.
func (s *Session) Begin(id model.PostID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Active() {
		if !s.implicitCancel {
			return s.invalid("begin", id)
		}
		editorLogger.Debug().
			Int64("post_id", int64(s.state.TargetPostID)).
			Int64("new_post_id", int64(id)).
			Msg("Cancelling active edit session")
	}

	s.state = model.EditSession{
		TargetPostID:   id,
		PendingContent: content,
		Phase:          model.PhaseEditing,
	}
	return nil
}

// SetPending replaces the pending text while editing.
func (s *Session) SetPending(id model.PostID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect("update", id, model.PhaseEditing); err != nil {
		return err
	}
	s.state.PendingContent = content
	return nil
}

// RequestSave asks for save confirmation. Blank pending text keeps the session editing.
func (s *Session) RequestSave(id model.PostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect("request save", id, model.PhaseEditing); err != nil {
		return err
	}
	if model.IsBlank(s.state.PendingContent) {
		return model.ErrEmptyContent
	}
	s.state.Phase = model.PhaseConfirmingSave
	return nil
}

// ConfirmSave commits the pending text and ends the session.
// If commit fails the session is left as it was.
func (s *Session) ConfirmSave(id model.PostID, commit CommitFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect("confirm save", id, model.PhaseConfirmingSave); err != nil {
		return err
	}
	if err := commit(s.state.TargetPostID, s.state.PendingContent); err != nil {
		return err
	}
	s.state = model.EditSession{}
	return nil
}

// RequestDiscard asks for confirmation to discard the post being edited.
func (s *Session) RequestDiscard(id model.PostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect("request discard", id, model.PhaseEditing); err != nil {
		return err
	}
	s.state.Phase = model.PhaseConfirmingDiscard
	return nil
}

// ConfirmDiscard ends the session and deletes the target post through discard.
// No pre-edit snapshot is kept, so this deletes rather than reverts.
// discard runs without the session lock held, so it may call back into s.
func (s *Session) ConfirmDiscard(id model.PostID, discard DiscardFunc) error {
	s.mu.Lock()
	if err := s.expect("confirm discard", id, model.PhaseConfirmingDiscard); err != nil {
		s.mu.Unlock()
		return err
	}
	target := s.state.TargetPostID
	s.state = model.EditSession{}
	s.mu.Unlock()

	discard(target)
	return nil
}

// CancelConfirm closes a pending save or discard confirmation and resumes editing.
func (s *Session) CancelConfirm(id model.PostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect("cancel confirm", id, model.PhaseConfirmingSave, model.PhaseConfirmingDiscard); err != nil {
		return err
	}
	s.state.Phase = model.PhaseEditing
	return nil
}

// Cancel drops the pending text without touching the post.
func (s *Session) Cancel(id model.PostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect("cancel", id, model.PhaseEditing); err != nil {
		return err
	}
	s.state = model.EditSession{}
	return nil
}

// Reset ends any session unconditionally.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = model.EditSession{}
}

func (s *Session) expect(op string, id model.PostID, phases ...model.EditPhase) error {
	if s.state.Phase == model.PhaseIdle || s.state.TargetPostID != id {
		return s.invalid(op, id)
	}
	for _, p := range phases {
		if s.state.Phase == p {
			return nil
		}
	}
	return s.invalid(op, id)
}

func (s *Session) invalid(op string, id model.PostID) error {
	return fmt.Errorf("%w: %s post %d while %s post %d",
		model.ErrInvalidTransition, op, id, s.state.Phase, s.state.TargetPostID)
}
