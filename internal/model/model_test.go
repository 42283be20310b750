package model

import (
	"testing"
	"time"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n ", true},
		{"hi", false},
		{"  hi  ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.content); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestPostEdited(t *testing.T) {
	now := time.Now()
	post := &Post{CreatedDate: now, ModifiedDate: now}
	if post.Edited() {
		t.Error("Expected fresh post to not be edited")
	}

	post.ModifiedDate = now.Add(time.Second)
	if !post.Edited() {
		t.Error("Expected post with later modification date to be edited")
	}
}

func TestUserInitial(t *testing.T) {
	t.Run("Named user", func(t *testing.T) {
		if got := (User{Name: "Ana"}).Initial(); got != "A" {
			t.Errorf("Expected 'A', got %q", got)
		}
	})

	t.Run("Multibyte name", func(t *testing.T) {
		if got := (User{Name: "Élodie"}).Initial(); got != "É" {
			t.Errorf("Expected 'É', got %q", got)
		}
	})

	t.Run("Empty name", func(t *testing.T) {
		if got := (User{}).Initial(); got != "?" {
			t.Errorf("Expected '?', got %q", got)
		}
	})
}

func TestFilterMatches(t *testing.T) {
	post := &Post{ID: 1, Author: 2}

	if !(Filter{}).Matches(post) {
		t.Error("Expected empty filter to match every post")
	}
	if !FilterBy(2).Matches(post) {
		t.Error("Expected author filter to match its own post")
	}
	if FilterBy(1).Matches(post) {
		t.Error("Expected other author filter to not match")
	}
}

func TestVoteTallyScore(t *testing.T) {
	if got := (VoteTally{Upvotes: 5, Downvotes: 2}).Score(); got != 3 {
		t.Errorf("Expected score 3, got %d", got)
	}
}

func TestEditPhaseString(t *testing.T) {
	tests := map[EditPhase]string{
		PhaseIdle:              "idle",
		PhaseEditing:           "editing",
		PhaseConfirmingSave:    "confirming_save",
		PhaseConfirmingDiscard: "confirming_discard",
		EditPhase(42):          "unknown",
	}

	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("EditPhase(%d).String() = %q, want %q", phase, got, want)
		}
	}

	if (EditSession{}).Active() {
		t.Error("Expected zero session to be inactive")
	}
	if !(EditSession{Phase: PhaseEditing}).Active() {
		t.Error("Expected editing session to be active")
	}
}

func TestEditPhaseText(t *testing.T) {
	var p EditPhase
	if err := p.UnmarshalText([]byte("confirming_discard")); err != nil || p != PhaseConfirmingDiscard {
		t.Errorf("Expected confirming_discard, got %s (err=%v)", p, err)
	}
	if err := p.UnmarshalText([]byte("unknown")); err == nil {
		t.Error("Expected error for unknown phase")
	}
}
