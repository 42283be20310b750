package view

import (
	"testing"

	"github.com/debemdeboas/dallama/internal/model"
)

type staticPosts []model.Post

func (s staticPosts) List() []model.Post { return s }

type staticTallies map[model.PostID]model.VoteTally

func (s staticTallies) TallyOf(id model.PostID) model.VoteTally { return s[id] }

func ids(entries []model.Entry) []model.PostID {
	out := make([]model.PostID, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Post.ID)
	}
	return out
}

func equalIDs(a, b []model.PostID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVisiblePosts(t *testing.T) {
	posts := staticPosts{
		{ID: 6, Author: 1},
		{ID: 5, Author: 2},
		{ID: 4, Author: 1},
		{ID: 3, Author: 3},
		{ID: 1, Author: 1},
	}
	tallies := staticTallies{
		6: {Upvotes: 1},
		4: {Upvotes: 2, Downvotes: 1},
	}

	tests := []struct {
		name   string
		filter model.Filter
		want   []model.PostID
	}{
		{"No filter", model.Filter{}, []model.PostID{6, 5, 4, 3, 1}},
		{"Author 1", model.FilterBy(1), []model.PostID{6, 4, 1}},
		{"Author 2", model.FilterBy(2), []model.PostID{5}},
		{"Author without posts", model.FilterBy(9), []model.PostID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisiblePosts(posts, tallies, tt.filter)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, ids(got))
			}
		})
	}

	t.Run("Pairs tallies with default zero", func(t *testing.T) {
		got := VisiblePosts(posts, tallies, model.FilterBy(1))
		if got[0].Tally != (model.VoteTally{Upvotes: 1}) {
			t.Errorf("Post 6: unexpected tally %+v", got[0].Tally)
		}
		if got[1].Tally != (model.VoteTally{Upvotes: 2, Downvotes: 1}) {
			t.Errorf("Post 4: unexpected tally %+v", got[1].Tally)
		}
		if got[2].Tally != (model.VoteTally{}) {
			t.Errorf("Post 1: expected zero tally, got %+v", got[2].Tally)
		}
	})
}
