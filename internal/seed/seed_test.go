package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/db"
	"github.com/debemdeboas/dallama/internal/model"
)

func TestMain(m *testing.M) {
	SetLogger(zerolog.Nop())
	db.SetLogger(zerolog.Nop())
	os.Exit(m.Run())
}

func testDataset() *Dataset {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &Dataset{
		Users: []model.User{
			{ID: 1, Name: "Alice", Nickname: "ali", Location: "Lima", Gender: "female"},
			{ID: 2, Name: "Bob", Nickname: "bobby", Location: "Quito", Gender: "male"},
		},
		Posts: []model.Entry{
			{
				Post:  model.Post{ID: 9, Author: 2, Content: "newer", CreatedDate: ts.Add(time.Hour), ModifiedDate: ts.Add(time.Hour)},
				Tally: model.VoteTally{Upvotes: 3, Downvotes: 1},
			},
			{
				Post: model.Post{ID: 2, Author: 1, Content: "older", CreatedDate: ts, ModifiedDate: ts},
			},
		},
	}
}

func assertDatasetEqual(t *testing.T, got, want *Dataset) {
	t.Helper()

	if len(got.Users) != len(want.Users) {
		t.Fatalf("Expected %d users, got %d", len(want.Users), len(got.Users))
	}
	for i := range want.Users {
		if got.Users[i] != want.Users[i] {
			t.Errorf("User %d: expected %+v, got %+v", i, want.Users[i], got.Users[i])
		}
	}

	if len(got.Posts) != len(want.Posts) {
		t.Fatalf("Expected %d posts, got %d", len(want.Posts), len(got.Posts))
	}
	for i := range want.Posts {
		g, w := got.Posts[i], want.Posts[i]
		if g.Post.ID != w.Post.ID || g.Post.Author != w.Post.Author || g.Post.Content != w.Post.Content {
			t.Errorf("Post %d: expected %+v, got %+v", i, w.Post, g.Post)
		}
		if !g.Post.ModifiedDate.Equal(w.Post.ModifiedDate) {
			t.Errorf("Post %d: expected timestamp %v, got %v", i, w.Post.ModifiedDate, g.Post.ModifiedDate)
		}
		if g.Tally != w.Tally {
			t.Errorf("Post %d: expected tally %+v, got %+v", i, w.Tally, g.Tally)
		}
	}
}

func TestDefault(t *testing.T) {
	ds, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load embedded seed: %v", err)
	}
	if len(ds.Users) == 0 || len(ds.Posts) == 0 {
		t.Fatalf("Expected embedded seed to have users and posts, got %d/%d", len(ds.Users), len(ds.Posts))
	}
	for i := 1; i < len(ds.Posts); i++ {
		if ds.Posts[i-1].Post.ID <= ds.Posts[i].Post.ID {
			t.Errorf("Expected embedded posts newest first, got %d before %d", ds.Posts[i-1].Post.ID, ds.Posts[i].Post.ID)
		}
	}
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"users": [{"id": 1, "name": "Alice", "nickname": "ali", "location": "Lima", "gender": "female"}],
		"posts": [{
			"id": 5,
			"user": {"id": 1, "name": "Alice"},
			"content": "hello",
			"votes": {"upvotes": 2, "downvotes": 1},
			"timestamp": "2023-10-01T08:00:00.000Z"
		}]
	}`)

	ds, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	post := ds.Posts[0]
	if post.Post.ID != 5 || post.Post.Author != 1 || post.Post.Content != "hello" {
		t.Errorf("Unexpected post: %+v", post.Post)
	}
	if post.Tally != (model.VoteTally{Upvotes: 2, Downvotes: 1}) {
		t.Errorf("Unexpected tally: %+v", post.Tally)
	}
	if want := time.Date(2023, 10, 1, 8, 0, 0, 0, time.UTC); !post.Post.CreatedDate.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, post.Post.CreatedDate)
	}

	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2023, 10, 1, 8, 30, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2023-10-01T08:30:00Z", want},
		{"2023-10-01T10:30:00+02:00", want},
		{"2023-10-01 08:30:00", want},
		{"2023-10-01 08:30", want},
		{"2023-10-01", time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTimestamp(tt.in)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			if !got.Equal(tt.want) || got.Location() != time.UTC {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if _, err := parseTimestamp("yesterday"); err == nil {
		t.Error("Expected error for unknown layout")
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := testDataset().Validate(); err != nil {
			t.Errorf("Expected valid dataset, got %v", err)
		}
	})

	t.Run("No users", func(t *testing.T) {
		if err := (&Dataset{}).Validate(); err == nil {
			t.Error("Expected error for empty user list")
		}
	})

	t.Run("Unknown author", func(t *testing.T) {
		ds := testDataset()
		ds.Posts[0].Post.Author = 42
		if err := ds.Validate(); !errors.Is(err, model.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("Duplicate user", func(t *testing.T) {
		ds := testDataset()
		ds.Users = append(ds.Users, ds.Users[0])
		if err := ds.Validate(); err == nil {
			t.Error("Expected error for duplicate user id")
		}
	})

	t.Run("Duplicate post", func(t *testing.T) {
		ds := testDataset()
		ds.Posts[1].Post.ID = ds.Posts[0].Post.ID
		if err := ds.Validate(); err == nil {
			t.Error("Expected error for duplicate post id")
		}
	})
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"seed.json", "seed.json.zst", "seed.json.gz", "seed.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := testDataset()

			if err := Save(path, want); err != nil {
				t.Fatalf("Failed to save: %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Failed to load: %v", err)
			}
			assertDatasetEqual(t, got, want)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("Missing database", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "missing.db")); err == nil {
			t.Error("Expected error for missing database")
		}
	})

	t.Run("Corrupt compressed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json.zst")
		os.WriteFile(path, []byte("definitely not zstd"), 0o644)
		if _, err := Load(path); err == nil {
			t.Error("Expected error for corrupt zstd seed")
		}
	})

	t.Run("Invalid reference", func(t *testing.T) {
		path := filepath.Join(dir, "orphan.json")
		os.WriteFile(path, []byte(`{"users":[{"id":1,"name":"A"}],"posts":[{"id":1,"user":{"id":2},"content":"x","timestamp":"2023-01-01T00:00:00Z"}]}`), 0o644)
		if _, err := Load(path); !errors.Is(err, model.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
