package identity

import (
	"errors"
	"testing"

	"github.com/debemdeboas/dallama/internal/model"
)

var testUsers = []model.User{
	{ID: 1, Name: "Alice", Nickname: "ali"},
	{ID: 2, Name: "Bob", Nickname: "bobby"},
}

func TestNewDirectory(t *testing.T) {
	t.Run("First user is current", func(t *testing.T) {
		d, err := NewDirectory(testUsers)
		if err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if got := d.Current(); got.ID != 1 {
			t.Errorf("Expected current user 1, got %d", got.ID)
		}
		if len(d.Users()) != 2 {
			t.Errorf("Expected 2 users, got %d", len(d.Users()))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := NewDirectory(nil); err == nil {
			t.Error("Expected error for empty directory")
		}
	})

	t.Run("Duplicate ids", func(t *testing.T) {
		_, err := NewDirectory([]model.User{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
		if err == nil {
			t.Error("Expected error for duplicate ids")
		}
	})
}

func TestGetAndSwitch(t *testing.T) {
	d, _ := NewDirectory(testUsers)

	if u, err := d.Get(2); err != nil || u.Name != "Bob" {
		t.Errorf("Expected Bob, got %+v (err=%v)", u, err)
	}
	if _, err := d.Get(3); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
	if !d.Exists(1) || d.Exists(3) {
		t.Error("Unexpected Exists result")
	}

	u, err := d.Switch(2)
	if err != nil {
		t.Fatalf("Failed to switch: %v", err)
	}
	if u.ID != 2 || d.Current().ID != 2 {
		t.Errorf("Expected current user 2, got %d", d.Current().ID)
	}

	if _, err := d.Switch(9); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
	if d.Current().ID != 2 {
		t.Error("Expected failed switch to keep current identity")
	}
}

func TestUsersReturnsCopy(t *testing.T) {
	d, _ := NewDirectory(testUsers)
	users := d.Users()
	users[0].Name = "Mallory"

	if d.Users()[0].Name != "Alice" {
		t.Error("Expected directory to be unaffected by caller mutation")
	}
}
