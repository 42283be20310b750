package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache[string, string]()

	t.Run("Set and Get", func(t *testing.T) {
		cache.Set("key", "value")

		got, exists := cache.Get("key")
		if !exists {
			t.Error("Expected key to exist")
		}
		if got != "value" {
			t.Errorf("Expected %q, got %q", "value", got)
		}
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		got, exists := cache.Get("missing")
		if exists {
			t.Error("Expected key to not exist")
		}
		if got != "" {
			t.Errorf("Expected zero value, got %q", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		cache.Set("gone", "soon")
		cache.Delete("gone")
		if _, exists := cache.Get("gone"); exists {
			t.Error("Expected key to be deleted")
		}
		// Deleting a missing key should not panic
		cache.Delete("never-there")
	})
}

func TestCache_Update(t *testing.T) {
	cache := NewCache[int, int]()

	if got := cache.Update(1, func(v int) int { return v + 1 }); got != 1 {
		t.Errorf("Expected 1 on first update, got %d", got)
	}
	if got := cache.Update(1, func(v int) int { return v + 1 }); got != 2 {
		t.Errorf("Expected 2 on second update, got %d", got)
	}
}

func TestCache_SetIfAbsent(t *testing.T) {
	cache := NewCache[string, int]()

	if !cache.SetIfAbsent("a", 1) {
		t.Error("Expected first SetIfAbsent to store")
	}
	if cache.SetIfAbsent("a", 2) {
		t.Error("Expected second SetIfAbsent to be a no-op")
	}
	if v, _ := cache.Get("a"); v != 1 {
		t.Errorf("Expected original value 1, got %d", v)
	}
}

func TestCache_ClearAndSetTo(t *testing.T) {
	cache := NewCache[string, int]()
	cache.Set("a", 1)
	cache.Set("b", 2)

	if cache.Len() != 2 {
		t.Errorf("Expected len 2, got %d", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d", cache.Len())
	}

	cache.SetTo(map[string]int{"x": 10})
	if v, ok := cache.Get("x"); !ok || v != 10 {
		t.Errorf("Expected x=10 after SetTo, got %d (exists=%v)", v, ok)
	}
}

func TestCache_ConcurrentUpdate(t *testing.T) {
	cache := NewCache[string, int]()

	const workers = 50
	const perWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				cache.Update("counter", func(v int) int { return v + 1 })
			}
		}()
	}
	wg.Wait()

	if v, _ := cache.Get("counter"); v != workers*perWorker {
		t.Errorf("Expected %d increments, got %d", workers*perWorker, v)
	}
}

func TestRenderedPageCache(t *testing.T) {
	ClearRenderedPageCache()

	for i := 0; i < 3; i++ {
		SetRenderedPage(fmt.Sprintf("hash-%d", i), "github", &RenderedPage{Title: fmt.Sprintf("Page %d", i)})
	}

	page, ok := GetRenderedPage("hash-1", "github")
	if !ok {
		t.Fatal("Expected page to be cached")
	}
	if page.Title != "Page 1" {
		t.Errorf("Expected 'Page 1', got %q", page.Title)
	}

	if _, ok := GetRenderedPage("hash-1", "monokai"); ok {
		t.Error("Expected style to be part of the cache key")
	}

	ClearRenderedPageCache()
	if _, ok := GetRenderedPage("hash-1", "github"); ok {
		t.Error("Expected cache to be cleared")
	}
}
