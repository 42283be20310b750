package repository

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/debemdeboas/dallama/internal/cache"
	"github.com/debemdeboas/dallama/internal/model"
)

type MemoryPostRepository struct { // implements PostRepository
	mu sync.RWMutex

	// Newest first. Insertion order is the source of truth, never timestamps.
	posts []*model.Post
	index *cache.Cache[model.PostID, *model.Post]

	// Next id to hand out. Only ever grows, so removed ids are never reissued.
	nextID model.PostID

	now func() time.Time
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		index:  cache.NewCache[model.PostID, *model.Post](),
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source used for post timestamps.
func (r *MemoryPostRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Seed replaces the store's contents with posts. On error the store is left
// untouched. The id counter only moves forward.
func (r *MemoryPostRepository) Seed(posts []model.Post) error {
	list := make([]*model.Post, 0, len(posts))
	index := make(map[model.PostID]*model.Post, len(posts))
	nextID := model.PostID(1)

	for i := range posts {
		p := posts[i]
		if _, exists := index[p.ID]; exists {
			return fmt.Errorf("duplicate post id %d in seed", p.ID)
		}
		if p.ModifiedDate.IsZero() {
			p.ModifiedDate = p.CreatedDate
		}

		list = append(list, &p)
		index[p.ID] = &p
		nextID = max(nextID, p.ID+1)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = list
	r.index.SetTo(index)
	r.nextID = max(r.nextID, nextID)

	repoLogger.Debug().Int("count", len(posts)).Int64("next_id", int64(r.nextID)).Msg("Posts seeded")
	return nil
}

func (r *MemoryPostRepository) Create(author model.UserID, content string) (*model.Post, error) {
	if model.IsBlank(content) {
		return nil, model.ErrEmptyContent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	post := &model.Post{
		ID:           r.nextID,
		Author:       author,
		Content:      content,
		CreatedDate:  now,
		ModifiedDate: now,
	}
	r.nextID++

	r.posts = slices.Insert(r.posts, 0, post)
	r.index.Set(post.ID, post)

	repoLogger.Debug().Int64("post_id", int64(post.ID)).Int("author", int(author)).Msg("Post created")

	created := *post
	return &created, nil
}

func (r *MemoryPostRepository) Edit(id model.PostID, content string) (*model.Post, error) {
	if model.IsBlank(content) {
		return nil, model.ErrEmptyContent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.index.Get(id)
	if !ok {
		return nil, fmt.Errorf("edit post %d: %w", id, model.ErrPostNotFound)
	}

	post.Content = content
	post.ModifiedDate = r.now()

	repoLogger.Debug().Int64("post_id", int64(id)).Msg("Post content set")

	edited := *post
	return &edited, nil
}

func (r *MemoryPostRepository) Remove(id model.PostID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index.Get(id); !ok {
		return
	}

	r.index.Delete(id)
	r.posts = slices.DeleteFunc(r.posts, func(p *model.Post) bool {
		return p.ID == id
	})

	repoLogger.Debug().Int64("post_id", int64(id)).Msg("Post removed")
}

func (r *MemoryPostRepository) Get(id model.PostID) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.index.Get(id)
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, model.ErrPostNotFound)
	}

	found := *post
	return &found, nil
}

func (r *MemoryPostRepository) List() []model.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, *p)
	}
	return posts
}
