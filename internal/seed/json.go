package seed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/debemdeboas/dallama/internal/model"
)

// Wire format of the dataset. Posts embed a copy of their author.
type jsonDataset struct {
	Users []model.User `json:"users"`
	Posts []jsonPost   `json:"posts"`
}

type jsonPost struct {
	ID        model.PostID    `json:"id"`
	User      model.User      `json:"user"`
	Content   string          `json:"content"`
	Votes     model.VoteTally `json:"votes"`
	Timestamp timestamp       `json:"timestamp"`
}

// timestamp accepts the layouts found in hand written seed files. Values
// without a zone are taken as UTC.
type timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse time '%s' with any known format", s)
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = timestamp{}
		return nil
	}
	parsed, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	*t = timestamp(parsed)
	return nil
}

func (t timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339Nano))
}

func Parse(data []byte) (*Dataset, error) {
	var raw jsonDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	ds := &Dataset{
		Users: raw.Users,
		Posts: make([]model.Entry, 0, len(raw.Posts)),
	}
	for _, p := range raw.Posts {
		ds.Posts = append(ds.Posts, model.Entry{
			Post: model.Post{
				ID:           p.ID,
				Author:       p.User.ID,
				Content:      p.Content,
				CreatedDate:  time.Time(p.Timestamp),
				ModifiedDate: time.Time(p.Timestamp),
			},
			Tally: p.Votes,
		})
	}
	return ds, nil
}

func Encode(ds *Dataset) ([]byte, error) {
	users := make(map[model.UserID]model.User, len(ds.Users))
	for _, u := range ds.Users {
		users[u.ID] = u
	}

	raw := jsonDataset{
		Users: ds.Users,
		Posts: make([]jsonPost, 0, len(ds.Posts)),
	}
	for _, e := range ds.Posts {
		raw.Posts = append(raw.Posts, jsonPost{
			ID:        e.Post.ID,
			User:      users[e.Post.Author],
			Content:   e.Post.Content,
			Votes:     e.Tally,
			Timestamp: timestamp(e.Post.ModifiedDate),
		})
	}

	return json.MarshalIndent(raw, "", "  ")
}
