package model

// VoteTally holds the vote counters of a single post. Counters only grow.
type VoteTally struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Score is the net vote count.
func (t VoteTally) Score() int {
	return t.Upvotes - t.Downvotes
}

// Entry is one row of the visible feed.
type Entry struct {
	Post  Post      `json:"post"`
	Tally VoteTally `json:"votes"`
}

// Filter restricts the feed to a single author. A nil Author shows every post.
type Filter struct {
	Author *UserID `json:"author,omitempty"`
}

func (f Filter) Matches(p *Post) bool {
	return f.Author == nil || *f.Author == p.Author
}

func FilterBy(id UserID) Filter {
	return Filter{Author: &id}
}
