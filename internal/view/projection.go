// Package view derives the visible feed from the post store and the vote ledger.
package view

import "github.com/debemdeboas/dallama/internal/model"

type PostLister interface {
	List() []model.Post
}

type TallySource interface {
	TallyOf(id model.PostID) model.VoteTally
}

// VisiblePosts returns the posts matching filter in store order, each paired
// with its current tally. It is recomputed on every call.
func VisiblePosts(posts PostLister, tallies TallySource, filter model.Filter) []model.Entry {
	all := posts.List()
	entries := make([]model.Entry, 0, len(all))
	for i := range all {
		if !filter.Matches(&all[i]) {
			continue
		}
		entries = append(entries, model.Entry{
			Post:  all[i],
			Tally: tallies.TallyOf(all[i].ID),
		})
	}
	return entries
}
