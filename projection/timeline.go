// Package projection builds display-ready timelines from stored messages.
// Handles ordering and relative publication time wording.
// Does not fetch messages or interact with storage directly.
package projection

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"crafty/domain"
)

// Entry is one display-ready line of a timeline.
type Entry struct {
	Author          string `json:"author"`
	Text            string `json:"text"`
	PublicationTime string `json:"publicationTime"`
}

// BuildTimeline sorts messages most recent first and tags each with a
// human readable publication time relative to now. Messages sharing a
// timestamp fall back to ID order so the output is stable.
func BuildTimeline(messages []domain.Message, now time.Time) []Entry {
	sorted := make([]domain.Message, len(messages))
	copy(sorted, messages)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].PublishedAt.Equal(sorted[j].PublishedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})

	return lo.Map(sorted, func(m domain.Message, _ int) Entry {
		return Entry{
			Author:          m.Author,
			Text:            m.Text,
			PublicationTime: PublicationTime(now, m.PublishedAt),
		}
	})
}

// PublicationTime renders the age of a message at instant now.
// Wording table:
//
//	under 1 minute  -> "less than a minute ago"
//	under 2 minutes -> "1 minute ago"
//	otherwise       -> "{n} minutes ago"
func PublicationTime(now, publishedAt time.Time) string {
	minutes := int(now.Sub(publishedAt) / time.Minute)
	if minutes < 1 {
		return "less than a minute ago"
	}
	if minutes < 2 {
		return "1 minute ago"
	}
	return fmt.Sprintf("%d minutes ago", minutes)
}
