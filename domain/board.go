package domain

import (
	"sort"
	"time"
)

// Board is a workspace owning cards and tasks. Members grow via accepted
// invites; the server deletes owned cards and tasks transitively.
type Board struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Members     []string  `json:"members,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SortBoards orders boards newest first. Presentation order is recomputed on
// every read; the cache keeps server/insertion order.
func SortBoards(boards []Board) []Board {
	out := append([]Board(nil), boards...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
