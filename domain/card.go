package domain

import (
	"fmt"
	"sort"
	"time"
)

// CardTitle is the fixed set of list names a board may contain. The wire
// values must match the server exactly, including spacing and case.
type CardTitle string

const (
	TitleIcebox           CardTitle = "Icebox"
	TitleBacklog          CardTitle = "Backlog"
	TitleOnGoing          CardTitle = "On going"
	TitleWaitingForReview CardTitle = "Waiting for review"
	TitleDone             CardTitle = "Done"
)

// TitleOrder fixes card presentation order by enumeration position,
// independent of creation time or server order.
var TitleOrder = []CardTitle{
	TitleIcebox,
	TitleBacklog,
	TitleOnGoing,
	TitleWaitingForReview,
	TitleDone,
}

// ParseCardTitle returns the enumeration value matching s.
func ParseCardTitle(s string) (CardTitle, error) {
	for _, t := range TitleOrder {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown card title %q", s)
}

func titleRank(t CardTitle) int {
	for i, v := range TitleOrder {
		if v == t {
			return i
		}
	}
	return len(TitleOrder)
}

// Card is a fixed-status column on a board. A board holds at most one card
// per title value.
type Card struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Title     CardTitle `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// SortCards orders cards by enumeration position of their title.
func SortCards(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return titleRank(out[i].Title) < titleRank(out[j].Title)
	})
	return out
}

// AvailableTitles returns the titles not yet present among cards, in
// enumeration order. The create-card control offers exactly this set.
func AvailableTitles(cards []Card) []CardTitle {
	present := make(map[CardTitle]bool, len(cards))
	for _, c := range cards {
		present[c.Title] = true
	}
	var out []CardTitle
	for _, t := range TitleOrder {
		if !present[t] {
			out = append(out, t)
		}
	}
	return out
}
