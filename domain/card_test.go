package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestParseCardTitle(t *testing.T) {
	for _, want := range TitleOrder {
		got, err := ParseCardTitle(string(want))
		if err != nil {
			t.Fatalf("parse %q: %v", want, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %q", want, got)
		}
	}
	if _, err := ParseCardTitle("Doing"); err == nil {
		t.Fatal("expected error for unknown title")
	}
}

func TestSortCardsByEnumerationPosition(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cards := []Card{
		{ID: "c1", Title: TitleDone, CreatedAt: base},
		{ID: "c2", Title: TitleIcebox, CreatedAt: base.Add(time.Hour)},
		{ID: "c3", Title: TitleWaitingForReview, CreatedAt: base.Add(2 * time.Hour)},
	}

	sorted := SortCards(cards)

	got := []CardTitle{sorted[0].Title, sorted[1].Title, sorted[2].Title}
	want := []CardTitle{TitleIcebox, TitleWaitingForReview, TitleDone}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order: %v", got)
	}
	if cards[0].Title != TitleDone {
		t.Fatal("SortCards mutated its input")
	}
}

func TestAvailableTitles(t *testing.T) {
	cards := []Card{
		{ID: "c1", Title: TitleBacklog},
		{ID: "c2", Title: TitleDone},
	}

	got := AvailableTitles(cards)

	want := []CardTitle{TitleIcebox, TitleOnGoing, TitleWaitingForReview}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected titles: %v", got)
	}
}

func TestAvailableTitlesAllPresent(t *testing.T) {
	var cards []Card
	for _, title := range TitleOrder {
		cards = append(cards, Card{ID: string(title), Title: title})
	}
	if got := AvailableTitles(cards); len(got) != 0 {
		t.Fatalf("expected no available titles, got %v", got)
	}
}
