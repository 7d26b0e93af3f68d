package api

import (
	"context"
	"net/http"

	"boardsync/domain"
)

type cardPayload struct {
	Title domain.CardTitle `json:"title"`
}

// Cards lists the cards of a board.
func (c *Client) Cards(ctx context.Context, boardID string) ([]domain.Card, error) {
	var cards []domain.Card
	if err := c.do(ctx, http.MethodGet, "/boards/"+boardID+"/cards", nil, &cards, "fetch cards", "Fetch cards failed"); err != nil {
		return nil, err
	}
	return cards, nil
}

// CreateCard creates a card with the given title on the board.
func (c *Client) CreateCard(ctx context.Context, boardID string, title domain.CardTitle) (domain.Card, error) {
	var card domain.Card
	if err := c.do(ctx, http.MethodPost, "/boards/"+boardID+"/cards", cardPayload{Title: title}, &card, "create card", "Create card failed"); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// Card fetches a single card.
func (c *Client) Card(ctx context.Context, boardID, cardID string) (domain.Card, error) {
	var card domain.Card
	if err := c.do(ctx, http.MethodGet, "/boards/"+boardID+"/cards/"+cardID, nil, &card, "fetch card", "Fetch card failed"); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// UpdateCard renames a card.
func (c *Client) UpdateCard(ctx context.Context, boardID, cardID string, title domain.CardTitle) (domain.Card, error) {
	var card domain.Card
	if err := c.do(ctx, http.MethodPut, "/boards/"+boardID+"/cards/"+cardID, cardPayload{Title: title}, &card, "update card", "Update card failed"); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

// DeleteCard deletes a card.
func (c *Client) DeleteCard(ctx context.Context, boardID, cardID string) error {
	return c.do(ctx, http.MethodDelete, "/boards/"+boardID+"/cards/"+cardID, nil, nil, "delete card", "Delete card failed")
}
