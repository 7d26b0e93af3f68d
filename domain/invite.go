package domain

// Invite is the board membership invitation as sent on the wire. The client
// generates InviteID before the request so the later respond-invite call and
// the pushed notification can reference it.
type Invite struct {
	InviteID     string `json:"invite_id"`
	BoardOwnerID string `json:"board_owner_id"`
	MemberID     string `json:"member_id"`
	EmailMember  string `json:"email_member,omitempty"`
	Status       string `json:"status"`
}
