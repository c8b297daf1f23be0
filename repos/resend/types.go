package resend

// InviteRequest is the payload a coach posts to invite an assistant.
type InviteRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// FeedbackMail carries an approved weekly feedback text to a player inbox.
type FeedbackMail struct {
	Email      string `json:"email"`
	PlayerName string `json:"playerName"`
	Text       string `json:"text"`
}
