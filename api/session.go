package api

import (
	"dkowalik/todo-api/model"
	"dkowalik/todo-api/security"
)

// issueSession mints an auth token for userID and appends it to the
// user's stored token list. The token string is only handed out once
// the row is persisted, so a returned token is always a live one
func (a *API) issueSession(userID string) (string, error) {
	signed, err := a.Tokens.Issue(userID)
	if err != nil {
		return "", err
	}

	err = a.DB.Create(&model.Token{
		UserID: userID,
		Access: security.AccessAuth,
		Token:  signed,
	}).Error
	if err != nil {
		return "", err
	}

	return signed, nil
}
