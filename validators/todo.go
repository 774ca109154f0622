package validators

import (
	"errors"
	"strings"
)

var (
	ErrTodoTextEmpty   = errors.New("todo text can't be empty")
	ErrTodoTextTooLong = errors.New("todo text is too long")
)

// TodoTextValidator checks t and returns it trimmed of surrounding whitespace
func TodoTextValidator(t string) (string, error) {
	t = strings.TrimSpace(t)
	if t == "" {
		return "", ErrTodoTextEmpty
	}

	if len(t) > 2048 {
		return "", ErrTodoTextTooLong
	}

	return t, nil
}
