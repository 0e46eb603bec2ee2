package bookguide

import (
	"fmt"
	"strings"
	"time"
)

// Role is the role for one conversation exchange.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Exchange is one role-tagged turn of a conversation. The wire key for
// the text is "parts", matching the persisted transcript format.
type Exchange struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"parts" yaml:"parts"`
}

// Session is one run's ordered exchange log. It is owned by the running
// process for its whole lifetime and only ever grows by appending.
type Session struct {
	ID        string
	Exchanges []Exchange
}

// NewSession creates an empty session with a timestamp-derived ID.
func NewSession() Session {
	return Session{ID: time.Now().Format("20060102_150405")}
}

// Summarize renders a short summary of the questions asked so far. The
// first user-role exchange is the synthetic persona prompt, not a real
// question, and is skipped; up to three questions are listed.
func Summarize(exchanges []Exchange) string {
	questions := make([]string, 0, 3)
	seenSeed := false
	for _, exchange := range exchanges {
		if exchange.Role != RoleUser {
			continue
		}
		if !seenSeed {
			seenSeed = true
			continue
		}
		questions = append(questions, exchange.Content)
		if len(questions) == 3 {
			break
		}
	}
	return fmt.Sprintf("Discussion covered: %s...", strings.Join(questions, ", "))
}
