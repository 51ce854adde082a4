package models

import "time"

type ConversationTurn struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Subject   string    `json:"subject,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type TutorAnswer struct {
	Answer         string   `json:"answer"`
	Question       string   `json:"question"`
	Subject        string   `json:"subject,omitempty"`
	Suggestions    []string `json:"suggestions"`
	Timestamp      string   `json:"timestamp"`
	ConversationID string   `json:"conversation_id"`
	Error          bool     `json:"error"`
}
