package models

import "time"

// Message is the notification-intake record, shaped after the message board
// service the order webhook posts to.
type Message struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Content    string    `json:"content"`
	Website    string    `json:"website"`
	Agent      string    `json:"agent"`
	CreateTime time.Time `json:"create_time"`
	IsShow     bool      `json:"is_show"`
	IsDelete   bool      `json:"is_delete"`
}
