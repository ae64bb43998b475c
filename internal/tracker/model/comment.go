package model

import "time"

type Comment struct {
	ID        int64     `bson:"_id" json:"id"`
	TaskID    int64     `bson:"task_id" json:"task"`
	AuthorID  *int64    `bson:"author_id" json:"author_id"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (c *Comment) AuthoredBy() *int64 {
	return c.AuthorID
}

type CommentResponse struct {
	ID        int64        `json:"id"`
	Task      int64        `json:"task"`
	Body      string       `json:"body"`
	Author    *UserSummary `json:"author"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
