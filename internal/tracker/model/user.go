package model

import "time"

type User struct {
	ID           int64     `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FirstName    string    `bson:"first_name,omitempty" json:"first_name"`
	LastName     string    `bson:"last_name,omitempty" json:"last_name"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	IsStaff      bool      `bson:"is_staff" json:"is_staff"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// UserSummary is the public representation embedded in other resources.
type UserSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
