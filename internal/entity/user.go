package entity

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

type User struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Role   string     `json:"role"`
	Status UserStatus `json:"status"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	// Toggle flips the user's status and returns the updated copy, or ErrUserNotFound.
	Toggle(ctx context.Context, id int) (*User, error)
}

func (u *User) Toggle() {
	if u.Status == UserActive {
		u.Status = UserInactive
		return
	}
	u.Status = UserActive
}

func (u User) IsActive() bool {
	return u.Status == UserActive
}

// SeedUsers is the fixed admin user set loaded at startup.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Alex Johnson", Role: "Admin", Status: UserActive},
		{ID: 2, Name: "Sarah Chen", Role: "Marketing", Status: UserActive},
		{ID: 3, Name: "James Wilson", Role: "Sales", Status: UserActive},
		{ID: 4, Name: "Maria Garcia", Role: "Analyst", Status: UserInactive},
		{ID: 5, Name: "David Park", Role: "Marketing", Status: UserActive},
	}
}
