package domain

import "context"

// User is the author of an event.
// swagger:model User
type User struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	UserImage string `json:"userImage"`
}

// NewUser returns a new User. ID is assigned by the remote service on create.
func NewUser(name, userImage string) *User {
	return &User{Name: name, UserImage: userImage}
}

// UserGateway is the remote /users collection.
type UserGateway interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, user User) (User, error)
}

// FindUser returns the user with the given id.
func FindUser(users []User, id int64) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
