package domain

import "time"

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Mobile       string    `json:"mobile" db:"mobile"`
	Email        string    `json:"email,omitempty" db:"email"`
	Address      string    `json:"address" db:"address"`
	RegisteredOn time.Time `json:"registeredOn" db:"registered_on"`
}
