package entities

import "parkspot/internal/db"

type AuthResponse struct {
	Token string  `json:"token"`
	User  db.User `json:"user"`
}
