package models

type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
