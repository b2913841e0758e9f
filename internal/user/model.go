package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uint
	Email     string
	Password  string
	Name      string
	Phone     *string
	Role      Role
	CreatedAt time.Time
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}
