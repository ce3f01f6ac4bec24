package entity

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID       int64
	Username string // unique
	FullName string
	Role     UserRole
}
