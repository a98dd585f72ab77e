package models

import "time"

// UserRole mirrors the user role enum column.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleOfficer UserRole = "OFFICER"
)

// User mirrors the users table. Officers are users with role OFFICER.
type User struct {
	UserID       string   `db:"user_id"`
	Username     string   `db:"username"`
	Name         string   `db:"name"`
	Role         UserRole `db:"role"`
	PasswordHash string   `db:"password_hash"`
	IsActive     bool     `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
