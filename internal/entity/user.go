package entity

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User carries only what reporting needs: identity and when the account was
// created, to count new customers inside a period.
type User struct {
	ID      string
	Created time.Time
	Role    UserRole
}
