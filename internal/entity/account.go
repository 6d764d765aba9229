package entity

import "time"

// Account is the login identity embedded by account-backed records. Password
// only ever holds a one-way digest.
type Account struct {
	Username   string     `bun:"username,notnull,unique"`
	Password   string     `bun:"password,notnull"`
	Email      string     `bun:"email,notnull"`
	FirstName  string     `bun:"first_name,notnull"`
	LastName   string     `bun:"last_name,notnull"`
	IsActive   bool       `bun:"is_active,notnull,default:true"`
	DateJoined time.Time  `bun:"date_joined,notnull"`
	LastLogin  *time.Time `bun:"last_login"`
}
