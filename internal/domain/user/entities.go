package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
	RoleAdmin    Role = "admin"
)

// Table: users (rebuilt from the demo directory on every boot)
type User struct {
	ID           string    `gorm:"column:id;primaryKey;size:32" json:"id"`
	Email        string    `gorm:"column:email;size:191;uniqueIndex:ux_users_email;not null" json:"email"`
	Name         string    `gorm:"column:name;size:128;not null" json:"name"`
	Role         Role      `gorm:"column:role;size:16;not null" json:"role"`
	PasswordHash string    `gorm:"column:password_hash;size:72;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// DemoAccount is a directory entry before its password is hashed.
type DemoAccount struct {
	ID       string
	Email    string
	Name     string
	Role     Role
	Password string
}

// DemoDirectory is the fixed set of accounts the service boots with.
func DemoDirectory() []DemoAccount {
	return []DemoAccount{
		{ID: "user_001", Email: "borrower@demo.finance", Name: "Aarav Sharma", Role: RoleBorrower, Password: "borrower123"},
		{ID: "user_002", Email: "lender@demo.finance", Name: "Priya Nair", Role: RoleLender, Password: "lender123"},
		{ID: "user_003", Email: "admin@demo.finance", Name: "Rohan Mehta", Role: RoleAdmin, Password: "admin123"},
	}
}
