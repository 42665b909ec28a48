package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleOperator   UserRole = "operator"
)

type User struct {
	DefaultModel
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	u.ensureID()
	return nil
}
