package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"opticpro-backend/utils"
)

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// Account is a staff login. The password is write-only: it is hashed before
// it ever reaches storage and is never serialized back out. The storage
// layer allows many roles per account but the business rule is at most one;
// AccountService enforces it on edit.
type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	UserName string    `gorm:"uniqueIndex;not null"`
	Email    string
	Password string `gorm:"not null" json:"-"`

	Roles []Role `gorm:"many2many:account_roles;"`

	LastLogin *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.Password = hashed
	return
}

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"uniqueIndex;not null"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
