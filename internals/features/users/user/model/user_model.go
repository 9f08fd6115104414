package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserModel es la credencial de acceso. Los perfiles tutor/maestro/responsable
// se espejan con esta tabla por correo.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"size:255;not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"size:255;uniqueIndex;not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`
	UserRole     string    `gorm:"type:varchar(20);not null;column:user_role" json:"user_role"`
	UserActivo   bool      `gorm:"not null;default:true;column:user_activo" json:"user_activo"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain))
}
