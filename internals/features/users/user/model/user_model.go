package model

import (
	"time"

	"github.com/google/uuid"

	"ambassade_backend/internals/constants"
)

// UserModel couvre les deux espaces : demandeurs (sans rôle) et personnel
// (exactement un rôle parmi ADMIN, AGENT, CHEF_SERVICE, CONSUL).
type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nom      string    `gorm:"column:nom;size:100;not null"        json:"nom"        validate:"required,min=2,max=100"`
	Prenom   string    `gorm:"column:prenom;size:100;not null"     json:"prenom"     validate:"required,min=2,max=100"`
	Email    string    `gorm:"column:email;size:255;unique;not null" json:"email"    validate:"required,email"`
	Phone    *string   `gorm:"column:phone;size:30"                json:"phone,omitempty"`
	Password string    `gorm:"column:password;not null"            json:"-"`
	GoogleID *string   `gorm:"column:google_id;size:255;unique"    json:"-"`

	UserType string  `gorm:"column:user_type;type:varchar(20);not null;default:'DEMANDEUR'" json:"user_type"`
	Role     *string `gorm:"column:role;type:varchar(20)" json:"role,omitempty"`

	Status string `gorm:"column:status;type:varchar(20);not null;default:'ACTIF'" json:"status"`

	// Compteur HOTP pour le second facteur (voir features/users/auth).
	OtpCounter uint64 `gorm:"column:otp_counter;not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsStaff() bool {
	return u.UserType == constants.UserTypePersonnel
}

func (u *UserModel) IsActive() bool {
	return u.Status == constants.UserStatusActif
}
