package dto

import (
	"time"

	"github.com/google/uuid"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/users/user/model"
)

// 🔹 Création d'un membre du personnel (admin uniquement)
type CreateStaffRequest struct {
	Nom      string  `json:"nom"      validate:"required,min=2,max=100"`
	Prenom   string  `json:"prenom"   validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role"     validate:"required,oneof=ADMIN AGENT CHEF_SERVICE CONSUL"`
}

// 🔹 Mise à jour du profil (demandeur ou personnel, champs optionnels)
type UpdateProfileRequest struct {
	Nom    *string `json:"nom"    validate:"omitempty,min=2,max=100"`
	Prenom *string `json:"prenom" validate:"omitempty,min=2,max=100"`
	Phone  *string `json:"phone"`
}

// 🔹 Mise à jour admin (rôle / statut d'un membre du personnel)
type UpdateStaffRequest struct {
	Role   *string `json:"role"   validate:"omitempty,oneof=ADMIN AGENT CHEF_SERVICE CONSUL"`
	Status *string `json:"status" validate:"omitempty,oneof=ACTIF INACTIF SUPPRIME"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	UserType  string    `json:"user_type"`
	Role      *string   `json:"role,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *CreateStaffRequest) ToModel(hashedPassword string) *model.UserModel {
	role := r.Role
	return &model.UserModel{
		Nom:      r.Nom,
		Prenom:   r.Prenom,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: hashedPassword,
		UserType: constants.UserTypePersonnel,
		Role:     &role,
		Status:   constants.UserStatusActif,
	}
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.ID,
		Nom:       m.Nom,
		Prenom:    m.Prenom,
		Email:     m.Email,
		Phone:     m.Phone,
		UserType:  m.UserType,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToUserResponse(&models[i]))
	}
	return out
}
