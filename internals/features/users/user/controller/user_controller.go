package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ambassade_backend/internals/constants"
	"ambassade_backend/internals/features/users/user/dto"
	"ambassade_backend/internals/features/users/user/model"
	helper "ambassade_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 POST /api/a/users — création d'un membre du personnel (ADMIN)
func (ctrl *UserController) CreateStaff(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}

	user := req.ToModel(string(hash))
	if err := ctrl.DB.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Un compte existe déjà avec cet email")
		}
		log.Printf("[ERROR] Création personnel : %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la création du compte")
	}

	return helper.JsonCreated(c, "Compte personnel créé", dto.ToUserResponse(user))
}

// 🟢 GET /api/a/users — liste paginée du personnel et/ou demandeurs
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{}).
		Where("status <> ?", constants.UserStatusSupprime)

	if t := c.Query("user_type"); t != "" {
		q = q.Where("user_type = ?", t)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("email ILIKE ? OR nom ILIKE ? OR prenom ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}

	return helper.JsonList(c, "Utilisateurs récupérés",
		dto.ToUserResponseList(users),
		helper.BuildPagination(total, paging, len(users)))
}

// 🟢 GET /api/u/me — profil de l'utilisateur courant (les deux espaces)
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Utilisateur introuvable")
	}
	return helper.JsonOK(c, "Profil récupéré", dto.ToUserResponse(&user))
}

// 🟡 PUT /api/u/me — mise à jour du profil courant
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Nom != nil {
		updates["nom"] = *req.Nom
	}
	if req.Prenom != nil {
		updates["prenom"] = *req.Prenom
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aucun champ à mettre à jour")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Utilisateur introuvable")
	}
	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la mise à jour")
	}
	return helper.JsonUpdated(c, "Profil mis à jour", dto.ToUserResponse(&user))
}

// 🟡 PUT /api/a/users/:id — rôle / statut d'un membre du personnel (ADMIN)
func (ctrl *UserController) UpdateStaff(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Utilisateur introuvable")
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		if !user.IsStaff() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Un demandeur n'a pas de rôle")
		}
		updates["role"] = *req.Role
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aucun champ à mettre à jour")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la mise à jour")
	}
	return helper.JsonUpdated(c, "Compte mis à jour", dto.ToUserResponse(&user))
}

// 🔴 DELETE /api/a/users/:id — suppression douce (statut SUPPRIME)
func (ctrl *UserController) SoftDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ? AND status <> ?", id, constants.UserStatusSupprime).
		Update("status", constants.UserStatusSupprime)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la suppression")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Utilisateur introuvable")
	}
	return helper.JsonDeleted(c, "Compte supprimé", fiber.Map{"id": id})
}

// 23505 = violation d'unicité Postgres (email ou google_id en doublon)
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
