// file: internals/features/escuela/salones/controller/salon_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helpers "horarios_backend/internals/helpers"

	"horarios_backend/internals/features/escuela/salones/dto"
	"horarios_backend/internals/features/escuela/salones/model"
)

type SalonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSalonController(db *gorm.DB, v *validator.Validate) *SalonController {
	return &SalonController{DB: db, Validate: v}
}

func (ctl *SalonController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.SalonModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(salon_codigo) LIKE ?", s)
	}
	if edificio := strings.TrimSpace(c.Query("edificio")); edificio != "" {
		db = db.Where("salon_edificio = ?", edificio)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar los salones")
	}

	var rows []model.SalonModel
	if err := db.Order("salon_codigo ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar los salones")
	}

	out := make([]dto.SalonResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewSalonResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *SalonController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var salon model.SalonModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("salon_id = ?", id).
		First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Salón no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el salón")
	}
	return helpers.JsonOK(c, "", dto.NewSalonResponse(&salon))
}

func (ctl *SalonController) Create(c *fiber.Ctx) error {
	var req dto.CreateSalonRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var salon model.SalonModel
	if err := req.ApplyToModel(&salon); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Características inválidas")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&salon).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Código de salón ya registrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el salón")
	}
	return helpers.JsonCreated(c, "Salón creado", dto.NewSalonResponse(&salon))
}

func (ctl *SalonController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchSalonRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var salon model.SalonModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("salon_id = ?", id).
		First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Salón no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el salón")
	}

	updates, err := req.BuildUpdateMap()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Características inválidas")
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No hay campos para actualizar")
	}
	updates["salon_updated_at"] = time.Now()

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&salon).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el salón")
	}
	return helpers.JsonUpdated(c, "Salón actualizado", dto.NewSalonResponse(&salon))
}

func (ctl *SalonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Where("salon_id = ?", id).
		Delete(&model.SalonModel{})
	if tx.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el salón")
	}
	if tx.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Salón no encontrado")
	}
	return helpers.JsonDeleted(c, "Salón eliminado", fiber.Map{"deleted": true})
}
