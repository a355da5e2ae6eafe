// file: internals/features/escuela/maestros/controller/maestro_controller.go
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

	"horarios_backend/internals/features/escuela/maestros/dto"
	"horarios_backend/internals/features/escuela/maestros/model"
)

type MaestroController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMaestroController(db *gorm.DB, v *validator.Validate) *MaestroController {
	return &MaestroController{DB: db, Validate: v}
}

func (ctl *MaestroController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.MaestroModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(maestro_nombre) LIKE ? OR LOWER(maestro_email) LIKE ?)", s, s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar los maestros")
	}

	var rows []model.MaestroModel
	if err := db.Order("maestro_nombre ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar los maestros")
	}

	out := make([]dto.MaestroResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewMaestroResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *MaestroController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var maestro model.MaestroModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("maestro_id = ?", id).
		First(&maestro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Maestro no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el maestro")
	}
	return helpers.JsonOK(c, "", dto.NewMaestroResponse(&maestro))
}

func (ctl *MaestroController) Create(c *fiber.Ctx) error {
	var req dto.CreateMaestroRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var maestro model.MaestroModel
	if err := req.ApplyToModel(&maestro); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&maestro).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Email o usuario ya registrados")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el maestro")
	}
	return helpers.JsonCreated(c, "Maestro creado", dto.NewMaestroResponse(&maestro))
}

func (ctl *MaestroController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchMaestroRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var maestro model.MaestroModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("maestro_id = ?", id).
		First(&maestro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Maestro no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el maestro")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No hay campos para actualizar")
	}
	updates["maestro_updated_at"] = time.Now()

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&maestro).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Email ya registrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el maestro")
	}
	return helpers.JsonUpdated(c, "Maestro actualizado", dto.NewMaestroResponse(&maestro))
}

func (ctl *MaestroController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Where("maestro_id = ?", id).
		Delete(&model.MaestroModel{})
	if tx.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el maestro")
	}
	if tx.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Maestro no encontrado")
	}
	return helpers.JsonDeleted(c, "Maestro eliminado", fiber.Map{"deleted": true})
}
