// file: internals/features/escuela/materias/controller/materia_controller.go
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

	"horarios_backend/internals/features/escuela/materias/dto"
	"horarios_backend/internals/features/escuela/materias/model"
)

type MateriaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMateriaController(db *gorm.DB, v *validator.Validate) *MateriaController {
	return &MateriaController{DB: db, Validate: v}
}

func (ctl *MateriaController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.MateriaModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(materia_nombre) LIKE ? OR LOWER(materia_clave) LIKE ?)", s, s)
	}
	if sem := c.QueryInt("semestre", 0); sem > 0 {
		db = db.Where("materia_semestre = ?", sem)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar las materias")
	}

	var rows []model.MateriaModel
	if err := db.Order("materia_semestre ASC, materia_clave ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar las materias")
	}

	out := make([]dto.MateriaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewMateriaResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *MateriaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var materia model.MateriaModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("materia_id = ?", id).
		First(&materia).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Materia no encontrada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar la materia")
	}
	return helpers.JsonOK(c, "", dto.NewMateriaResponse(&materia))
}

func (ctl *MateriaController) Create(c *fiber.Ctx) error {
	var req dto.CreateMateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var materia model.MateriaModel
	req.ApplyToModel(&materia)

	if err := ctl.DB.WithContext(c.UserContext()).Create(&materia).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Clave de materia ya registrada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la materia")
	}
	return helpers.JsonCreated(c, "Materia creada", dto.NewMateriaResponse(&materia))
}

func (ctl *MateriaController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchMateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var materia model.MateriaModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("materia_id = ?", id).
		First(&materia).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Materia no encontrada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar la materia")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No hay campos para actualizar")
	}
	updates["materia_updated_at"] = time.Now()

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&materia).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la materia")
	}
	return helpers.JsonUpdated(c, "Materia actualizada", dto.NewMateriaResponse(&materia))
}

func (ctl *MateriaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Where("materia_id = ?", id).
		Delete(&model.MateriaModel{})
	if tx.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la materia")
	}
	if tx.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Materia no encontrada")
	}
	return helpers.JsonDeleted(c, "Materia eliminada", fiber.Map{"deleted": true})
}
