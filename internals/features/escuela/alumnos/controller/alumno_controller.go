// file: internals/features/escuela/alumnos/controller/alumno_controller.go
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

	"horarios_backend/internals/features/escuela/alumnos/dto"
	"horarios_backend/internals/features/escuela/alumnos/model"
)

type AlumnoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAlumnoController(db *gorm.DB, v *validator.Validate) *AlumnoController {
	return &AlumnoController{DB: db, Validate: v}
}

// GET /alumnos
func (ctl *AlumnoController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.AlumnoModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(alumno_nombre) LIKE ? OR LOWER(alumno_matricula) LIKE ?)", s, s)
	}
	if grupoStr := strings.TrimSpace(c.Query("grupo_id")); grupoStr != "" {
		grupoID, err := uuid.Parse(grupoStr)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "grupo_id inválido")
		}
		db = db.Where("alumno_grupo_id = ?", grupoID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar los alumnos")
	}

	var rows []model.AlumnoModel
	if err := db.Order("alumno_matricula ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar los alumnos")
	}

	out := make([]dto.AlumnoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewAlumnoResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /alumnos/:id
func (ctl *AlumnoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var alumno model.AlumnoModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("alumno_id = ?", id).
		First(&alumno).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el alumno")
	}
	return helpers.JsonOK(c, "", dto.NewAlumnoResponse(&alumno))
}

// POST /alumnos
func (ctl *AlumnoController) Create(c *fiber.Ctx) error {
	var req dto.CreateAlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var alumno model.AlumnoModel
	if err := req.ApplyToModel(&alumno); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// el grupo debe existir
	var existeGrupo int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("grupos").
		Where("grupo_id = ? AND grupo_deleted_at IS NULL", alumno.AlumnoGrupoID).
		Count(&existeGrupo).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el grupo")
	}
	if existeGrupo == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Grupo no encontrado")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&alumno).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Matrícula o usuario ya registrados")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el alumno")
	}
	return helpers.JsonCreated(c, "Alumno creado", dto.NewAlumnoResponse(&alumno))
}

// PATCH /alumnos/:id
func (ctl *AlumnoController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchAlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var alumno model.AlumnoModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("alumno_id = ?", id).
		First(&alumno).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el alumno")
	}

	updates, err := req.BuildUpdateMap()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No hay campos para actualizar")
	}
	updates["alumno_updated_at"] = time.Now()

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&alumno).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Matrícula ya registrada")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el alumno")
	}
	return helpers.JsonUpdated(c, "Alumno actualizado", dto.NewAlumnoResponse(&alumno))
}

// DELETE /alumnos/:id (soft delete)
func (ctl *AlumnoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Where("alumno_id = ?", id).
		Delete(&model.AlumnoModel{})
	if tx.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el alumno")
	}
	if tx.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
	}
	return helpers.JsonDeleted(c, "Alumno eliminado", fiber.Map{"deleted": true})
}
