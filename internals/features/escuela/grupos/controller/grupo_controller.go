// file: internals/features/escuela/grupos/controller/grupo_controller.go
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

	"horarios_backend/internals/features/escuela/grupos/dto"
	"horarios_backend/internals/features/escuela/grupos/model"
)

type GrupoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGrupoController(db *gorm.DB, v *validator.Validate) *GrupoController {
	return &GrupoController{DB: db, Validate: v}
}

// GET /grupos
func (ctl *GrupoController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.GrupoModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(grupo_nombre) LIKE ? OR LOWER(grupo_carrera) LIKE ?)", s, s)
	}
	if turno := strings.TrimSpace(c.Query("turno")); turno != "" {
		db = db.Where("grupo_turno = ?", strings.ToLower(turno))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar los grupos")
	}

	var rows []model.GrupoModel
	if err := db.Order("grupo_nombre ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar los grupos")
	}

	out := make([]dto.GrupoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewGrupoResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /grupos/:id
func (ctl *GrupoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var grupo model.GrupoModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("grupo_id = ?", id).
		First(&grupo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Grupo no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el grupo")
	}
	return helpers.JsonOK(c, "", dto.NewGrupoResponse(&grupo))
}

// POST /grupos
func (ctl *GrupoController) Create(c *fiber.Ctx) error {
	var req dto.CreateGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var grupo model.GrupoModel
	req.ApplyToModel(&grupo)

	if err := ctl.DB.WithContext(c.UserContext()).Create(&grupo).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Ya existe un grupo con ese nombre")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el grupo")
	}
	return helpers.JsonCreated(c, "Grupo creado", dto.NewGrupoResponse(&grupo))
}

// PATCH /grupos/:id
func (ctl *GrupoController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var grupo model.GrupoModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("grupo_id = ?", id).
		First(&grupo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Grupo no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el grupo")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No hay campos para actualizar")
	}
	updates["grupo_updated_at"] = time.Now()

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&grupo).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Ya existe un grupo con ese nombre")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el grupo")
	}
	return helpers.JsonUpdated(c, "Grupo actualizado", dto.NewGrupoResponse(&grupo))
}

// DELETE /grupos/:id (soft delete)
func (ctl *GrupoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Where("grupo_id = ?", id).
		Delete(&model.GrupoModel{})
	if tx.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el grupo")
	}
	if tx.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Grupo no encontrado")
	}
	return helpers.JsonDeleted(c, "Grupo eliminado", fiber.Map{"deleted": true})
}

// PUT /grupos/:id/jefe
// Nombra jefe de grupo a un alumno del mismo grupo. El flag del alumno y
// la referencia del grupo se actualizan en una sola transacción para que
// nunca queden desalineados; el jefe anterior (si había) pierde el flag.
func (ctl *GrupoController) AsignarJefe(c *fiber.Ctx) error {
	grupoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.AsignarJefeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}
	alumnoID, _ := uuid.Parse(req.AlumnoID)

	var grupo model.GrupoModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grupo_id = ?", grupoID).First(&grupo).Error; err != nil {
			return err
		}

		// el jefe debe pertenecer al grupo
		var pertenece int64
		if err := tx.Table("alumnos").
			Where("alumno_id = ? AND alumno_grupo_id = ? AND alumno_deleted_at IS NULL", alumnoID, grupoID).
			Count(&pertenece).Error; err != nil {
			return err
		}
		if pertenece == 0 {
			return errAlumnoFueraDelGrupo
		}

		// quitar flag al jefe anterior
		if grupo.GrupoJefeGrupoID != nil && *grupo.GrupoJefeGrupoID != alumnoID {
			if err := tx.Table("alumnos").
				Where("alumno_id = ?", *grupo.GrupoJefeGrupoID).
				Update("alumno_es_jefe_grupo", false).Error; err != nil {
				return err
			}
		}

		if err := tx.Table("alumnos").
			Where("alumno_id = ?", alumnoID).
			Update("alumno_es_jefe_grupo", true).Error; err != nil {
			return err
		}

		grupo.GrupoJefeGrupoID = &alumnoID
		return tx.Model(&grupo).Updates(map[string]interface{}{
			"grupo_jefe_grupo_id": alumnoID,
			"grupo_updated_at":    time.Now(),
		}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Grupo no encontrado")
		}
		if errors.Is(txErr, errAlumnoFueraDelGrupo) {
			return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "El alumno no pertenece a este grupo")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo asignar el jefe de grupo")
	}

	return helpers.JsonUpdated(c, "Jefe de grupo asignado", dto.NewGrupoResponse(&grupo))
}

var errAlumnoFueraDelGrupo = errors.New("el alumno no pertenece al grupo")
