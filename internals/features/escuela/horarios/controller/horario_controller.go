// file: internals/features/escuela/horarios/controller/horario_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helpers "horarios_backend/internals/helpers"

	"horarios_backend/internals/features/escuela/horarios/dto"
	"horarios_backend/internals/features/escuela/horarios/model"
)

type HorarioController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHorarioController(db *gorm.DB, v *validator.Validate) *HorarioController {
	return &HorarioController{DB: db, Validate: v}
}

// List admite filtros por grupo, maestro, salón y día de la semana.
func (ctl *HorarioController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.HorarioModel{})
	if raw := c.Query("grupo_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "grupo_id inválido")
		}
		db = db.Where("horario_grupo_id = ?", id)
	}
	if raw := c.Query("maestro_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "maestro_id inválido")
		}
		db = db.Where("horario_maestro_id = ?", id)
	}
	if raw := c.Query("salon_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "salon_id inválido")
		}
		db = db.Where("horario_salon_id = ?", id)
	}
	if dia := c.QueryInt("dia", 0); dia >= 1 && dia <= 7 {
		db = db.Where("horario_dia_semana = ?", dia)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar los horarios")
	}

	var rows []model.HorarioModel
	if err := db.Order("horario_dia_semana ASC, horario_hora_inicio ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar los horarios")
	}

	out := make([]dto.HorarioResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewHorarioResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *HorarioController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var horario model.HorarioModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("horario_id = ?", id).
		First(&horario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el horario")
	}
	return helpers.JsonOK(c, "", dto.NewHorarioResponse(&horario))
}

func (ctl *HorarioController) Create(c *fiber.Ctx) error {
	var req dto.CreateHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var horario model.HorarioModel
	if err := req.ApplyToModel(&horario); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// los cuatro catálogos referenciados deben existir
	if msg := ctl.verificarReferencias(c, &horario); msg != "" {
		return helpers.JsonError(c, fiber.StatusNotFound, msg)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&horario).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el horario")
	}
	return helpers.JsonCreated(c, "Horario creado", dto.NewHorarioResponse(&horario))
}

func (ctl *HorarioController) verificarReferencias(c *fiber.Ctx, h *model.HorarioModel) string {
	type ref struct {
		tabla   string
		prefijo string
		id      uuid.UUID
		msg     string
	}
	refs := []ref{
		{"grupos", "grupo", h.HorarioGrupoID, "Grupo no encontrado"},
		{"materias", "materia", h.HorarioMateriaID, "Materia no encontrada"},
		{"maestros", "maestro", h.HorarioMaestroID, "Maestro no encontrado"},
		{"salones", "salon", h.HorarioSalonID, "Salón no encontrado"},
	}
	for _, r := range refs {
		var n int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Table(r.tabla).
			Where(r.prefijo+"_id = ? AND "+r.prefijo+"_deleted_at IS NULL", r.id).
			Count(&n).Error; err != nil || n == 0 {
			return r.msg
		}
	}
	return ""
}

func (ctl *HorarioController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var horario model.HorarioModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("horario_id = ?", id).
		First(&horario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar el horario")
	}

	updates, err := req.BuildUpdateMap()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No hay campos para actualizar")
	}
	updates["horario_updated_at"] = time.Now()

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&horario).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el horario")
	}
	return helpers.JsonUpdated(c, "Horario actualizado", dto.NewHorarioResponse(&horario))
}

func (ctl *HorarioController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Where("horario_id = ?", id).
		Delete(&model.HorarioModel{})
	if tx.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el horario")
	}
	if tx.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
	}
	return helpers.JsonDeleted(c, "Horario eliminado", fiber.Map{"deleted": true})
}
