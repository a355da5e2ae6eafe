// file: internals/features/registro/controller/actividad_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helpers "horarios_backend/internals/helpers"
	"horarios_backend/internals/middlewares/auth"

	"horarios_backend/internals/features/registro/dto"
	"horarios_backend/internals/features/registro/model"
	"horarios_backend/internals/features/registro/service"
)

type ActividadController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Permisos  *service.Permisos
	Registros *service.Registros
}

func NewActividadController(db *gorm.DB, v *validator.Validate, permisos *service.Permisos, registros *service.Registros) *ActividadController {
	return &ActividadController{DB: db, Validate: v, Permisos: permisos, Registros: registros}
}

// Upsert registra (o sobreescribe) lo trabajado en una sesión.
func (ctl *ActividadController) Upsert(c *fiber.Ctx) error {
	actor, err := auth.ActorDeContexto(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Sesión inválida")
	}

	var req dto.UpsertActividadRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	horarioID, fecha, err := req.ParseClave()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	permitido, err := ctl.Permisos.AutorizarEscritura(c.UserContext(), actor, horarioID)
	if err != nil {
		return jsonErrorDeAutorizacion(c, err)
	}

	row, err := ctl.Registros.UpsertActividad(c.UserContext(), horarioID, fecha, req.Tema, req.Actividades, req.Tarea, permitido.RegistradoPorID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la actividad")
	}
	return helpers.JsonOK(c, "Actividad registrada", dto.NewActividadResponse(row))
}

func (ctl *ActividadController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	rango, err := helpers.RangoDeFechas(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.ActividadModel{})

	if raw := c.Query("horario_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "horario_id inválido")
		}
		db = db.Where("actividad_horario_id = ?", id)
	}

	var grupoID, maestroID *uuid.UUID
	if raw := c.Query("grupo_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "grupo_id inválido")
		}
		grupoID = &id
	}
	if raw := c.Query("maestro_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "maestro_id inválido")
		}
		maestroID = &id
	}
	db = filtrosPorHorario(db, "actividades.actividad_horario_id", grupoID, maestroID)
	db = rango.Aplicar(db, "actividad_fecha")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar las actividades")
	}

	var rows []model.ActividadModel
	if err := db.Order("actividad_fecha DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar las actividades")
	}

	out := make([]dto.ActividadResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewActividadResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}
