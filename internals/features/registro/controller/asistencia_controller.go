// file: internals/features/registro/controller/asistencia_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helpers "horarios_backend/internals/helpers"
	"horarios_backend/internals/middlewares/auth"

	horariosvc "horarios_backend/internals/features/escuela/horarios/service"
	"horarios_backend/internals/features/registro/dto"
	"horarios_backend/internals/features/registro/model"
	"horarios_backend/internals/features/registro/service"
)

type AsistenciaController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Permisos  *service.Permisos
	Registros *service.Registros
}

func NewAsistenciaController(db *gorm.DB, v *validator.Validate, permisos *service.Permisos, registros *service.Registros) *AsistenciaController {
	return &AsistenciaController{DB: db, Validate: v, Permisos: permisos, Registros: registros}
}

// filtrosPorHorario aplica los filtros que viven en la tabla horarios
// (grupo, maestro). El JOIN se agrega una sola vez aunque vengan ambos:
// GORM no deduplica joins en crudo y Postgres rechaza la tabla repetida.
func filtrosPorHorario(db *gorm.DB, columnaHorario string, grupoID, maestroID *uuid.UUID) *gorm.DB {
	if grupoID == nil && maestroID == nil {
		return db
	}
	db = db.Joins("JOIN horarios ON horarios.horario_id = " + columnaHorario)
	if grupoID != nil {
		db = db.Where("horarios.horario_grupo_id = ?", *grupoID)
	}
	if maestroID != nil {
		db = db.Where("horarios.horario_maestro_id = ?", *maestroID)
	}
	return db
}

// jsonErrorDeAutorizacion traduce los errores del resolver a la
// taxonomía HTTP: horario inexistente 404, reglas de rol 403.
func jsonErrorDeAutorizacion(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, horariosvc.ErrHorarioNoEncontrado):
		return helpers.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
	case errors.Is(err, service.ErrNoEsJefeDeGrupo),
		errors.Is(err, service.ErrJefeDeOtroGrupo),
		errors.Is(err, service.ErrRolNoAutorizado):
		return helpers.JsonError(c, fiber.StatusForbidden, err.Error())
	default:
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo autorizar el registro")
	}
}

// Upsert registra (o sobreescribe) el pase de lista de una sesión.
func (ctl *AsistenciaController) Upsert(c *fiber.Ctx) error {
	actor, err := auth.ActorDeContexto(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Sesión inválida")
	}

	var req dto.UpsertAsistenciaRequest
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

	row, err := ctl.Registros.UpsertAsistencia(c.UserContext(), horarioID, fecha, req.Presente, req.Observaciones, permitido.RegistradoPorID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la asistencia")
	}
	return helpers.JsonOK(c, "Asistencia registrada", dto.NewAsistenciaResponse(row))
}

// List admite filtros por horario, grupo o maestro, más rango de fechas
// (?start_date=&end_date=).
func (ctl *AsistenciaController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	rango, err := helpers.RangoDeFechas(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.AsistenciaModel{})

	if raw := c.Query("horario_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "horario_id inválido")
		}
		db = db.Where("asistencia_horario_id = ?", id)
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
	db = filtrosPorHorario(db, "asistencias.asistencia_horario_id", grupoID, maestroID)
	db = rango.Aplicar(db, "asistencia_fecha")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar las asistencias")
	}

	var rows []model.AsistenciaModel
	if err := db.Order("asistencia_fecha DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo consultar las asistencias")
	}

	out := make([]dto.AsistenciaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewAsistenciaResponse(&rows[i]))
	}
	return helpers.JsonList(c, "", out, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}
