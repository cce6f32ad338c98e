package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devsystem/carwash-erp/internal/domains/seals/application"
	"github.com/devsystem/carwash-erp/internal/domains/seals/domain"
	"github.com/devsystem/carwash-erp/internal/domains/seals/ports"
	apierrors "github.com/devsystem/carwash-erp/internal/shared/errors"
)

// SealAPI exposes the seal log endpoints.
type SealAPI struct {
	service *application.Service
}

func NewSealAPI(service *application.Service) *SealAPI {
	return &SealAPI{service: service}
}

func (api *SealAPI) Register(group *gin.RouterGroup) {
	group.GET("/seal-logs", api.listSealLogs)
	group.POST("/seal-logs", api.createSealLog)
	group.DELETE("/seal-logs/:id", api.deleteSealLog)
	group.DELETE("/seal-logs", api.deleteAllSealLogs)
}

type sealLogPayload struct {
	SealNumber   string     `json:"sealNumber"`
	VehiclePlate string     `json:"vehiclePlate"`
	Notes        string     `json:"notes"`
	CreatedAt    *time.Time `json:"createdAt"`
}

type sealLogView struct {
	ID           int64     `json:"id"`
	SealNumber   string    `json:"sealNumber"`
	VehiclePlate string    `json:"vehiclePlate"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (api *SealAPI) listSealLogs(c *gin.Context) {
	logs, err := api.service.List(c.Request.Context())
	if err != nil {
		respondSealError(c, err)
		return
	}
	views := make([]sealLogView, 0, len(logs))
	for _, log := range logs {
		views = append(views, toSealLogView(log))
	}
	c.JSON(http.StatusOK, views)
}

func (api *SealAPI) createSealLog(c *gin.Context) {
	var payload sealLogPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	log := &domain.SealLog{
		SealNumber:   payload.SealNumber,
		VehiclePlate: payload.VehiclePlate,
		Notes:        payload.Notes,
	}
	if payload.CreatedAt != nil {
		log.CreatedAt = *payload.CreatedAt
	}
	created, err := api.service.Create(c.Request.Context(), log)
	if err != nil {
		respondSealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSealLogView(created))
}

func (api *SealAPI) deleteSealLog(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("invalid seal log id"))
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondSealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *SealAPI) deleteAllSealLogs(c *gin.Context) {
	count, err := api.service.DeleteAll(c.Request.Context())
	if err != nil {
		respondSealError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

func toSealLogView(log *domain.SealLog) sealLogView {
	return sealLogView{
		ID:           log.ID,
		SealNumber:   log.SealNumber,
		VehiclePlate: log.VehiclePlate,
		Notes:        log.Notes,
		CreatedAt:    log.CreatedAt,
	}
}

func respondSealError(c *gin.Context, err error) {
	if errors.Is(err, ports.ErrNotFound) {
		apierrors.Respond(c, apierrors.NewNotFoundProblem("seal log", c.Param("id")))
		return
	}
	apierrors.RespondError(c, err)
}
