package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devsystem/carwash-erp/internal/domains/washes/application"
	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
	apierrors "github.com/devsystem/carwash-erp/internal/shared/errors"
)

// WashAPI wires HTTP transport with the accounting engine and workflows.
type WashAPI struct {
	service   ports.Service
	workflows ports.WorkflowOrchestrator
}

// NewWashAPI creates a WashAPI backed by the provided service. workflows may
// be nil, in which case creation runs inline through the service.
func NewWashAPI(service ports.Service, workflows ports.WorkflowOrchestrator) WashAPI {
	return WashAPI{service: service, workflows: workflows}
}

// Register mounts the washing service routes on the given group.
func (api WashAPI) Register(group *gin.RouterGroup) {
	group.GET("/washing-services", api.ListServices)
	group.POST("/washing-services", api.CreateService)
	group.DELETE("/washing-services/:id", api.DeleteService)
	group.DELETE("/washing-services", api.DeleteAllServices)
}

// servicePayload mirrors the wire shape of a wash request: the vehicle type
// arrives as a nested reference, only its id matters.
type servicePayload struct {
	VehicleType *struct {
		ID int64 `json:"id"`
	} `json:"vehicleType"`
	WashingMinutes int32 `json:"washingMinutes"`
}

type serviceView struct {
	ID               int64   `json:"id"`
	VehicleTypeID    int64   `json:"vehicleTypeId"`
	WashingMinutes   int32   `json:"washingMinutes"`
	DisinfectantUsed float64 `json:"disinfectantUsed"`
	DegreaserUsed    float64 `json:"degreaserUsed"`
	BleachUsed       float64 `json:"bleachUsed"`
	WaterUsed        float64 `json:"waterUsed"`
}

// Get /api/washing-services
func (api WashAPI) ListServices(c *gin.Context) {
	services, err := api.service.List(c.Request.Context())
	if err != nil {
		respondWashError(c, err)
		return
	}
	views := make([]serviceView, 0, len(services))
	for _, service := range services {
		views = append(views, toView(service))
	}
	c.JSON(http.StatusOK, views)
}

// Post /api/washing-services
// Run the accounting engine and persist the annotated wash.
func (api WashAPI) CreateService(c *gin.Context) {
	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	input := ports.CreateInput{WashingMinutes: payload.WashingMinutes}
	if payload.VehicleType != nil {
		input.VehicleTypeID = payload.VehicleType.ID
	}
	saved, err := api.createService(c.Request.Context(), input)
	if err != nil {
		respondWashError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(saved))
}

func (api WashAPI) createService(ctx context.Context, input ports.CreateInput) (*domain.WashingService, error) {
	if api.workflows != nil {
		return api.workflows.CreateService(ctx, input)
	}
	return api.service.Create(ctx, input)
}

// Delete /api/washing-services/:id
// Reverse the wash's consumption, then remove the record.
func (api WashAPI) DeleteService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail("invalid washing service id"))
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondWashError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete /api/washing-services
func (api WashAPI) DeleteAllServices(c *gin.Context) {
	if _, err := api.service.DeleteAll(c.Request.Context()); err != nil {
		respondWashError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func respondWashError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, ports.ErrNotFound):
		apierrors.Respond(c, apierrors.NewNotFoundProblem("washing service", c.Param("id")))
	default:
		apierrors.RespondError(c, err)
	}
}

func toView(service *domain.WashingService) serviceView {
	return serviceView{
		ID:               service.ID,
		VehicleTypeID:    service.VehicleTypeID,
		WashingMinutes:   service.WashingMinutes,
		DisinfectantUsed: service.DisinfectantUsedMl,
		DegreaserUsed:    service.DegreaserUsedMl,
		BleachUsed:       service.BleachUsedMl,
		WaterUsed:        service.WaterUsedL,
	}
}
