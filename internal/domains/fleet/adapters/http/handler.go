package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devsystem/carwash-erp/internal/domains/fleet/application"
	"github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
	apierrors "github.com/devsystem/carwash-erp/internal/shared/errors"
)

// FleetAPI exposes the read-only vehicle type catalog.
type FleetAPI struct {
	service *application.Service
}

func NewFleetAPI(service *application.Service) FleetAPI {
	return FleetAPI{service: service}
}

// Register mounts the fleet routes on the given group.
func (api FleetAPI) Register(group *gin.RouterGroup) {
	group.GET("/vehicle-types", api.ListVehicleTypes)
}

type vehicleTypeView struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
}

// Get /api/vehicle-types
func (api FleetAPI) ListVehicleTypes(c *gin.Context) {
	types, err := api.service.ListVehicleTypes(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	views := make([]vehicleTypeView, 0, len(types))
	for _, vt := range types {
		views = append(views, toView(vt))
	}
	c.JSON(http.StatusOK, views)
}

func toView(vt *domain.VehicleType) vehicleTypeView {
	return vehicleTypeView{
		ID:          vt.ID,
		Name:        vt.Name,
		Description: vt.Description,
		Aliases:     vt.Aliases,
	}
}
