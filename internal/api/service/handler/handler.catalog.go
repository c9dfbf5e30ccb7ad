// Package servicehdl - handler catalog dịch vụ.
package servicehdl

import (
	"fmt"

	basehdl "spa_booking/internal/api/base/handler"
	servicedto "spa_booking/internal/api/service/dto"
	models "spa_booking/internal/api/service/models"
	servicesvc "spa_booking/internal/api/service/service"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler xử lý các request về catalog dịch vụ
type CatalogHandler struct {
	*basehdl.BaseHandler[models.Service, servicedto.ServiceCreateInput, servicedto.ServiceUpdateInput]
	catalogService *servicesvc.CatalogService
}

// NewCatalogHandler tạo instance mới của CatalogHandler
func NewCatalogHandler() (*CatalogHandler, error) {
	catalogService, err := servicesvc.NewCatalogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Service, servicedto.ServiceCreateInput, servicedto.ServiceUpdateInput](catalogService)
	return &CatalogHandler{
		BaseHandler:    baseHandler,
		catalogService: catalogService,
	}, nil
}

// HandleGetDetailStats trả về thống kê chi tiết của một dịch vụ
func (h *CatalogHandler) HandleGetDetailStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		serviceID, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		stats, err := h.catalogService.DetailStats(c.Context(), serviceID)
		h.HandleResponse(c, stats, err)
		return nil
	})
}
