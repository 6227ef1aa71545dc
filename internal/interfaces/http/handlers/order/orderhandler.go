package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saigonbistro/internal/application/order/usecases"
	"saigonbistro/internal/shared/constants"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/utils"
)

type OrderHandler struct {
	listOrdersUC *usecases.ListOrdersUseCase
}

func NewOrderHandler(listOrdersUC *usecases.ListOrdersUseCase) *OrderHandler {
	return &OrderHandler{
		listOrdersUC: listOrdersUC,
	}
}

// ListMyOrders handles GET /orders/mine
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	id, ok := userID.(uint)
	if !exists || !ok || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.listOrdersUC.Execute(c.Request.Context(), usecases.ListOrdersQuery{
		CustomerID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
