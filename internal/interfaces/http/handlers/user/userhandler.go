package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saigonbistro/internal/application/ticket/usecases"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/constants"
	"saigonbistro/internal/shared/utils"
)

type UserHandler struct {
	listAssignableUC usecases.ListAssignableUsersExecutor
}

func NewUserHandler(listAssignableUC usecases.ListAssignableUsersExecutor) *UserHandler {
	return &UserHandler{
		listAssignableUC: listAssignableUC,
	}
}

// ListAssignableUsers handles GET /users/assignable
func (h *UserHandler) ListAssignableUsers(c *gin.Context) {
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	result, err := h.listAssignableUC.Execute(c.Request.Context(), usecases.ListAssignableUsersQuery{
		ActorRole: role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
