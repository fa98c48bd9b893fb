package http

import (
	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func getPrincipal(ctx *gin.Context) (*domain.Principal, bool) {
	value, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*domain.Principal)
	if !ok {
		return nil, false
	}
	return principal, true
}
