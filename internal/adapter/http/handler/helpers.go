package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"marketplace-ledger/internal/adapter/http/middleware"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"
	"marketplace-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// pathUUID parses a path parameter and writes a validation error when it is
// not a UUID.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated caller or writes AUTH_003.
func actor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// bindError maps a binding failure to an AppError. Money and confirmation
// code fields keep the codes the services use for them.
func bindError(err error) error {
	if middleware.IsBodyTooLarge(err) {
		return apperror.New(apperror.KindValidation, "VAL_005", "Request body too large", http.StatusRequestEntityTooLarge)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation("malformed request body")
	}
	fe := verrs[0]
	switch {
	case fe.Tag() == "money":
		return apperror.ErrInvalidAmount()
	case fe.StructField() == "Code" && fe.Tag() != "required":
		return apperror.ErrInvalidConfirmationCode()
	}
	return apperror.Validation(fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// HealthCheck handles GET /health and pings every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus, len(checkers))
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
