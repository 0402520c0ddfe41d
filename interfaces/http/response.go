package http

import (
	"errors"
	"net/http"
	"strconv"

	"nexus-tube/domain/dto"
	"nexus-tube/domain/model"
	"nexus-tube/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: data})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.Res{ResponseCode: "201", ResponseMessage: "Created", Data: data})
}

func badRequest(c *gin.Context, err error) {
	logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
	c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
}

// fail maps a store or collaborator error to its status code
func fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.GetLogger().WithField("error", err).Error("Request failed")
	}
	c.JSON(status, dto.Res{ResponseCode: strconv.Itoa(status), ResponseMessage: err.Error()})
}

// statusOf checks conflicts before validation; duplicate signups carry both
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrGenerationInProgress):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrAssistUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
