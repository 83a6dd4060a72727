package handler

import (
	"errors"

	"gorm.io/gorm"

	"go-gin-blog/internal/service"
	"go-gin-blog/internal/transport/http/router"
)

// mapServiceErr service 层错误 → 带码错误，未知错误原样透出走 500
func mapServiceErr(err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return router.BadRequest(ve.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return router.BadRequest(err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return router.Unauthorized(err.Error())
	case errors.Is(err, service.ErrMissingUser):
		return router.Unauthorized(err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return router.NotFound(err.Error())
	default:
		return err
	}
}
