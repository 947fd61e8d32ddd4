package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// translateNotFound maps gorm's record-not-found error to the domain kind
func translateNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource)
	}
	return err
}
