package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidID       = errors.New("invalid id")
)

// IsNotFound reports whether err is a missing-document failure, either one of
// the package sentinels or the driver's own no-document error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, mongo.ErrNoDocuments)
}
