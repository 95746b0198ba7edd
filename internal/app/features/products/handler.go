// internal/app/features/products/handler.go
package products

import (
	uierrors "github.com/oniumlabs/oniumadmin/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the product catalog screens (list, new, edit, delete).
//
// It is constructed once at startup in bootstrap, using the shared
// Mongo database handle and logger.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
	}
}
