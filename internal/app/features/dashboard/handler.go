// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/oniumlabs/oniumadmin/internal/app/features/errors"
	orderstore "github.com/oniumlabs/oniumadmin/internal/app/store/orders"
	productstore "github.com/oniumlabs/oniumadmin/internal/app/store/products"
	reviewstore "github.com/oniumlabs/oniumadmin/internal/app/store/reviews"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/derive"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	// LowStockThreshold is the configured restock cutoff
	// (low_stock_threshold app key).
	LowStockThreshold int
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, lowStockThreshold int, logger *zap.Logger) *Handler {
	if lowStockThreshold < 1 {
		lowStockThreshold = derive.LowStockThreshold
	}
	return &Handler{
		DB:                db,
		Log:               logger,
		ErrLog:            errLog,
		LowStockThreshold: lowStockThreshold,
	}
}

type dashboardData struct {
	viewdata.BaseVM
	Stats             derive.Stats
	LowStockThreshold int
}

// ServeDashboard handles GET /dashboard. All figures are computed from the
// full order history on each request; nothing is cached or pre-aggregated.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	orders := orderstore.New(h.DB)

	allOrders, err := orders.AllAscending(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load orders failed", err, "A database error occurred.", "/")
		return
	}

	allItems, err := orders.AllItems(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load order items failed", err, "A database error occurred.", "/")
		return
	}

	products, err := productstore.New(h.DB).Find(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load products failed", err, "A database error occurred.", "/")
		return
	}

	unapproved, err := reviewstore.New(h.DB).CountUnapproved(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count unapproved reviews failed", err, "A database error occurred.", "/")
		return
	}

	stats := derive.BuildStats(allOrders, products, allItems, unapproved, h.LowStockThreshold)

	templates.Render(w, r, "dashboard", dashboardData{
		BaseVM:            viewdata.NewBaseVM(r, "Dashboard", "/"),
		Stats:             stats,
		LowStockThreshold: h.LowStockThreshold,
	})
}
