package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger checks that the configured backend answers.
type Pinger func(ctx context.Context) error

// MongoPinger pings the primary of a MongoDB deployment.
func MongoPinger(c *mongo.Client) Pinger {
	return func(ctx context.Context) error {
		return c.Ping(ctx, readpref.Primary())
	}
}

// PostgresPinger acquires a pooled connection and pings it.
func PostgresPinger(p *pgxpool.Pool) Pinger {
	return func(ctx context.Context) error {
		return p.Ping(ctx)
	}
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Backend string
	Ping    Pinger
	Log     *zap.Logger
}

// NewHandler constructs a health Handler for the named backend.
func NewHandler(backend string, ping Pinger, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Backend: backend,
		Ping:    ping,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "backend":"mongo", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "backend":"mongo", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Backend:  h.Backend,
		Database: "connected",
	}

	if err := h.Ping(ctx); err != nil {
		h.Log.Error("health-check: ping failed", zap.String("backend", h.Backend), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
	}

	_ = json.NewEncoder(w).Encode(resp)
}
