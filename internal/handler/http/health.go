package http

import (
	"net/http"
	"time"

	"github.com/ats-hr/payslip-backend-go/internal/handler/http/response"
	"github.com/ats-hr/payslip-backend-go/internal/pkg/database"
)

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db        *database.DB
	startedAt time.Time
}

func NewHealthHandler(db *database.DB) HealthHandler {
	return &healthHandlerImpl{db: db, startedAt: time.Now()}
}

type healthBody struct {
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	DBStatus      string  `json:"dbStatus"`
	UptimeSeconds float64 `json:"uptime"`
	TotalConns    int32   `json:"totalConns"`
	IdleConns     int32   `json:"idleConns"`
}

func (h *healthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	dbStatus := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		status = "unhealthy"
		dbStatus = "disconnected"
	}

	stat := h.db.Stat()
	response.OK(w, healthBody{
		Status:        status,
		Timestamp:     time.Now().Format(time.RFC3339),
		DBStatus:      dbStatus,
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
	})
}
