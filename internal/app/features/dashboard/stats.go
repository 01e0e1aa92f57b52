// internal/app/features/dashboard/stats.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dalemusser/classment/internal/app/system/authz"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/app/system/normalize"
	"github.com/dalemusser/classment/internal/app/system/notify"
	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// statsResponse is the JSON body of GET /dashboard/stats.json.
//
// Seq echoes the client's ?seq= value. A client issuing several refreshes
// keeps only the response carrying its latest seq.
type statsResponse struct {
	Seq     uint64                     `json:"seq"`
	Role    models.Role                `json:"role"`
	Today   string                     `json:"today"`
	State   string                     `json:"state"`
	Admin   *dashstats.AdminStats      `json:"admin,omitempty"`
	Teacher *dashstats.TeacherSnapshot `json:"teacher,omitempty"`
	Notices []notify.Notice            `json:"notices"`
}

// ServeStatsJSON handles GET /dashboard/stats.json.
//
// The body is always 200 with a renderable record; a failed aggregation
// reports state "ready-with-error", a zero record and one notice.
func (h *Handler) ServeStatsJSON(w http.ResponseWriter, r *http.Request) {
	viewer, _ := authz.Viewer(r)

	resp := statsResponse{
		Seq:  parseSeq(normalize.QueryParam(query.Get(r, "seq"))),
		Role: viewer.Role,
	}

	switch viewer.Role {
	case models.RoleAdmin:
		p := h.adminPanel(r, viewer)
		resp.Today, resp.State, resp.Notices = p.Today, p.State, p.Notices
		resp.Admin = &p.Stats
	case models.RoleTeacher:
		p := h.teacherPanel(r, viewer)
		resp.Today, resp.State, resp.Notices = p.Today, p.State, p.Notices
		resp.Teacher = &p.Snapshot
	default:
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	if resp.Notices == nil {
		resp.Notices = []notify.Notice{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("dashboard stats: encode response", zap.Error(err))
	}
}

// parseSeq reads a client sequence number; anything unparseable is 0.
func parseSeq(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
