// internal/app/features/dashboard/attendance.go
package dashboard

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/classment/internal/app/system/authz"
	"github.com/dalemusser/classment/internal/app/system/navigation"
	"github.com/dalemusser/classment/internal/app/system/normalize"
	"github.com/dalemusser/classment/internal/app/system/notify"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	attendanceTitle   = "Attendance"
	attendanceOpening = "Opening attendance marking for this class..."
	attendanceFailed  = "Failed to open attendance marking"
)

func attendancePath(classID string) string {
	return "/dashboard/classes/" + url.PathEscape(classID) + "/attendance"
}

// MarkAttendance handles POST /dashboard/classes/{classID}/attendance.
//
// Attendance marking has no page yet. The action only raises a notice and
// sends the viewer back to the dashboard; nothing is written. An unusable
// class id raises the failure notice instead.
func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)
	classID := normalize.ID(chi.URLParam(r, "classID"))

	flash := h.Sessions.Flash(w, r)
	if classID == "" {
		h.Log.Warn("attendance: missing class id", zap.String("viewer_id", uid))
		flash.Notify(notify.Error(attendanceFailed))
	} else {
		flash.Notify(notify.Info(attendanceTitle, attendanceOpening))
		h.Log.Info("attendance marking requested",
			zap.String("viewer_id", uid),
			zap.String("class_id", classID))
	}

	dest := navigation.SafeBackURL(r, navigation.DashboardReturn)
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") != ""
}
