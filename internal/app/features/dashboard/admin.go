// internal/app/features/dashboard/admin.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/classment/internal/app/system/authz"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/app/system/notify"
	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"github.com/dalemusser/classment/internal/app/system/viewdata"
	"go.uber.org/zap"
)

const adminLoadFailed = "Failed to load dashboard statistics"

type adminPanel struct {
	State     string
	Today     string
	ZoneLabel string
	Stats     dashstats.AdminStats
	Cards     []statCard
	Notices   []notify.Notice
}

type adminData struct {
	viewdata.BaseVM

	Heading    string
	Subheading string
	Panel      adminPanel

	QuickActions []quickAction
	Activity     []activityItem
	Events       []eventItem
}

type activityItem struct {
	Badge string
	Text  string
}

type eventItem struct {
	Title string
	When  string
}

// The activity and events panels are illustrative; nothing feeds them yet.
var (
	adminActivity = []activityItem{
		{Badge: "New", Text: "5 new parent registrations"},
		{Badge: "Update", Text: "Attendance marked for Grade 5A"},
		{Badge: "Alert", Text: "3 assignments due tomorrow"},
	}
	adminEvents = []eventItem{
		{Title: "Parent-Teacher Meeting", When: "Tomorrow, 2:00 PM"},
		{Title: "Annual Sports Day", When: "Next Friday"},
		{Title: "Mid-term Exams", When: "Next Month"},
	}
	adminQuickActions = []quickAction{
		{Label: "User Management", Icon: "users"},
		{Label: "Manage Students", Icon: "graduation-cap"},
		{Label: "Manage Classes", Icon: "book-open"},
	}
)

func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	viewer, _ := authz.Viewer(r)
	panel := h.adminPanel(r, viewer)

	data := adminData{
		BaseVM:       viewdata.NewBaseVM(r, "Admin Dashboard", "/"),
		Heading:      "Admin Dashboard",
		Subheading:   "Manage your school operations and monitor key metrics",
		Panel:        panel,
		QuickActions: adminQuickActions,
		Activity:     adminActivity,
		Events:       adminEvents,
	}
	if h.Sessions != nil {
		data.BaseVM = data.BaseVM.WithNotices(h.Sessions.PopFlashes(w, r)...)
	}
	data.BaseVM = data.BaseVM.WithNotices(panel.Notices...)

	h.Log.Debug("admin dashboard served",
		zap.String("viewer_id", viewer.ID),
		zap.String("state", panel.State))

	h.render(w, r, "dashboard_admin", data)
}

// adminPanel runs one admin aggregation. A failure yields a zero record
// and exactly one error notice.
func (h *Handler) adminPanel(r *http.Request, viewer dashstats.Viewer) adminPanel {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Dashboard(), h.Log, "admin dashboard")
	defer cancel()

	var sink notify.Collector
	state := stateReady

	stats, err := h.Stats.Admin(ctx, viewer)
	if err != nil {
		stats = dashstats.AdminStats{}
		state = stateReadyWithError
		sink.Notify(notify.Error(adminLoadFailed))
	}

	return adminPanel{
		State:     state,
		Today:     h.Stats.Today(),
		ZoneLabel: h.zoneLabel(),
		Stats:     stats,
		Cards:     adminCards(stats),
		Notices:   sink.Notices(),
	}
}

func adminCards(s dashstats.AdminStats) []statCard {
	const total = "total active"
	return []statCard{
		{Title: "Total Students", Value: s.TotalStudents, Subtitle: total, Icon: "graduation-cap", Color: "text-primary", BgColor: "bg-primary/10"},
		{Title: "Teachers", Value: s.TotalTeachers, Subtitle: total, Icon: "users", Color: "text-accent", BgColor: "bg-accent/10"},
		{Title: "Parents", Value: s.TotalParents, Subtitle: total, Icon: "users", Color: "text-secondary", BgColor: "bg-secondary/10"},
		{Title: "Staff Members", Value: s.TotalStaff, Subtitle: total, Icon: "user-check", Color: "text-muted-foreground", BgColor: "bg-muted/10"},
		{Title: "Today's Attendance", Value: s.TodayAttendance, Subtitle: "students present today", Icon: "user-check", Color: "text-accent", BgColor: "bg-accent/10"},
		{Title: "Active Classes", Value: s.TotalClasses, Subtitle: total, Icon: "book-open", Color: "text-primary", BgColor: "bg-primary/10"},
		{Title: "Active Assignments", Value: s.ActiveAssignments, Subtitle: total, Icon: "calendar", Color: "text-warning", BgColor: "bg-warning/10"},
		{Title: "Unread Messages", Value: s.UnreadMessages, Subtitle: total, Icon: "message-square", Color: "text-destructive", BgColor: "bg-destructive/10"},
	}
}
