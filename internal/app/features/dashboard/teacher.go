// internal/app/features/dashboard/teacher.go
package dashboard

import (
	"net/http"
	"time"

	"github.com/dalemusser/classment/internal/app/system/authz"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/app/system/notify"
	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"github.com/dalemusser/classment/internal/app/system/viewdata"
	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

const teacherLoadFailed = "Failed to load dashboard data"

type teacherPanel struct {
	State     string
	Today     string
	ZoneLabel string
	CSRFToken string
	Snapshot  dashstats.TeacherSnapshot
	Cards     []statCard
	Classes   []classRow
	Upcoming  []assignmentRow
	Notices   []notify.Notice
}

type classRow struct {
	ID            string
	Name          string
	GradeSection  string
	AttendanceURL string
}

type assignmentRow struct {
	Title    string
	Subject  string
	DueLabel string
	Points   int
}

type teacherData struct {
	viewdata.BaseVM

	Heading    string
	Subheading string
	Panel      teacherPanel

	QuickActions []quickAction
}

var teacherQuickActions = []quickAction{
	{Label: "Mark Attendance", Icon: "clipboard-check"},
	{Label: "Create Assignment", Icon: "plus"},
	{Label: "Message Parents", Icon: "message-square"},
	{Label: "View Calendar", Icon: "calendar"},
	{Label: "Student Progress", Icon: "users"},
}

func (h *Handler) ServeTeacher(w http.ResponseWriter, r *http.Request) {
	viewer, _ := authz.Viewer(r)
	panel := h.teacherPanel(r, viewer)

	data := teacherData{
		BaseVM:       viewdata.NewBaseVM(r, "Teacher Portal", "/"),
		Heading:      "Teacher Portal",
		Subheading:   "Manage your classes, assignments, and student communications",
		Panel:        panel,
		QuickActions: teacherQuickActions,
	}
	if h.Sessions != nil {
		data.BaseVM = data.BaseVM.WithNotices(h.Sessions.PopFlashes(w, r)...)
	}
	data.BaseVM = data.BaseVM.WithNotices(panel.Notices...)

	h.Log.Debug("teacher dashboard served",
		zap.String("viewer_id", viewer.ID),
		zap.String("state", panel.State),
		zap.Int("classes", len(panel.Classes)))

	h.render(w, r, "dashboard_teacher", data)
}

// teacherPanel runs one teacher aggregation. A failure yields an empty
// snapshot and exactly one error notice.
func (h *Handler) teacherPanel(r *http.Request, viewer dashstats.Viewer) teacherPanel {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Dashboard(), h.Log, "teacher dashboard")
	defer cancel()

	var sink notify.Collector
	state := stateReady

	snap, err := h.Stats.Teacher(ctx, viewer)
	if err != nil {
		snap = dashstats.EmptyTeacherSnapshot()
		state = stateReadyWithError
		sink.Notify(notify.Error(teacherLoadFailed))
	}

	return teacherPanel{
		State:     state,
		Today:     h.Stats.Today(),
		ZoneLabel: h.zoneLabel(),
		CSRFToken: csrf.Token(r),
		Snapshot:  snap,
		Cards:     teacherCards(snap.Stats),
		Classes:   classRows(snap.Classes),
		Upcoming:  assignmentRows(snap.RecentAssignments),
		Notices:   sink.Notices(),
	}
}

func teacherCards(s dashstats.TeacherStats) []statCard {
	return []statCard{
		{Title: "My Classes", Value: s.MyClasses, Icon: "book-open", Color: "text-primary", BgColor: "bg-primary/10"},
		{Title: "My Students", Value: s.MyStudents, Icon: "users", Color: "text-accent", BgColor: "bg-accent/10"},
		{Title: "Today's Attendance", Value: s.TodayAttendance, Icon: "clipboard-check", Color: "text-accent", BgColor: "bg-accent/10"},
		{Title: "Active Assignments", Value: s.ActiveAssignments, Icon: "calendar", Color: "text-warning", BgColor: "bg-warning/10"},
		{Title: "Unread Messages", Value: s.UnreadMessages, Icon: "message-square", Color: "text-destructive", BgColor: "bg-destructive/10"},
		{Title: "Pending Grading", Value: s.PendingGrading, Icon: "clipboard-check", Color: "text-warning", BgColor: "bg-warning/10"},
	}
}

func classRows(in []dashstats.ClassSummary) []classRow {
	out := make([]classRow, 0, len(in))
	for _, c := range in {
		out = append(out, classRow{
			ID:            c.ID,
			Name:          c.Name,
			GradeSection:  c.GradeLevel + " - " + c.Section,
			AttendanceURL: attendancePath(c.ID),
		})
	}
	return out
}

func assignmentRows(in []dashstats.AssignmentSummary) []assignmentRow {
	out := make([]assignmentRow, 0, len(in))
	for _, a := range in {
		out = append(out, assignmentRow{
			Title:    a.Title,
			Subject:  a.Subject,
			DueLabel: dueLabel(a.DueDate),
			Points:   a.TotalMarks,
		})
	}
	return out
}

// dueLabel renders a stored date as M/D/YYYY. Unparseable values are shown as stored.
func dueLabel(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("1/2/2006")
}
