// Package dashstats builds the statistics records shown on the role
// dashboards. Each aggregation issues a fixed batch of independent
// read-only queries against a Source and folds the answers into a flat
// record. A failed query fails the whole aggregation; partial records are
// never returned.
package dashstats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultAssignmentLimit is how many upcoming assignments the teacher
// dashboard lists.
const DefaultAssignmentLimit = 3

// Aggregator produces statistics records from a Source.
type Aggregator struct {
	src             Source
	log             *zap.Logger
	now             func() time.Time
	loc             *time.Location
	assignmentLimit int
	scopePending    bool
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used for aggregation failures.
func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLocation sets the zone in which "today" is computed. Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithAssignmentLimit sets how many upcoming assignments a teacher snapshot lists.
func WithAssignmentLimit(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.assignmentLimit = n
		}
	}
}

// WithScopedPendingGrading limits the teacher's pending-grading count to
// submissions for that teacher's own assignments. Off by default, which
// counts every ungraded submission in the school.
func WithScopedPendingGrading(on bool) Option {
	return func(a *Aggregator) {
		a.scopePending = on
	}
}

// New returns an Aggregator reading from src.
func New(src Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		src:             src,
		log:             zap.NewNop(),
		now:             time.Now,
		loc:             time.UTC,
		assignmentLimit: DefaultAssignmentLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Today returns the current calendar date in the aggregator's zone.
func (a *Aggregator) Today() string {
	return a.now().In(a.loc).Format(models.DateLayout)
}

// Location returns the zone in which "today" is computed.
func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// Admin builds the school-wide statistics record for an admin viewer.
// On failure it returns a zero record and an error wrapping ErrAggregationFailed.
func (a *Aggregator) Admin(ctx context.Context, v Viewer) (AdminStats, error) {
	if v.ID == "" {
		return AdminStats{}, ErrNoViewer
	}

	today := a.Today()
	var (
		roles                                           []models.Role
		students, classes, present, assignments, unread int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		roles, err = a.src.ActiveProfileRoles(gctx)
		return queryErr("profiles", err)
	})
	g.Go(func() (err error) {
		students, err = a.src.CountActiveStudents(gctx)
		return queryErr("students", err)
	})
	g.Go(func() (err error) {
		classes, err = a.src.CountActiveClasses(gctx)
		return queryErr("classes", err)
	})
	g.Go(func() (err error) {
		present, err = a.src.CountPresentAttendance(gctx, today)
		return queryErr("attendance", err)
	})
	g.Go(func() (err error) {
		assignments, err = a.src.CountAssignmentsDueFrom(gctx, today)
		return queryErr("assignments", err)
	})
	g.Go(func() (err error) {
		unread, err = a.src.CountUnreadMessages(gctx, v.ID)
		return queryErr("messages", err)
	})

	if err := g.Wait(); err != nil {
		return AdminStats{}, a.fail(v, err)
	}

	rc := CountRoles(roles)
	return AdminStats{
		TotalStudents:     nonNeg(students),
		TotalTeachers:     rc.Teachers,
		TotalParents:      rc.Parents,
		TotalStaff:        rc.Staff,
		TodayAttendance:   nonNeg(present),
		TotalClasses:      nonNeg(classes),
		ActiveAssignments: nonNeg(assignments),
		UnreadMessages:    nonNeg(unread),
	}, nil
}

// Teacher builds the statistics record, owned classes and upcoming
// assignments for a teacher viewer. On failure it returns
// EmptyTeacherSnapshot and an error wrapping ErrAggregationFailed.
func (a *Aggregator) Teacher(ctx context.Context, v Viewer) (TeacherSnapshot, error) {
	if v.ID == "" {
		return EmptyTeacherSnapshot(), ErrNoViewer
	}

	today := a.Today()
	var (
		classes                        []models.Class
		upcoming                       []models.Assignment
		students, attendance, dueCount int64
		unread, pending                int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		classes, err = a.src.TeacherClasses(gctx, v.ID)
		if err != nil {
			return queryErr("classes", err)
		}
		if len(classes) == 0 {
			return nil
		}
		ids := make([]string, 0, len(classes))
		for _, c := range classes {
			ids = append(ids, c.ID)
		}
		students, err = a.src.CountStudentsInClasses(gctx, ids)
		return queryErr("students", err)
	})
	g.Go(func() (err error) {
		attendance, err = a.src.CountTeacherAttendance(gctx, v.ID, today)
		return queryErr("attendance", err)
	})
	g.Go(func() (err error) {
		upcoming, dueCount, err = a.src.TeacherAssignmentsDueFrom(gctx, v.ID, today, a.assignmentLimit)
		return queryErr("assignments", err)
	})
	g.Go(func() (err error) {
		unread, err = a.src.CountUnreadMessages(gctx, v.ID)
		return queryErr("messages", err)
	})
	g.Go(func() (err error) {
		scope := ""
		if a.scopePending {
			scope = v.ID
		}
		pending, err = a.src.CountPendingSubmissions(gctx, scope)
		return queryErr("assignment_submissions", err)
	})

	if err := g.Wait(); err != nil {
		return EmptyTeacherSnapshot(), a.fail(v, err)
	}

	snap := EmptyTeacherSnapshot()
	for _, c := range classes {
		snap.Classes = append(snap.Classes, ClassSummary{
			ID:         c.ID,
			Name:       c.ClassName,
			GradeLevel: c.GradeLevel,
			Section:    c.Section,
		})
	}
	snap.RecentAssignments = upcomingSummaries(upcoming, today, a.assignmentLimit)
	snap.Stats = TeacherStats{
		MyClasses:         int64(len(classes)),
		MyStudents:        nonNeg(students),
		TodayAttendance:   nonNeg(attendance),
		ActiveAssignments: nonNeg(dueCount),
		UnreadMessages:    nonNeg(unread),
		PendingGrading:    nonNeg(pending),
	}
	return snap, nil
}

func (a *Aggregator) fail(v Viewer, err error) error {
	a.log.Error("dashboard aggregation failed",
		zap.String("aggregation_id", uuid.NewString()),
		zap.String("viewer_id", v.ID),
		zap.String("role", string(v.Role)),
		zap.Error(err))
	return fmt.Errorf("%w: %w", ErrAggregationFailed, err)
}

// upcomingSummaries keeps assignments due on or after today, earliest
// first, at most limit of them.
func upcomingSummaries(in []models.Assignment, today string, limit int) []AssignmentSummary {
	out := make([]AssignmentSummary, 0, len(in))
	for _, as := range in {
		if as.DueDate < today {
			continue
		}
		out = append(out, AssignmentSummary{
			ID:         as.ID,
			Title:      as.Title,
			Subject:    as.Subject,
			DueDate:    as.DueDate,
			TotalMarks: as.TotalMarks,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func queryErr(collection string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("query %s: %w", collection, err)
}

func nonNeg(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
