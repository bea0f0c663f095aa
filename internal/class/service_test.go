// AngelaMos | 2026
// service_test.go

package class

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/course"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/schoolyear"
	"github.com/carterperez-dev/kixi-backend/internal/store"
)

type fixture struct {
	svc     *Service
	courses *course.Service
	years   *schoolyear.Service
	course  *course.Course
	year    *schoolyear.SchoolYear
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		courses: course.NewService(store.Memory[*course.Course, int64](course.Spec), lifecycle.Options{}),
		years: schoolyear.NewService(
			store.Memory[*schoolyear.SchoolYear, int64](schoolyear.Spec), lifecycle.Options{}),
	}
	f.svc = NewService(store.Memory[*Class, string](Spec), f.courses, f.years, lifecycle.Options{})

	var err error
	f.course, err = f.courses.Create(ctx, course.CourseRequest{Code: "CS101", Name: "Intro to CS"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	f.year, err = f.years.Create(ctx, schoolyear.SchoolYearRequest{StartYear: 2025, EndYear: 2026})
	if err != nil {
		t.Fatalf("create school year: %v", err)
	}
	return f
}

func (f *fixture) request(code string) CreateClassRequest {
	return CreateClassRequest{
		Code:         code,
		Grade:        "10",
		CourseID:     f.course.ID,
		SchoolYearID: f.year.ID,
	}
}

func TestCodeIsReservedWhileTrashed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.svc.Create(ctx, f.request("10A")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.svc.Create(ctx, f.request("10A")); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("duplicate Create() error = %v, want conflict", err)
	}

	if err := f.svc.Delete(ctx, "10A"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := f.svc.Create(ctx, f.request("10A")); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("Create() over trashed code error = %v, want conflict", err)
	}

	if _, err := f.svc.Restore(ctx, "10A"); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
}

func TestCreateRequiresActiveParents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.request("10B")
	req.CourseID = 42
	if _, err := f.svc.Create(ctx, req); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("missing course error = %v, want not found", err)
	}

	if err := f.years.Delete(ctx, f.year.ID); err != nil {
		t.Fatalf("delete year: %v", err)
	}
	if _, err := f.svc.Create(ctx, f.request("10B")); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("trashed year error = %v, want not found", err)
	}
}

func TestUpdateKeepsCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.svc.Create(ctx, f.request("10C")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	c, err := f.svc.Update(ctx, "10C", UpdateClassRequest{
		Grade:        " 11 ",
		CourseID:     f.course.ID,
		SchoolYearID: f.year.ID,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if c.Code != "10C" || c.Grade != "11" {
		t.Errorf("class = %+v", c)
	}

	_, err = f.svc.Update(ctx, "10C", UpdateClassRequest{
		Grade:        "11",
		CourseID:     999,
		SchoolYearID: f.year.ID,
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Update() to missing course error = %v, want not found", err)
	}
}

func TestProjectHydratesParents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, err := f.svc.Create(ctx, f.request("10D"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.courses.Delete(ctx, f.course.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}

	resp, err := f.svc.ProjectOne(ctx, c)
	if err != nil {
		t.Fatalf("ProjectOne() error = %v", err)
	}
	if resp.Course.Code != "CS101" {
		t.Errorf("trashed course not hydrated: %+v", resp.Course)
	}
	if resp.SchoolYear.StartYear != 2025 {
		t.Errorf("school year not hydrated: %+v", resp.SchoolYear)
	}

	if err := f.courses.Purge(ctx, f.course.ID); err != nil {
		t.Fatalf("purge course: %v", err)
	}

	resp, err = f.svc.ProjectOne(ctx, c)
	if err != nil {
		t.Fatalf("ProjectOne() after purge error = %v", err)
	}
	if resp.Course.ID != f.course.ID || resp.Course.Code != "" {
		t.Errorf("placeholder = %+v, want id only", resp.Course)
	}
}
