// AngelaMos | 2026
// service.go

package class

import (
	"context"

	"github.com/carterperez-dev/kixi-backend/internal/course"
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
	"github.com/carterperez-dev/kixi-backend/internal/schoolyear"
)

// CourseFinder is satisfied by *course.Service. Get sees active rows only;
// Lookup sees every state.
type CourseFinder interface {
	Get(ctx context.Context, id int64) (*course.Course, error)
	Lookup(ctx context.Context, id int64) (*course.Course, error)
}

type SchoolYearFinder interface {
	Get(ctx context.Context, id int64) (*schoolyear.SchoolYear, error)
	Lookup(ctx context.Context, id int64) (*schoolyear.SchoolYear, error)
}

type Service struct {
	engine  *lifecycle.Engine[*Class, string]
	courses CourseFinder
	years   SchoolYearFinder
}

func NewService(
	st Store,
	courses CourseFinder,
	years SchoolYearFinder,
	opts lifecycle.Options,
) *Service {
	return &Service{
		engine: lifecycle.New(lifecycle.Config[*Class, string]{
			Entity:     "class",
			Store:      st,
			NaturalKey: true,
		}, opts),
		courses: courses,
		years:   years,
	}
}

func (s *Service) List(ctx context.Context) ([]*Class, error) {
	return s.engine.ListActive(ctx)
}

func (s *Service) ListTrashed(ctx context.Context) ([]*Class, error) {
	return s.engine.ListTrashed(ctx)
}

func (s *Service) Get(ctx context.Context, code string) (*Class, error) {
	return s.engine.GetActive(ctx, code)
}

func (s *Service) Create(ctx context.Context, req CreateClassRequest) (*Class, error) {
	req.Normalize()

	if err := s.checkParents(ctx, req.CourseID, req.SchoolYearID); err != nil {
		return nil, err
	}

	return s.engine.Create(ctx, &Class{
		Code:         req.Code,
		Grade:        req.Grade,
		CourseID:     req.CourseID,
		SchoolYearID: req.SchoolYearID,
	})
}

func (s *Service) Update(
	ctx context.Context,
	code string,
	req UpdateClassRequest,
) (*Class, error) {
	req.Normalize()

	return s.engine.Update(ctx, code, func(c *Class) error {
		if c.CourseID != req.CourseID || c.SchoolYearID != req.SchoolYearID {
			if err := s.checkParents(ctx, req.CourseID, req.SchoolYearID); err != nil {
				return err
			}
		}
		c.Grade = req.Grade
		c.CourseID = req.CourseID
		c.SchoolYearID = req.SchoolYearID
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.engine.SoftDelete(ctx, code)
}

func (s *Service) Restore(ctx context.Context, code string) (*Class, error) {
	return s.engine.Restore(ctx, code)
}

func (s *Service) Purge(ctx context.Context, code string) error {
	return s.engine.Purge(ctx, code)
}

func (s *Service) Count(ctx context.Context, state lifecycle.State) (int, error) {
	return s.engine.Count(ctx, state)
}

func (s *Service) checkParents(ctx context.Context, courseID, yearID int64) error {
	if _, err := s.courses.Get(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.years.Get(ctx, yearID); err != nil {
		return err
	}
	return nil
}

// Project hydrates classes with their course and school year. Parents are
// looked up in any state; a missing parent becomes a placeholder carrying
// only its id.
func (s *Service) Project(ctx context.Context, classes []*Class) ([]ClassResponse, error) {
	courses := lifecycle.NewMemo(s.courses.Lookup)
	years := lifecycle.NewMemo(s.years.Lookup)

	out := make([]ClassResponse, 0, len(classes))
	for _, c := range classes {
		resp := ClassResponse{
			Code:       c.Code,
			Grade:      c.Grade,
			Course:     course.CourseResponse{ID: c.CourseID},
			SchoolYear: schoolyear.SchoolYearResponse{ID: c.SchoolYearID},
			CreatedAt:  c.CreatedAt,
			UpdatedAt:  c.UpdatedAt,
			DeletedAt:  c.DeletedAt,
		}

		crs, found, err := courses.Resolve(ctx, c.CourseID)
		if err != nil {
			return nil, err
		}
		if found {
			resp.Course = course.ToCourseResponse(crs)
		}

		yr, found, err := years.Resolve(ctx, c.SchoolYearID)
		if err != nil {
			return nil, err
		}
		if found {
			resp.SchoolYear = schoolyear.ToSchoolYearResponse(yr)
		}

		out = append(out, resp)
	}
	return out, nil
}

func (s *Service) ProjectOne(ctx context.Context, c *Class) (ClassResponse, error) {
	out, err := s.Project(ctx, []*Class{c})
	if err != nil {
		return ClassResponse{}, err
	}
	return out[0], nil
}
