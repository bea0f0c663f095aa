// AngelaMos | 2026
// entity.go

package class

import (
	"github.com/carterperez-dev/kixi-backend/internal/lifecycle"
)

// Class is keyed by its caller assigned code.
type Class struct {
	Code         string `db:"code"`
	Grade        string `db:"grade"`
	CourseID     int64  `db:"course_id"`
	SchoolYearID int64  `db:"school_year_id"`
	lifecycle.Timestamps
}

func (c *Class) Key() string {
	return c.Code
}
