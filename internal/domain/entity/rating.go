package entity

// Rating grade bounds. Grades are integers within [GradeMin, GradeMax].
const (
	GradeMin = 1
	GradeMax = 5
)

// Rating is one user's numeric grade for one product. At most one active
// rating per (user, product) pair exists; retraction soft-deletes via
// IsActive rather than removing the row.
type Rating struct {
	ID        int64 `json:"id"`
	Grade     int   `json:"grade"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	IsActive  bool  `json:"is_active"`
}

// GradeInRange reports whether a grade is within the accepted bounds.
func GradeInRange(grade int) bool {
	return grade >= GradeMin && grade <= GradeMax
}
