package entity

import "time"

// Review is a textual comment linked 1:1 to a Rating. UserID and ProductID
// are denormalized copies of the linked rating's columns; the review
// orchestrator is the only writer of Review/Rating pairs, which is what keeps
// them in agreement.
type Review struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	RatingID    int64     `json:"rating_id"`
	Comment     string    `json:"comment"`
	CommentDate time.Time `json:"comment_date"`
	IsActive    bool      `json:"is_active"`
}
