package model

import "time"

// RatingModel mirrors the 'ratings' table. The partial unique index closes
// the duplicate-rating hole: at most one active rating per (user, product).
type RatingModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Grade     int   `gorm:"not null"`
	UserID    int64 `gorm:"not null;index:idx_ratings_user_product_active,unique,where:is_active"`
	ProductID int64 `gorm:"not null;index:idx_ratings_user_product_active,unique,where:is_active"`
	IsActive  bool  `gorm:"not null;default:true"`

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// ReviewModel mirrors the 'reviews' table. UserID and ProductID duplicate the
// linked rating's columns; the orchestrator is the only writer of the pair.
type ReviewModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index"`
	ProductID   int64     `gorm:"not null;index"`
	RatingID    int64     `gorm:"not null;index"`
	Comment     string    `gorm:"type:text"`
	CommentDate time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null;default:true"`

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
	Rating  *RatingModel  `gorm:"foreignKey:RatingID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
