// Package model contains the GORM table mappings for the persistence layer.
package model

// UserModel mirrors the 'users' table. The role column replaces the legacy
// is_admin/is_supplier/is_customer boolean trio with a single closed value.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	FirstName      string `gorm:"type:varchar(100)"`
	LastName       string `gorm:"type:varchar(100)"`
	Username       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	Role           string `gorm:"type:varchar(20);not null;default:customer"`
	IsActive       bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
