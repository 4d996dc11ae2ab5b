package model

// CategoryModel mirrors the 'categories' table. ParentID is a self-reference
// forming a tree; nothing at the schema level prevents cycles.
type CategoryModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);not null"`
	Slug     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	ParentID *int64 `gorm:"index"`
	IsActive bool   `gorm:"not null;default:true"`

	Parent *CategoryModel `gorm:"foreignKey:ParentID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Rating is the derived aggregate;
// the review workflows are its only writers.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Slug        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string  `gorm:"type:text"`
	Price       int     `gorm:"not null"`
	ImageURL    string  `gorm:"type:varchar(512)"`
	Stock       int     `gorm:"not null;default:0"`
	Rating      float64 `gorm:"not null;default:0"`
	IsActive    bool    `gorm:"not null;default:true"`
	CategoryID  int64   `gorm:"index;not null"`
	SupplierID  int64   `gorm:"index;not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Supplier *UserModel     `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
