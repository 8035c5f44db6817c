package models

import "path/filepath"

// Item is one indexed row of the items table.
// Names are not unique: a tech asset yields both "<name>" and "<name>-chip".
type Item struct {
	Name     string `gorm:"column:name;type:text;not null" json:"name"`
	Filename string `gorm:"column:filename;type:text;not null" json:"filename"`
	Folder   string `gorm:"column:folder;type:text;not null" json:"folder"`
	// Icon is a locator: a file path optionally followed by ":<region>".
	Icon     string `gorm:"column:icon;type:text;not null" json:"icon"`
	Category string `gorm:"column:category;type:text;not null" json:"category"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "items"
}

// Path returns the backing asset file.
func (i Item) Path() string {
	return filepath.Join(i.Folder, i.Filename)
}

// Blueprint is one indexed row of the blueprints table.
type Blueprint struct {
	Name     string `gorm:"column:name;type:text;not null" json:"name"`
	Filename string `gorm:"column:filename;type:text;not null" json:"filename"`
	Folder   string `gorm:"column:folder;type:text;not null" json:"folder"`
	Category string `gorm:"column:category;type:text;not null" json:"category"`
}

// TableName overrides the table name.
func (Blueprint) TableName() string {
	return "blueprints"
}

// Path returns the backing recipe file.
func (b Blueprint) Path() string {
	return filepath.Join(b.Folder, b.Filename)
}

// AllCategories is the filter sentinel matching every category.
const AllCategories = "<all>"

// Tables lists the index tables in creation order.
func Tables() []any {
	return []any{&Item{}, &Blueprint{}}
}
