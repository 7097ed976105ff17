package model

type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Type string `json:"type" gorm:"not null;uniqueIndex"` // "Science", "Art", ...
}
