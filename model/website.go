package model

import "time"

// Website a website owned by exactly one publisher
type Website struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"column:name;size:255;not null" json:"name"`
	PublisherID int64      `gorm:"column:publisher_id;not null;index" json:"publisherId"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName maps the entity to its table
func (Website) TableName() string {
	return "website"
}
