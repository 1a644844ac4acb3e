// Package model holds the shared GORM entities.
package model

import "time"

// Publisher a content publisher owning zero or more websites
type Publisher struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:255;not null;uniqueIndex" json:"name"`
	Email       string    `gorm:"column:email;size:255" json:"email"`
	ContactName string    `gorm:"column:contact_name;size:255" json:"contactName"`
	Websites    []Website `gorm:"foreignKey:PublisherID" json:"websites,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName maps the entity to its table
func (Publisher) TableName() string {
	return "publisher"
}
