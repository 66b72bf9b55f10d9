package models

import "time"

// ParentDaughterRelationship links a care recipient to a family coordinator.
// Created only by the explicit add-parent action, never at registration.
type ParentDaughterRelationship struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ParentID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_parent_daughter" json:"parent_id"`
	DaughterID string    `gorm:"type:uuid;not null;uniqueIndex:idx_parent_daughter" json:"daughter_id"`
	CreatedAt  time.Time `gorm:"default:now()" json:"created_at"`

	Parent   *User `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Daughter *User `gorm:"foreignKey:DaughterID" json:"daughter,omitempty"`
}
