package project

import "time"

// Project is a user-owned unit of work producing one exported document.
// UserID never changes after creation. The three blob columns are JSON text;
// content keys are not forced to match the outline (an outline edit after
// generation leaves stale content in place), and history only grows.
type Project struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	UserID  uint64 `gorm:"index;not null" json:"user_id"`
	Title   string `gorm:"not null" json:"title"`
	DocType string `gorm:"not null" json:"doc_type"` // "docx" or "pptx"
	Topic   string `gorm:"not null" json:"topic"`

	Outline OutlineList `gorm:"type:text;not null;default:'[]'" json:"outline"`
	Content ContentMap  `gorm:"type:text;not null;default:'{}'" json:"content"`
	History HistoryMap  `gorm:"type:text;not null;default:'{}'" json:"history"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
