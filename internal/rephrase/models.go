package rephrase

import "time"

type Session struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID    string    `gorm:"type:varchar(26);uniqueIndex;not null" json:"session_id"`
	UserID       uint64    `gorm:"index;not null" json:"-"`
	Language     *string   `gorm:"type:varchar(64)" json:"language,omitempty"`
	Context      *string   `gorm:"type:varchar(64)" json:"context,omitempty"`
	OriginalText string    `gorm:"type:text;not null" json:"original_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Session) TableName() string { return "rephrase_sessions" }

type Variant struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	VariantID    string    `gorm:"type:varchar(26);uniqueIndex;not null" json:"variant_id"`
	SessionID    string    `gorm:"type:varchar(26);not null;index" json:"session_id"`
	Tone         *string   `gorm:"type:varchar(64)" json:"tone,omitempty"`
	Complexity   *string   `gorm:"type:varchar(64)" json:"complexity,omitempty"`
	VariantLabel *string   `gorm:"type:varchar(128)" json:"variant_label,omitempty"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	IsFavorite   bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Variant) TableName() string { return "rephrase_variants" }
