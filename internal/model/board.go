package model

import "time"

// Board is the single persisted resource. ID and CreatedDate are assigned
// by the server at insert and never change afterwards.
type Board struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null"`
	Content     string    `gorm:"not null"`
	CreatedDate time.Time `gorm:"not null;autoCreateTime"`
}
