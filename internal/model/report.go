package model

import "time"

// Report is a persisted life-number reading. Rows are append-only:
// nothing in the service mutates or deletes a report after creation.
type Report struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LifeNumber    int       `gorm:"not null" json:"life_number"`
	Birthday      string    `gorm:"type:varchar(10);not null" json:"birthday"`
	Gender        string    `gorm:"type:varchar(32);not null" json:"gender"`
	Age           int       `gorm:"not null" json:"age"`
	Question      string    `gorm:"type:text" json:"question"`
	ReportContent string    `gorm:"type:text;not null" json:"report_content"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Report) TableName() string { return "reports" }

// ReportSummary is the projection returned by the history listing.
type ReportSummary struct {
	ID         uint      `json:"id"`
	LifeNumber int       `json:"life_number"`
	Birthday   string    `json:"birthday"`
	Age        int       `json:"age"`
	CreatedAt  time.Time `json:"created_at"`
}
