package model

import "time"

// RedeemCode is a single-use token. The code itself is the primary key,
// so issuance collisions surface as duplicate-key errors.
type RedeemCode struct {
	Code      string     `gorm:"type:varchar(12);primaryKey" json:"code"`
	IsUsed    bool       `gorm:"not null;default:false" json:"is_used"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (RedeemCode) TableName() string { return "redeem_codes" }
