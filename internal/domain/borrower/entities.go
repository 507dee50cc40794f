package borrower

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("borrower profile not found")

const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

type Profile struct {
	ID                   uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID               string    `gorm:"size:32;uniqueIndex:ux_borrower_profiles_user" json:"user_id"`
	CreditScore          *int      `gorm:"column:credit_score" json:"credit_score,omitempty"`
	SuccessfulLoansCount int       `gorm:"column:successful_loans_count;default:0" json:"successful_loans_count"`
	DefaultsCount        int       `gorm:"column:defaults_count;default:0" json:"defaults_count"`
	Bio                  string    `gorm:"type:text" json:"bio"`
	IsVerified           bool      `gorm:"column:is_verified" json:"is_verified"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "borrower_profiles" }
