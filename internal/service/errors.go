package service

import "errors"

var (
	ErrInvalidBirthday = errors.New("birthday is not a valid date")
	ErrReportNotFound  = errors.New("report not found")
	ErrCodeNotFound    = errors.New("redeem code not found")
	ErrCodeAlreadyUsed = errors.New("redeem code already used")
)
