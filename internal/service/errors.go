package service

import "errors"

var (
	// ErrReportNotFound is returned when a crime report id does not exist.
	ErrReportNotFound = errors.New("crime report not found")
	// ErrUserNotFound is returned when a username does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers bad passwords and non-admin accounts alike,
	// so a login failure never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials or insufficient permissions")
)
