package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token")

	ErrUserNotFound    = errors.New("user not found")
	ErrSellerNotFound  = errors.New("seller not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrBidNotFound     = errors.New("bid not found")

	ErrInvalidRole     = errors.New("invalid user role")
	ErrNotProjectOwner = errors.New("caller doesn't own the project")

	ErrProjectNotBiddable   = errors.New("project is no longer open to sellers")
	ErrProjectNotInProgress = errors.New("project must be in progress")
	ErrSellerNotNotified    = errors.New("seller was selected but could not be notified")
)
