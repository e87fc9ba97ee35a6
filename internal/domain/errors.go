package domain

import "errors"

var (
	ErrNoInstanceSelected  = errors.New("no instance selected")
	ErrInstanceNotFound    = errors.New("instance not found")
	ErrNoAccount           = errors.New("no account signed in")
	ErrPackNotFound        = errors.New("pack not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrNoCompatibleVersion = errors.New("no compatible version")
	ErrNotBlocked          = errors.New("launch is not blocked")
	ErrEmptyRedirectURL    = errors.New("empty redirect URL")
	ErrNoAuthCode          = errors.New("no authorization code in redirect URL")
	ErrAuthStateMismatch   = errors.New("sign-in state mismatch")
)
