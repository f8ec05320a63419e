package errors

import cr "github.com/cockroachdb/errors"

// Error kinds. Every domain failure is marked with exactly one of them so the
// transport layer can branch on the kind alone.
var (
	ErrNotFound      = cr.New("not found")
	ErrExpired       = cr.New("expired")
	ErrInvalidInput  = cr.New("invalid input")
	ErrAlreadyExists = cr.New("already exists")
)

var (
	ErrSessionNotFound  = cr.Mark(cr.New("session not found"), ErrNotFound)
	ErrSessionExpired   = cr.Mark(cr.New("session expired"), ErrExpired)
	ErrOrderNotFound    = cr.Mark(cr.New("order not found"), ErrNotFound)
	ErrBlobNotFound     = cr.Mark(cr.New("file not found"), ErrNotFound)
	ErrSettingsNotFound = cr.Mark(cr.New("settings not found"), ErrNotFound)

	ErrEmptyUpload      = cr.Mark(cr.New("no files uploaded"), ErrInvalidInput)
	ErrNoPhotosSelected = cr.Mark(cr.New("no photos to print"), ErrInvalidInput)
	ErrInvalidKey       = cr.Mark(cr.New("invalid storage key"), ErrInvalidInput)
	ErrInvalidSettings  = cr.Mark(cr.New("invalid settings"), ErrInvalidInput)
)
