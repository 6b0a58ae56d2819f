// Package repository holds the data access layer: gallery and commerce
// entities over in-memory collections, photographers and refresh tokens
// over MySQL.  This file defines the sentinel errors shared across
// repositories and services.  Handlers translate each sentinel into an
// HTTP status plus a stable machine-readable code so API clients can
// pattern-match on failures.
package repository

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session id or access code does
// not resolve to a usable session.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionNotActive is returned when a mutating gallery operation hits
// a session that is completed or archived.
var ErrSessionNotActive = errors.New("session is not active")

// ErrPhotoNotFound is returned when a photo id does not exist or belongs
// to a different session.
var ErrPhotoNotFound = errors.New("photo not found")

// ErrOrderNotFound is returned when an order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrPackageNotFound is returned when an order references a package id
// outside the photographer's active package set.
var ErrPackageNotFound = errors.New("package not found")

// ErrNoSelection is returned by finalize when no photo carries any
// selection flag.
var ErrNoSelection = errors.New("no photos selected")

// ErrAlreadyPaid is returned when a payment is attempted on an order
// whose payment status is already paid.
var ErrAlreadyPaid = errors.New("order already paid")

// ErrInvalidTransition is returned when a status change is not allowed
// by the entity's transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrForbidden is returned when the caller does not own the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCategory is returned when a selection request names a
// category other than album, editing or general.
var ErrInvalidCategory = errors.New("unknown selection category")

// SelectionLimitError reports that a selection category cap was reached.
// It carries the configured limit so the boundary can echo it back.
type SelectionLimitError struct {
	Category string
	Limit    int
}

func (e *SelectionLimitError) Error() string {
	return fmt.Sprintf("selection limit of %d reached for %s", e.Limit, e.Category)
}

// Stable machine-readable codes surfaced to API clients alongside error
// messages.  These strings are part of the client contract.
const (
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeGalleryNotFound     = "GALLERY_NOT_FOUND"
	CodeGalleryNotAvailable = "GALLERY_NOT_AVAILABLE"
	CodePhotoNotFound       = "PHOTO_NOT_FOUND"
	CodeSelectionLimit      = "SELECTION_LIMIT_REACHED"
	CodeInvalidCategory     = "INVALID_CATEGORY"
	CodeNoPhotosSelected    = "NO_PHOTOS_SELECTED"
	CodeOrderNotFound       = "ORDER_NOT_FOUND"
	CodePackageNotFound     = "PACKAGE_NOT_FOUND"
	CodeAlreadyPaid         = "ALREADY_PAID"
	CodeInvalidTransition   = "INVALID_STATUS_TRANSITION"
	CodeEmailExists         = "EMAIL_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeTokenRequired       = "TOKEN_REQUIRED"
	CodeTokenInvalid        = "TOKEN_INVALID"
	CodeAccessDenied        = "ACCESS_DENIED"
	CodeInternalError       = "INTERNAL_ERROR"
)
