package model

import "time"

// Package types a photographer can offer.
const (
	PackageDigital    = "digital"
	PackagePrint      = "print"
	PackageAlbum      = "album"
	PackageExtraPhoto = "extra_photo"
)

// ValidPackageType reports whether t is one of the known package types.
func ValidPackageType(t string) bool {
	switch t {
	case PackageDigital, PackagePrint, PackageAlbum, PackageExtraPhoto:
		return true
	}
	return false
}

// Package is a sellable product defined by a photographer.  Packages are
// soft-deleted through the Active flag so existing orders keep resolving
// their denormalized names and prices.
//
// Fields:
//  ID             – primary identifier.
//  PhotographerID – owning photographer.
//  Name           – display name.
//  Description    – sales copy.
//  Type           – digital, print, album or extra_photo.
//  Price          – non-negative unit price.
//  Options        – free-form options (sizes, paper, ...).
//  Active         – false once retired; inactive packages cannot be ordered.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Package struct {
	ID             uint64         `json:"id"`
	PhotographerID uint64         `json:"photographer_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Type           string         `json:"type"`
	Price          float64        `json:"price"`
	Options        map[string]any `json:"options"`
	Active         bool           `json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
