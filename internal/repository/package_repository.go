package repository

import (
	"time"

	"github.com/photoflow/photoflow/internal/model"
	"github.com/photoflow/photoflow/internal/store"
)

// PackageRepo provides access to the sellable packages a photographer
// offers.  Packages are soft-deleted via the Active flag.
type PackageRepo struct {
	packages *store.Collection[model.Package]
}

// NewPackageRepo returns a PackageRepo over a fresh collection.
func NewPackageRepo() *PackageRepo {
	return &PackageRepo{packages: store.NewCollection[model.Package]()}
}

// Create stores a new active package.
func (r *PackageRepo) Create(photographerID uint64, name, description, pkgType string, price float64, options map[string]any) *model.Package {
	if options == nil {
		options = map[string]any{}
	}
	now := time.Now().UTC()
	return r.packages.Insert(func(id uint64) *model.Package {
		return &model.Package{
			ID:             id,
			PhotographerID: photographerID,
			Name:           name,
			Description:    description,
			Type:           pkgType,
			Price:          price,
			Options:        options,
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	})
}

// ListActiveByPhotographer returns the photographer's active packages in
// creation order.  This is the set orders resolve against.
func (r *PackageRepo) ListActiveByPhotographer(photographerID uint64) []*model.Package {
	return r.packages.Find(func(p *model.Package) bool {
		return p.PhotographerID == photographerID && p.Active
	})
}

// GetActive resolves one package id inside the photographer's active set.
func (r *PackageRepo) GetActive(id, photographerID uint64) (*model.Package, error) {
	pkg, ok := r.packages.Get(id)
	if !ok || !pkg.Active || pkg.PhotographerID != photographerID {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

// Deactivate soft-deletes a package.  Existing orders keep their
// denormalized copy of name and price.
func (r *PackageRepo) Deactivate(id, photographerID uint64) error {
	pkg, ok := r.packages.Get(id)
	if !ok || pkg.PhotographerID != photographerID {
		return ErrPackageNotFound
	}
	r.packages.Update(id, func(p *model.Package) {
		p.Active = false
		p.UpdatedAt = time.Now().UTC()
	})
	return nil
}
