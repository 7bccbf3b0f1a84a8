package service

import (
	"context"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// vendorDirectory resolves vendors through the identity cache.
type vendorDirectory struct {
	repo  ports.VendorRepository
	cache ports.VendorCache
}

func (d vendorDirectory) lookup(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	if v, ok := d.cache.GetVendor(id); ok {
		return v, nil
	}
	v, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("get vendor", err)
	}
	if v == nil {
		return nil, apperror.ErrNotFound("vendor")
	}
	d.cache.SetVendor(v)
	return v, nil
}
