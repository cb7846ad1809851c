package usecase

import "mesa-market/internal/core/domain"

// authorize decides access to a single target resource: absence is reported
// as not found before ownership is considered.
func authorize(found, owned bool, resource string) error {
	if !found {
		return domain.NotFound(resource)
	}
	if !owned {
		return domain.Forbidden("")
	}
	return nil
}
