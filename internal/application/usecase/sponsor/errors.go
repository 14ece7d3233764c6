package sponsor

import (
	"errors"
	"fmt"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// lookupError maps a repository lookup failure to a not-found error when the sponsor
// does not exist and wraps anything else.
func lookupError(err error) error {
	if errors.Is(err, domainerror.ErrSponsorNotFound) {
		return domainerror.NewSponsorshipError(
			domainerror.ErrCodeSponsorNotFound,
			"sponsor not found",
			domainerror.ErrSponsorNotFound,
		)
	}
	return fmt.Errorf("failed to load sponsor: %w", err)
}
