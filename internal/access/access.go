// Package access enforces the owner-only rule: a caller may operate on a
// resource only when the caller identity equals the resource identifier.
// Every owner-scoped service operation calls Check before touching the store.
package access

import (
	"fmt"

	"github.com/eaglebank/bank-api/internal/errs"
)

// Check compares the caller identity against the target resource identifier
// with exact, case-sensitive equality. On mismatch it returns an error that
// names both parties and satisfies errors.Is(err, errs.ErrForbidden).
func Check(callerID, resourceID string) error {
	if callerID != resourceID {
		return fmt.Errorf("user %s is not allowed to access resource %s: %w", callerID, resourceID, errs.ErrForbidden)
	}
	return nil
}
