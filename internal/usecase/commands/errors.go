package commands

import (
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/errs"
)

var (
	ErrIdempotencyKeyReused   = errs.Kinded("idempotency key was used for a different request", errs.ErrConflict)
	ErrIdempotencyInProgress  = errs.Kinded("a request with this idempotency key is still in progress", errs.ErrConflict)
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

// translate maps storage kinds onto the domain sentinel the caller expects.
func translate(err error, kind infra.RepositoryErrorKind, sentinel error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, kind) {
		return sentinel
	}
	return err
}
