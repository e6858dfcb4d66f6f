package repository

import (
	"log/slog"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/pgconv"
)

// wrap classifies a driver error into a repository error kind.
func wrap(logger *slog.Logger, msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	}
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
	case pgconv.CodeExclusionViolation:
		return infra.WrapRepoErr(logger, infra.KindConflict, msg, err)
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected, pgconv.CodeLockNotAvailable:
		return infra.WrapRepoErr(logger, infra.KindStorageConflict, msg, err)
	default:
		return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
	}
}
