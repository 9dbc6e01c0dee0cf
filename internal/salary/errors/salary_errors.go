package salaryerrors

import (
	"net/http"

	"github.com/mrxguptaa/payroll/internal/shared/apperror"
)

var (
	ErrMissingSalaryConfig = apperror.New(
		apperror.CodeInvalidState,
		"salary rate is not configured for this employee",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year or month",
		http.StatusBadRequest,
	)
	ErrSheetStorageNotConfigured = apperror.New(
		apperror.CodeInternalError,
		"sheet storage directory is not configured",
		http.StatusInternalServerError,
	)
)
