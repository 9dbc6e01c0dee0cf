package attendanceerrors

import (
	"net/http"

	"github.com/mrxguptaa/payroll/internal/shared/apperror"
)

var (
	ErrInvalidDay = apperror.New(
		apperror.CodeInvalidInput,
		"day is outside the ledger month",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"attendance status must be PRESENT, ABSENT or HALF_DAY",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"hours worked must be between 0 and 24",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year or month",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee is not in service on this date",
		http.StatusUnprocessableEntity,
	)
)
