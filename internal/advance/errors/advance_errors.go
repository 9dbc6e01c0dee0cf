package advanceerrors

import (
	"net/http"

	"github.com/mrxguptaa/payroll/internal/shared/apperror"
)

var (
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"advance amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidMode = apperror.New(
		apperror.CodeInvalidInput,
		"payment mode must be CASH or BANK",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrBeforeJoinDate = apperror.New(
		apperror.CodeInvalidState,
		"advance cannot be dated before the employee joined",
		http.StatusUnprocessableEntity,
	)
	ErrEmployeeLeft = apperror.New(
		apperror.CodeInvalidState,
		"advance cannot be dated after the employee left",
		http.StatusUnprocessableEntity,
	)
	ErrAdvanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"advance not found",
		http.StatusNotFound,
	)
)
