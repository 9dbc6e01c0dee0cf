package employeeerrors

import (
	"net/http"

	"github.com/mrxguptaa/payroll/internal/shared/apperror"
)

var (
	ErrUnknownOrg = apperror.New(
		apperror.CodeInvalidInput,
		"unknown organization",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrLeaveBeforeJoin = apperror.New(
		apperror.CodeInvalidInput,
		"date of leaving must be after date of joining",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmpCodeTaken = apperror.New(
		apperror.CodeConflict,
		"employee code is already in use for this organization",
		http.StatusConflict,
	)
	ErrNoAvailableCode = apperror.New(
		apperror.CodeConflict,
		"no available employee codes in the configured range",
		http.StatusConflict,
	)
	ErrAlreadyLeft = apperror.New(
		apperror.CodeInvalidState,
		"employee already has a date of leaving",
		http.StatusBadRequest,
	)
)
