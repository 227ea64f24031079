package hiringerrors

import (
	"go-hris-backoffice/internal/shared/apperror"
	"net/http"
)

var (
	ErrPostingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Posting not found",
		http.StatusNotFound,
	)
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrScoreOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"score out of range",
		http.StatusBadRequest,
	)
)
