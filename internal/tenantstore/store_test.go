package tenantstore_test

import (
	"errors"
	"net/http"

	"go-hris-backoffice/internal/shared/apperror"
)

type note struct {
	ID    string   `json:"id"`
	Body  string   `json:"body"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func (n note) GetID() string { return n.ID }

var errNoteNotFound = apperror.New(apperror.CodeNotFound, "note not found", http.StatusNotFound)

var errRejected = errors.New("rejected")
