package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-insights/internal/db"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/pipeline"
	"github.com/jonathan/resume-insights/internal/retry"
	"github.com/jonathan/resume-insights/internal/storage"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		unsupported *ingestion.UnsupportedFileTypeError
		extraction  *ingestion.ExtractionError
		emptyDoc    *pipeline.EmptyDocumentError
		validation  *storage.ValidationError
		storageMiss *storage.NotFoundError
		profileMiss *db.NotFoundError
		invocation  *retry.InvocationError
	)

	switch {
	case errors.As(err, &unsupported), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &emptyDoc):
		return http.StatusUnprocessableEntity
	case errors.As(err, &storageMiss), errors.As(err, &profileMiss):
		return http.StatusNotFound
	case errors.As(err, &invocation):
		return http.StatusBadGateway
	case errors.As(err, &extraction):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
