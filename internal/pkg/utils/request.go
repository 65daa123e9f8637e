package utils

import (
	"net/http"
	"strconv"

	"swasthya-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ParseAndValidateRequest decodes a JSON body into payload and runs struct
// validation on it.
func ParseAndValidateRequest(r *http.Request, payload interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return ValidateStruct(payload)
}

func ValidateUUIDParam(value, paramName string) error {
	if _, err := uuid.Parse(value); err != nil {
		return exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return nil
}

// ParsePageParams reads page/page_size query params, falling back to page 1
// and the given default size. Values are clamped to sane bounds.
func ParsePageParams(r *http.Request, defaultPageSize int) (page, pageSize int) {
	page = 1
	pageSize = defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			pageSize = parsed
		}
	}
	return page, pageSize
}
