package utils

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func ParseURLParamInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	return id, nil
}

func ParseQueryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	return value, nil
}

func ParseQueryInt(r *http.Request, name string) (int, error) {
	value, err := ParseQueryInt64(r, name)
	return int(value), err
}

func ParseQueryDate(r *http.Request, name string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	date, err := time.Parse(constvars.DateLayout, raw)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidTimeFormat(err, raw)
	}
	return date, nil
}
