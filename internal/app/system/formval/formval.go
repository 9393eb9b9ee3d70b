// Package formval reads optional typed values out of a parsed multipart form.
// A nil result means the field was absent from the request, which update
// handlers use to leave the stored value untouched.
package formval

import (
	"fmt"
	"net/http"
	"strconv"
)

func value(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Str returns the field value, or nil when absent.
func Str(r *http.Request, key string) *string {
	v, ok := value(r, key)
	if !ok {
		return nil
	}
	return &v
}

// Int returns the field parsed as an integer, or nil when absent.
func Int(r *http.Request, key string) (*int, error) {
	v, ok := value(r, key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("field %q must be a number", key)
	}
	return &n, nil
}

// Bool returns the field parsed as a boolean, or nil when absent.
func Bool(r *http.Request, key string) (*bool, error) {
	v, ok := value(r, key)
	if !ok {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("field %q must be a boolean", key)
	}
	return &b, nil
}
