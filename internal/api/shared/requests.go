package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DecodeJSON decodes the request body into the given struct.
// Unknown extra fields in the body are ignored, not rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// dateLayouts are the accepted formats for date fields, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a date field that may arrive as a plain date
// ("2023-12-31") or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}
