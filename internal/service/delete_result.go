package service

// DeleteData carries the raw affected-row count of a delete.
type DeleteData struct {
	Affected int64 `json:"affected"`
}

// DeleteResult is the confirmation payload returned after a successful
// delete: a human-readable message, a success status code, and the raw
// affected-count result.
type DeleteResult struct {
	Message    string     `json:"message"`
	StatusCode int        `json:"statusCode"`
	Data       DeleteData `json:"data"`
}
