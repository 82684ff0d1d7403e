package uid

import (
	"encoding/base64"

	uuid "github.com/satori/go.uuid"
)

// NewID returns a short random id, 11 url-safe characters long,
// used to tell decoder sessions apart in logs
func NewID() string {
	id := uuid.NewV4()
	return base64.RawURLEncoding.EncodeToString(id.Bytes()[:8])
}
