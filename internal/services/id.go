package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// generateID returns an id of the form <unix-millis>-<8 hex chars>. The time
// component keeps ids roughly ordered by creation; the random suffix makes
// collisions within the same millisecond vanishingly unlikely. Not meant to
// be cryptographically secure.
func generateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
