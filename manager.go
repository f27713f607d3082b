package ulpforms

import (
	"github.com/google/uuid"
)

// executeSafely runs a fire-and-forget collaborator call: the attempt is
// logged with a fresh attempt id and a failure is logged, never propagated.
// Submission outcomes surface through the next transaction snapshot, not
// through these calls.
func executeSafely(log Logger, desc string, fn func() error) {
	if log == nil {
		log = defLogger{}
	}
	attempt := uuid.NewString()
	log.Debug("%s attempt=%s", desc, attempt)
	if err := fn(); err != nil {
		log.Error("%s attempt=%s failed: %v", desc, attempt, err)
	}
}

func containsConnection(connections []string, name string) bool {
	for _, c := range connections {
		if c == name {
			return true
		}
	}
	return false
}
