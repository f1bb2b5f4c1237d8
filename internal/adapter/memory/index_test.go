package memory

import (
	"testing"

	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/port/testsuite"
)

func TestIndex(t *testing.T) {
	testsuite.TestIndex(t, func(t *testing.T) (port.Index, error) {
		return NewIndex(), nil
	})
}
