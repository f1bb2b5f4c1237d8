package memory

import (
	"testing"

	"github.com/harshrai654/notes-api/internal/core/port"
	"github.com/harshrai654/notes-api/internal/core/port/testsuite"
)

func TestUserStore(t *testing.T) {
	testsuite.TestUserStore(t, func(t *testing.T) (port.UserStore, error) {
		return NewUserStore(), nil
	})
}
