package health

import (
	"errors"
	"fmt"

	"github.com/duckup/duckup/internal/models"
)

type LastResulter interface {
	LastResult() (result models.Result, ok bool)
}

var ErrLastAttemptFailed = errors.New("last update attempt failed")

// MakeIsHealthy reports the program as healthy as long as the last
// update attempt succeeded. No attempt yet also counts as healthy so
// the container passes its first checks right after starting.
func MakeIsHealthy(runner LastResulter) func() error {
	return func() (err error) {
		result, ok := runner.LastResult()
		if !ok || result.Success {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrLastAttemptFailed, result.Message)
	}
}
