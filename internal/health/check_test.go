package health

import (
	"testing"

	"github.com/duckup/duckup/internal/models"
	"github.com/stretchr/testify/assert"
)

type stubLastResulter struct {
	result models.Result
	ok     bool
}

func (s stubLastResulter) LastResult() (models.Result, bool) {
	return s.result, s.ok
}

func Test_MakeIsHealthy(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		runner     stubLastResulter
		errWrapped error
		errMessage string
	}{
		"no attempt yet": {
			runner: stubLastResulter{},
		},
		"last attempt succeeded": {
			runner: stubLastResulter{
				result: models.Result{Success: true},
				ok:     true,
			},
		},
		"last attempt failed": {
			runner: stubLastResulter{
				result: models.Result{
					Message: "Network error: connection refused",
				},
				ok: true,
			},
			errWrapped: ErrLastAttemptFailed,
			errMessage: "last update attempt failed: " +
				"Network error: connection refused",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			isHealthy := MakeIsHealthy(testCase.runner)
			err := isHealthy()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}
