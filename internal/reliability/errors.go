package reliability

import (
	"errors"
	"fmt"

	"github.com/popeskul/pnba-gateway/internal/models"
)

var (
	ErrUnknownGatewayClient = errors.New("unknown gateway client")
	ErrTestNotFound         = errors.New("reliability test not found")
	ErrInvalidTransition    = errors.New("invalid reliability test transition")
)

// TransitionError reports a rejected status change. The test keeps Current.
type TransitionError struct {
	TestID  int64
	Current models.TestStatus
	Target  models.TestStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: test %d cannot move from %s to %s", ErrInvalidTransition, e.TestID, e.Current, e.Target)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
