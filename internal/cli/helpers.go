package cli

import (
	"errors"
	"io"

	"github.com/aretw0/ash/pkg/domain"
)

// handleExecutionError maps loop termination causes onto the process
// exit policy. End of input and interrupts are how sessions normally
// end, so both count as clean exits.
func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, domain.ErrInterrupted) {
		return nil
	}
	return err
}
