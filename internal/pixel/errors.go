package pixel

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a zero or negative width or height.
var ErrInvalidDimensions = errors.New("pixel: width and height must be positive")

// CheckDimensions returns ErrInvalidDimensions, wrapped with the offending
// values, unless both width and height are positive.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidDimensions, width, height)
	}
	return nil
}
