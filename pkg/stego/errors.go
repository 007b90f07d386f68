package stego

import (
	"errors"
	"fmt"
)

var (
	ErrTooLarge     = errors.New("message does not fit in the supplied image, either choose a bigger image or a shorter message")
	ErrNoCapacity   = errors.New("declared message length exceeds the image capacity, the image was likely not encoded using lsbsteg")
	ErrDecodeFailed = errors.New("embedded bytes could not be decoded into text")
)

// CapacityError reports how many bits a message needs against how many the image can hold
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message requires %d bits but the image holds at most %d", e.Required, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return ErrTooLarge
}
