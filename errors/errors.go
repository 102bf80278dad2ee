package errors

import "fmt"

var (
	ErrEmptyWords       = fmt.Errorf("no words have been found")
	ErrInvalidCharacter = fmt.Errorf("replacement must be a single character")
	ErrInvalidConfig    = fmt.Errorf("invalid configuration")
)
