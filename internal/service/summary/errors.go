package summary

import "errors"

var ErrInvalidEmail = errors.New("invalid email")
