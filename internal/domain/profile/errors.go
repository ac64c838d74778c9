package profile

import "errors"

var ErrProfileNotFound = errors.New("Profile not found")
