package syskit

import "errors"

// ErrInvalidBase64 indicates input that is not valid base64 text.
var ErrInvalidBase64 = errors.New("syskit: invalid base64 input")

// ErrUnknownAlgorithm indicates an unsupported checksum algorithm name.
var ErrUnknownAlgorithm = errors.New("syskit: unknown checksum algorithm")

// ErrInvalidSettings indicates a settings file that failed to parse or validate.
var ErrInvalidSettings = errors.New("syskit: invalid settings")
