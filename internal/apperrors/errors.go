package apperrors

import "errors"

// ErrNoFile indicates that the request carried no uploaded file.
var ErrNoFile = errors.New("no file uploaded")

// ErrFileTooLarge indicates that the uploaded file exceeds the size ceiling.
var ErrFileTooLarge = errors.New("uploaded file exceeds the maximum allowed size")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
