package ticket

import "errors"

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title exceeds maximum length of 200 characters")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length of 5000 characters")
	ErrClientRequired      = errors.New("target client is required")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidStatus       = errors.New("invalid ticket status")
	ErrIDRequired          = errors.New("ticket ID is required")
	ErrIdentityAlreadySet  = errors.New("ticket identity already assigned")
	ErrCreatedAtRequired   = errors.New("ticket creation time is required")
)
