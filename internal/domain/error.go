package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrUserNotApproved      = errors.New("user is not approved")
	ErrForbidden            = errors.New("operation not permitted")
	ErrInvalidStarCount     = errors.New("star count must be positive")
	ErrStarsAlreadyAwarded  = errors.New("stars already awarded for this task")
	ErrTaskHasNoAssignee    = errors.New("task has no assignee")
	ErrNoActiveSession      = errors.New("no active work session")
	ErrSessionExists        = errors.New("active work session already exists")
	ErrTaskNotFound         = errors.New("task not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrEventNotFound        = errors.New("event not found")
)
