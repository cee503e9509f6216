package domain

import "taskboard/pkg/apierrors"

// Typed failures returned by the service layer. Each carries the error kind
// the transport boundary maps to an HTTP status.
var (
	ErrEmailTaken         = apierrors.Conflict(apierrors.MsgEmailTaken)
	ErrInvalidCredentials = apierrors.Unauthorized(apierrors.MsgInvalidCredentials)
	ErrProjectNotFound    = apierrors.NotFound(apierrors.MsgProjectNotFound)
	ErrProjectForbidden   = apierrors.Forbidden(apierrors.MsgProjectForbidden)
	ErrTaskNotFound       = apierrors.NotFound(apierrors.MsgTaskNotFound)
	ErrTaskForbidden      = apierrors.Forbidden(apierrors.MsgTaskForbidden)
)
