package apierrors

const (
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgMissingAuthHeader  = "missingAuthHeader"
	MsgInvalidToken       = "invalidToken"
	MsgProjectNotFound    = "projectNotFound"
	MsgProjectForbidden   = "projectForbidden"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskForbidden      = "taskForbidden"
	MsgValidationFailed   = "validationFailed"
	MsgInvalidProjectID   = "invalidProjectID"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInternalError      = "internalError"
)
