package apierrors

const (
	MsgAuthRequired           = "authRequired"
	MsgInvalidUser            = "invalidUser"
	MsgAuthError              = "authError"
	MsgMissingCredentials     = "missingCredentials"
	MsgPasswordTooShort       = "passwordTooShort"
	MsgPasswordTooLong        = "passwordTooLong"
	MsgUserExists             = "userExists"
	MsgInvalidCredentials     = "invalidCredentials"
	MsgRegisterSuccess        = "registerSuccess"
	MsgLoginSuccess           = "loginSuccess"
	MsgInvalidPayload         = "invalidPayload"
	MsgInvalidEmail           = "invalidEmail"
	MsgNameTooLong            = "nameTooLong"
	MsgTitleTooLong           = "titleTooLong"
	MsgDescriptionTooLong     = "descriptionTooLong"
	MsgTitleRequired          = "titleRequired"
	MsgInvalidPriority        = "invalidPriority"
	MsgInvalidDueDate         = "invalidDueDate"
	MsgInvalidTaskID          = "invalidTaskID"
	MsgInvalidCompletedFilter = "invalidCompletedFilter"
	MsgTaskNotFound           = "taskNotFound"
	MsgRouteNotFound          = "routeNotFound"
	MsgTooManyRequests        = "tooManyRequests"
	MsgInternalError          = "internalError"
)
