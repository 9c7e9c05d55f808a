package constants

const (
	ROLE_EMPLOYEE   = "employee"
	ROLE_MANAGER    = "manager"
	ROLE_SUPERADMIN = "superadmin"
)

const (
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"
	INVALID_BODY             = "Invalid request body"
	INVALID_TABLE_OR_TOKEN   = "Invalid table or token"
	INVALID_STATE            = "Operation not allowed in current state"
	LOGIN_FAILED             = "Invalid username or password"
)
