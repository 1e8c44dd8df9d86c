package constants

const (
	DATA_INPUT_IS_NOT_NUMBER   = "ID must be a positive integer"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read request data"
	INVALID_BODY               = "Invalid request body"
	ID_MISMATCH                = "Body id does not match path id"
)

// Locals keys shared by validate and handler
const (
	LOCAL_ID            = "inputId"
	LOCAL_CREATE_INPUT  = "createInput"
	LOCAL_UPDATE_INPUT  = "updateInput"
	LOCAL_ASSIGN_INPUT  = "assignIds"
	LOCAL_REQUEST_ID    = "requestid"
	LOCATION_MOVIES     = "/api/movies/%d"
	LOCATION_CHARACTERS = "/api/characters/%d"
	LOCATION_FRANCHISES = "/api/franchises/%d"
)
