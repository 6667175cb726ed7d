package models

// Problem is the structured error body returned by handlers for expected
// failure conditions (validation errors, unknown ids, unexpected faults).
//
// The field name is serialized with a capital "M" to keep the wire format
// stable for existing consumers:
//
//	{"Message": "User not found."}
type Problem struct {
	Message string `json:"Message"`
}

// InternalError is the generic body produced by the error-catch middleware
// when a panic escapes a handler. It deliberately carries no detail about
// the fault; diagnostics are available through logs and the /error route.
type InternalError struct {
	Error string `json:"error"`
}
