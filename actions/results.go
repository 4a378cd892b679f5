// Package actions holds the mutating operations of the application. Every
// handler authorizes against the request session before touching the store
// and reports back a UI-consumable result. Denials are results, not errors;
// the error return is reserved for infrastructure failures.
package actions

// Result is the outcome every mutating operation reports to the UI
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK builds a success result
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failure result
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}
