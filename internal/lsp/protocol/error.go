package protocol

import "fmt"

// LunaLspError is returned as the data of a failed custom command
type LunaLspError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewLspError(message string, code string) *LunaLspError {
	return &LunaLspError{
		Code:    code,
		Message: message,
	}
}

func (e *LunaLspError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
