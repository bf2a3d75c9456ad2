package models

import "github.com/google/uuid"

// Toast is the transient notification envelope every mutating endpoint
// returns. The shell renders it once and drops it.
type Toast struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func SuccessToast(message string) Toast {
	return Toast{ID: uuid.New().String(), Type: "success", Message: message}
}

func ErrorToast(message string) Toast {
	return Toast{ID: uuid.New().String(), Type: "error", Message: message}
}
