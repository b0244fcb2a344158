package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a unique correlation id for an inbound request
func NewRequestID() string {
	return uuid.New().String()
}
