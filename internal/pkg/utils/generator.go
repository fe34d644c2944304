package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateLockToken() string {
	return uuid.NewString()
}
