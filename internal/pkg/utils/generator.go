package utils

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"fmt"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s-%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
}

func GenerateEventID() string {
	return uuid.NewString()
}
