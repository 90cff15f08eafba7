package exceptions

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"fmt"
)

// Scheduling
var (
	ErrInvalidInterval = func(err error, interval int) *CustomError {
		return newCodedError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidInterval, constvars.ErrDevInvalidInterval, fmt.Sprintf("%s: %d", constvars.ErrDevInvalidInterval, interval))
	}
	ErrInvalidTimeFormat = func(err error, value string) *CustomError {
		return newCodedError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidTimeFormat, constvars.ErrDevInvalidTimeFormat, fmt.Sprintf("%s: %q", constvars.ErrDevInvalidTimeFormat, value))
	}
	ErrInvalidWeek = func(err error, week int) *CustomError {
		return newCodedError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidWeek, constvars.ErrDevInvalidWeek, fmt.Sprintf("%s: %d", constvars.ErrDevInvalidWeek, week))
	}
	ErrNotFound = func(err error, resource string) *CustomError {
		return newCodedError(err, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientNotFound, resource), constvars.ErrDevNotFound, fmt.Sprintf("%s: %s", constvars.ErrDevNotFound, resource))
	}
	ErrConcurrentModification = func(err error) *CustomError {
		return newCodedError(err, constvars.StatusConflict, constvars.ErrClientConcurrentModification, constvars.ErrDevConcurrentModification, constvars.ErrDevConcurrentModification)
	}
	ErrCapabilityDenied = func(err error, plan string) *CustomError {
		return newCodedError(err, constvars.StatusForbidden, constvars.ErrClientCapabilityDenied, constvars.ErrDevCapabilityDenied, fmt.Sprintf("%s: plan %s", constvars.ErrDevCapabilityDenied, plan))
	}
	ErrTooManyRequests = func(err error, retryAfterSecs int) *CustomError {
		return newCodedError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests, fmt.Sprintf("%s: retry after %ds", constvars.ErrDevTooManyRequests, retryAfterSecs))
	}
)

// Postgres DB
var (
	ErrPostgresDBFindData = func(err error) *CustomError {
		return newCodedError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorage, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return newCodedError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorage, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return newCodedError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorage, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return newCodedError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorage, constvars.ErrDevDBFailedToIterateDataset)
	}
	ErrPostgresDBBeginTransaction = func(err error) *CustomError {
		return newCodedError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorage, constvars.ErrDevDBFailedToBeginTransaction)
	}
	ErrPostgresDBCommitTransaction = func(err error) *CustomError {
		return newCodedError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorage, constvars.ErrDevDBFailedToCommitTransaction)
	}
)

// Redis
var (
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}
)

// Minio
var (
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
)

// RabbitMQ
var (
	ErrRabbitMQOpenChannel = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQOpenChannel)
	}
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)

// Request handling
var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
