package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"scmock/catalog"
)

// errorBody matches the error shape of the AWS JSON protocol
type errorBody struct {
	Type         string `json:"__type"`
	Message      string `json:"message"`
	ResourceID   string `json:"resourceId,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
}

type unknownOperationError struct {
	Action string
}

func (e *unknownOperationError) Error() string {
	return fmt.Sprintf("Unknown operation '%s'", e.Action)
}

// ErrorType returns the wire error type name
func (e *unknownOperationError) ErrorType() string {
	return "UnknownOperationException"
}

// StatusCode returns the HTTP status for the error
func (e *unknownOperationError) StatusCode() int {
	return http.StatusBadRequest
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{
		Type:    "InternalFailure",
		Message: err.Error(),
	}
	if apiErr, ok := err.(catalog.APIError); ok {
		status = apiErr.StatusCode()
		body.Type = apiErr.ErrorType()
	}
	if notFound, ok := err.(*catalog.ResourceNotFoundError); ok {
		body.Message = notFound.Message
		body.ResourceID = notFound.ResourceID
		body.ResourceType = notFound.ResourceType
	}

	log.Debugf("request failed: %s %s", body.Type, err)
	payload, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", jsonContentType)
	w.Header().Set("X-Amzn-Errortype", body.Type)
	w.WriteHeader(status)
	w.Write(payload)
}
