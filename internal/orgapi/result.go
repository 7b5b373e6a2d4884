package orgapi

import (
	"orgsetup/internal/domain"
	appErrors "orgsetup/internal/errors"
)

// ResultKind tells which branch of the create flow a response belongs to.
type ResultKind int

const (
	// ResultUnknown is the zero value; no request produced it.
	ResultUnknown ResultKind = iota
	// ResultCreated is a 200 response carrying the new organization.
	ResultCreated
	// ResultApplicationFailure is any other 2xx response.
	ResultApplicationFailure
	// ResultTransportFailure covers network errors, undecodable bodies and non-2xx responses.
	ResultTransportFailure
)

// String returns the string representation of a ResultKind.
func (k ResultKind) String() string {
	switch k {
	case ResultCreated:
		return "created"
	case ResultApplicationFailure:
		return "application_failure"
	case ResultTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// FailureCode categorizes a transport failure by the backend's error message.
type FailureCode string

const (
	FailureReachedMaxOrganization FailureCode = "REACHED_MAX_ORGANIZATION"
	FailureDuplicateOrganization  FailureCode = "DUPLICATE_ORGANIZATION"
	FailureUnrecognized           FailureCode = "UNRECOGNIZED"
)

// ClassifyMessage maps the backend's "message" field onto a FailureCode.
func ClassifyMessage(message string) FailureCode {
	switch FailureCode(message) {
	case FailureReachedMaxOrganization:
		return FailureReachedMaxOrganization
	case FailureDuplicateOrganization:
		return FailureDuplicateOrganization
	default:
		return FailureUnrecognized
	}
}

func (f FailureCode) code() appErrors.Code {
	switch f {
	case FailureReachedMaxOrganization:
		return appErrors.CodeReachedMaxOrganization
	case FailureDuplicateOrganization:
		return appErrors.CodeDuplicateOrganization
	default:
		return appErrors.CodeTransportFailed
	}
}

// ErrorPayload is the JSON body the backend sends with failed requests.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Result is the outcome of a create request.
type Result struct {
	Kind   ResultKind
	Status int

	// Organization is set for ResultCreated.
	Organization domain.Organization

	// Failure and Payload are set for ResultTransportFailure.
	Failure FailureCode
	Payload ErrorPayload

	// Err describes any non-created result.
	Err error
}

// Created reports whether the organization was created.
func (r Result) Created() bool {
	return r.Kind == ResultCreated
}
