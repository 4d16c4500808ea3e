// Package errors carries the unified error model shared across transports:
// a gRPC code, a stable machine reason, optional per-field violations.
//
// The library itself is transport-agnostic; ToGRPC/ToHTTP exist for the
// callers that expose normalization behind a service surface.
package errors

import "google.golang.org/grpc/codes"

func Unknown() ErrorResponse {
	return ErrorResponse{Code: codes.Unknown, Message: "Unknown error occurred"}
}

func InvalidArgument() ErrorResponse {
	return ErrorResponse{Code: codes.InvalidArgument, Message: "Invalid argument"}
}

func Internal() ErrorResponse {
	return ErrorResponse{Code: codes.Internal, Message: "Internal error"}
}

func NotFound(resource, value string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.NotFound,
		Message: resource + " not found",
		Details: map[string]string{resource: value},
	}
}

// Unsupported — для значений вне поддерживаемого набора
// (например, разделитель таблицы не из {, ; tab |}).
func Unsupported(name, value string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Message: "Unsupported " + name,
		Reason:  "unsupported_" + Reason(name),
		Details: map[string]string{name: value},
	}
}

// ValidationFields — плоская форма: поле -> машинный код.
func ValidationFields(fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Reason:  "validation_failed",
		Message: "Validation failed",
		Details: fields,
	}
}

// ValidationViolations — структурированная форма.
func ValidationViolations(violations []FieldViolation) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Reason:  "validation_failed",
		Message: "Validation failed",
	}.WithViolations(violations)
}
