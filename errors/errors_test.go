//go:build unit
// +build unit

package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vortex-fintech/ingest-lib/errors"
)

func TestValidationFields(t *testing.T) {
	fields := map[string]string{"name": "missing_name"}
	e := errors.ValidationFields(fields)

	assert.Equal(t, codes.InvalidArgument, e.Code)
	assert.Equal(t, errors.Reason("validation_failed"), e.Reason)
	assert.Equal(t, fields, e.Details)
}

func TestValidationViolations(t *testing.T) {
	e := errors.ValidationViolations([]errors.FieldViolation{
		{Field: "contact_method", Reason: "missing_contact_method"},
	})

	assert.Equal(t, codes.InvalidArgument, e.Code)
	require.Len(t, e.Violations, 1)
	assert.Equal(t, "contact_method", e.Violations[0].Field)
}

func TestUnsupported(t *testing.T) {
	e := errors.Unsupported("delimiter", ":")

	assert.Equal(t, codes.InvalidArgument, e.Code)
	assert.Equal(t, "Unsupported delimiter", e.Message)
	assert.Equal(t, map[string]string{"delimiter": ":"}, e.Details)
}

func TestGRPCRoundTrip(t *testing.T) {
	in := errors.ValidationViolations([]errors.FieldViolation{
		{Field: "name", Reason: "missing_name", Description: "no name fields"},
	}).WithDetail("rows", "3")

	grpcErr := in.ToGRPC()
	st, ok := status.FromError(grpcErr)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	var sawBadRequest bool
	for _, d := range st.Details() {
		if _, ok := d.(*errdetails.BadRequest); ok {
			sawBadRequest = true
		}
	}
	assert.True(t, sawBadRequest)

	out := errors.FromGRPC(grpcErr)
	assert.Equal(t, codes.InvalidArgument, out.Code)
	assert.Equal(t, errors.Reason("validation_failed"), out.Reason)
	assert.Equal(t, "3", out.Details["rows"])
	require.Len(t, out.Violations, 1)
	assert.Equal(t, "name", out.Violations[0].Field)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, 400, errors.HTTPStatus(codes.InvalidArgument))
	assert.Equal(t, 404, errors.HTTPStatus(codes.NotFound))
	assert.Equal(t, 500, errors.HTTPStatus(codes.Internal))
	assert.Equal(t, 500, errors.HTTPStatus(codes.DataLoss))
}
