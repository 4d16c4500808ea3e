package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPC — ErrorResponse → gRPC error с ErrorInfo + BadRequest (если нужно).
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	if e.Reason != "" || len(e.Details) > 0 {
		ei := &errdetails.ErrorInfo{
			Reason:   string(e.Reason),
			Metadata: map[string]string{},
		}
		for k, v := range e.Details {
			ei.Metadata[k] = v
		}
		if st2, err := st.WithDetails(ei); err == nil {
			st = st2
		}
	}

	// BadRequest: field violations (только для InvalidArgument).
	if len(e.Violations) > 0 && e.Code == codes.InvalidArgument {
		br := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
		}
		for _, v := range e.Violations {
			desc := v.Description
			if desc == "" {
				desc = v.Reason
			}
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: desc,
			})
		}
		if st2, err := st.WithDetails(br); err == nil {
			st = st2
		}
	}

	return st.Err()
}

// FromGRPC — обратное преобразование gRPC error → ErrorResponse.
// Понимает ErrorInfo/BadRequest и старый формат деталей (structpb.Struct).
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}
	out := New(st.Message(), st.Code(), nil)
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			if x.GetReason() != "" {
				out.Reason = Reason(x.GetReason())
			}
			if md := x.GetMetadata(); len(md) > 0 {
				out = out.WithDetails(md)
			}
		case *errdetails.BadRequest:
			vs := make([]FieldViolation, 0, len(x.GetFieldViolations()))
			for _, fv := range x.GetFieldViolations() {
				vs = append(vs, FieldViolation{
					Field:       fv.GetField(),
					Description: fv.GetDescription(),
				})
			}
			out = out.WithViolations(vs)
		case *structpb.Struct:
			md := make(map[string]string, len(x.GetFields()))
			for k, v := range x.GetFields() {
				if s, ok := v.GetKind().(*structpb.Value_StringValue); ok {
					md[k] = s.StringValue
				}
			}
			out = out.WithDetails(md)
		}
	}
	return out
}
