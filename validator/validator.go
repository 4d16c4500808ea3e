// Package validator wraps go-playground/validator behind a process-wide
// instance and maps violation tags to stable machine reasons.
package validator

import play "github.com/go-playground/validator/v10"

var v *play.Validate

func init() {
	v = play.New()
}

// Instance exposes the shared validator for callers that need custom
// rules.
func Instance() *play.Validate {
	return v
}

// Validate checks a struct and returns field -> reason, or nil when the
// value is valid.
func Validate(i any) map[string]string {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	errs, ok := err.(play.ValidationErrors)
	if !ok {
		return map[string]string{"_error": "validation_failed"}
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = mapTagToCode(e.Tag())
	}
	return out
}

// TagReasons returns a copy of the tag -> reason table, for adapters that
// build structured violations (errors.FromPlayground).
func TagReasons() map[string]string {
	out := make(map[string]string, len(tagMap))
	for k, v := range tagMap {
		out[k] = v
	}
	return out
}
