package validator

// tagMap covers the tags this library actually emits on its option and
// contact structs.
var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"email":     "invalid_email",
	"oneof":     "invalid_choice",
	"min":       "too_short",
	"max":       "too_long",
	"gte":       "too_small_or_equal",
	"lte":       "too_large_or_equal",
	"numeric":   "only_numbers_allowed",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
