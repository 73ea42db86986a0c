package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// photoURLPattern mirrors the avatar validator of the original data model.
var photoURLPattern = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&//=]*)`)

// IsPhotoURL reports whether v looks like an http(s) picture link.
func IsPhotoURL(v string) bool {
	return photoURLPattern.MatchString(v)
}

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the photourl rule for avatar and card links.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("photourl", func(fl validator.FieldLevel) bool {
			return IsPhotoURL(fl.Field().String())
		})
	}
}

// Message converts a binding error into a single user-visible sentence.
// The first offending field wins; fields are ordered for stable output.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return "Invalid request payload"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fes := make([]validator.FieldError, len(verrs))
		copy(fes, verrs)
		sort.Slice(fes, func(i, j int) bool { return fes[i].Field() < fes[j].Field() })
		fe := fes[0]
		return fe.Field() + " " + formatFieldError(fe)
	}

	return "Invalid request payload"
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url", "photourl":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid id"
	case "min":
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "len":
		return "must be exactly " + param + " characters long"
	default:
		if param != "" {
			return "failed validation for '" + tag + "' with parameter '" + param + "'"
		}
		return "failed validation for '" + tag + "'"
	}
}
