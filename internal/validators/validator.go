package validators

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/petlove/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by CustomValidator.Validate when a request
// struct fails its `validate` tags.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// CustomValidator plugs go-playground/validator into echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator with the domain tags registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	must(v.RegisterValidation("notice_category", func(fl validator.FieldLevel) bool {
		return models.NoticeCategory(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("notice_species", func(fl validator.FieldLevel) bool {
		return models.Species(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("notice_sex", func(fl validator.FieldLevel) bool {
		return models.NoticeSex(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("pet_species", func(fl validator.FieldLevel) bool {
		return models.PetSpecies(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("pet_sex", func(fl validator.FieldLevel) bool {
		return models.PetSex(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	}))
	must(v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	}))

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please provide a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "containsany":
		return fmt.Sprintf("%s must contain at least one number", fe.Field())
	case "objectid":
		return "This id is not valid"
	case "phone":
		return "Please provide a valid phone number"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "notice_category", "notice_species", "notice_sex", "pet_species", "pet_sex":
		return fmt.Sprintf("%s has an unsupported value %q", fe.Field(), fe.Value())
	}
	return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
