package usecase_event

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/humanbelnik/movienight/internal/model"
)

type CreateEventInput struct {
	Title        string          `json:"title" validate:"required,max=100"`
	Description  string          `json:"description" validate:"max=1000"`
	Date         time.Time       `json:"date" validate:"required"`
	Location     string          `json:"location" validate:"max=200"`
	MovieOptions []model.MovieID `json:"movie_options" validate:"required,movie_options,dive,gt=0"`
	Guests       []string        `json:"guests" validate:"required,min=1"`
}

// UpdateEventInput replaces the editable fields. The date is not checked against the clock.
type UpdateEventInput struct {
	Title        string          `json:"title" validate:"required,max=100"`
	Description  string          `json:"description" validate:"max=1000"`
	Date         time.Time       `json:"date" validate:"required"`
	Location     string          `json:"location" validate:"max=200"`
	MovieOptions []model.MovieID `json:"movie_options" validate:"required,movie_options,dive,gt=0"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("movie_options", func(fl validator.FieldLevel) bool {
		n := fl.Field().Len()
		return n >= model.MinMovieOptions && n <= model.MaxMovieOptions
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldError converts the first validator failure into a field scoped error.
func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Join(model.ErrInternal, err)
	}

	fe := verrs[0]
	field := fe.Field()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}

	switch fe.Tag() {
	case "required":
		return model.NewFieldError(field, "is required")
	case "max":
		if fe.Kind() == reflect.Slice {
			return model.NewFieldError(field, "must contain at most %s items", fe.Param())
		}
		return model.NewFieldError(field, "must be at most %s characters", fe.Param())
	case "min":
		return model.NewFieldError(field, "must contain at least %s items", fe.Param())
	case "movie_options":
		return model.NewFieldError(field, "must contain between %d and %d movies", model.MinMovieOptions, model.MaxMovieOptions)
	case "gt":
		return model.NewFieldError(field, "must contain positive ids")
	}
	return model.NewFieldError(field, "failed on %s", fe.Tag())
}

// dedupeOptions keeps the first occurrence of every movie id.
func dedupeOptions(ids []model.MovieID) []model.MovieID {
	seen := make(map[model.MovieID]struct{}, len(ids))
	out := make([]model.MovieID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
