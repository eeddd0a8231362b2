package clusters

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultMinGroupSize is the number of estimates a cluster needs before it is
// classified.
const DefaultMinGroupSize = 10

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report json names so errors match the configuration keys.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Params holds the classification thresholds.
type Params struct {
	// AccGoal is the inclusive upper bound on Error for an estimate to pass.
	AccGoal float64 `json:"acc_goal"`
	// ConfidenceLevel is the inclusive minimum pass rate of a good performer.
	ConfidenceLevel float64 `json:"confidence_level" validate:"gte=0,lte=1"`
	// MinGroupSize is the minimum number of estimates for a cluster to be classified.
	MinGroupSize int `json:"min_group_size" validate:"gte=1"`
}

// NewParams returns Params with MinGroupSize set to DefaultMinGroupSize.
func NewParams(accGoal, confidenceLevel float64) Params {
	return Params{
		AccGoal:         accGoal,
		ConfidenceLevel: confidenceLevel,
		MinGroupSize:    DefaultMinGroupSize,
	}
}

// Validate reports the first violated threshold as an *InputError.
func (p Params) Validate() error {
	if math.IsNaN(p.AccGoal) || math.IsInf(p.AccGoal, 0) {
		return paramError("acc_goal", "must be a finite number, got %v", p.AccGoal)
	}
	if math.IsNaN(p.ConfidenceLevel) {
		return paramError("confidence_level", "must be a number between 0 and 1, got NaN")
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into an *InputError naming
// the first failing field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	switch e.Tag() {
	case "gte":
		return paramError(e.Field(), "must be at least %s, got %v", e.Param(), e.Value())
	case "lte":
		return paramError(e.Field(), "must not exceed %s, got %v", e.Param(), e.Value())
	default:
		return paramError(e.Field(), "validation failed (%s)", e.Tag())
	}
}
