// Package validation holds the side-effect free rules applied before any
// recipe, membership or user write.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/foodgram/internal/apperr"
	"github.com/sbilibin2017/foodgram/internal/models"
)

const (
	// ReservedUsername cannot be registered because it collides with /users/me/.
	ReservedUsername = "me"

	minUsernameLength = 2
	maxUsernameLength = 150

	// maxStoredInt is the largest value an INTEGER column holds.
	maxStoredInt = math.MaxInt32
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// IngredientLines rejects empty lists, repeated ingredient ids and amounts below 1.
func IngredientLines(lines []models.IngredientLine) error {
	if len(lines) == 0 {
		return apperr.NewValidation("ingredients", "at least one ingredient is required")
	}

	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.IngredientID]; ok {
			return apperr.NewValidation("ingredients", "ingredients must not repeat (ingredient %d is listed twice)", line.IngredientID)
		}
		seen[line.IngredientID] = struct{}{}
	}

	for _, line := range lines {
		if err := Amount(line.Amount); err != nil {
			return err
		}
	}
	return nil
}

// Amount requires an ingredient amount between 1 and the INTEGER maximum.
func Amount(amount int) error {
	if amount < 1 {
		return apperr.NewValidation("amount", "ingredient amount cannot be less than 1")
	}
	if amount > maxStoredInt {
		return apperr.NewValidation("amount", "ingredient amount cannot be greater than %d", maxStoredInt)
	}
	return nil
}

// CookingTime requires at least one minute.
func CookingTime(minutes int) error {
	if minutes < 1 {
		return apperr.NewValidation("cooking_time", "cooking time cannot be less than 1 minute")
	}
	if minutes > maxStoredInt {
		return apperr.NewValidation("cooking_time", "cooking time cannot be greater than %d minutes", maxStoredInt)
	}
	return nil
}

// TagIDs requires a non-empty list of distinct tags that all exist in known.
func TagIDs(ids []int64, known []models.Tag) error {
	if len(ids) == 0 {
		return apperr.NewValidation("tags", "at least one tag is required")
	}

	existing := make(map[int64]struct{}, len(known))
	for _, tag := range known {
		existing[tag.ID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			return apperr.NewValidation("tags", "tag %d does not exist", id)
		}
		if _, ok := seen[id]; ok {
			return apperr.NewValidation("tags", "tags must be unique")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Username applies the registration rules for usernames.
func Username(username string) error {
	trimmed := strings.TrimSpace(username)
	if len([]rune(trimmed)) < minUsernameLength {
		return apperr.NewValidation("username", "username must be at least %d characters long", minUsernameLength)
	}
	if len([]rune(trimmed)) > maxUsernameLength {
		return apperr.NewValidation("username", "username must be at most %d characters long", maxUsernameLength)
	}
	if trimmed == ReservedUsername {
		return apperr.NewValidation("username", "username '%s' is reserved", ReservedUsername)
	}
	if !usernamePattern.MatchString(trimmed) {
		return apperr.NewValidation("username", "username may contain only letters, digits and . @ + - _")
	}
	return nil
}

// SelfFollow rejects a follow where follower and author are the same user.
func SelfFollow(followerID, authorID int64) error {
	if followerID == authorID {
		return apperr.NewValidation("author", "you cannot subscribe to yourself")
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return Username(fl.Field().String()) == nil
	})
	return v
}

// Struct validates request DTOs annotated with `validate` tags and converts
// the first failure into a ValidationError.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.NewValidation("", "invalid request: %v", err)
	}

	fe := fieldErrs[0]
	field := fe.Field()
	if fe.Tag() == "username" {
		if uerr := Username(fmt.Sprint(fe.Value())); uerr != nil {
			return uerr
		}
	}
	return apperr.NewValidation(field, "failed on the '%s' rule", ruleName(fe))
}

func ruleName(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
