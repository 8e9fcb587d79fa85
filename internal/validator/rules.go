package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRe = regexp.MustCompile(`^[a-z0-9._-]+$`)
	platformRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{2,30}$`)
)

// registerCustomRules installs the project's validation tags. A failed
// registration is a startup defect, not a request-time condition.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'username': public profile locator, lowercase URL-safe charset.
	mustRegister("username", validateUsername)

	// 'platform': social-link platform label (free-form but URL-safe).
	mustRegister("platform", validatePlatform)
}

func validateUsername(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the 'required' tag's business
	}
	return usernameRe.MatchString(value)
}

func validatePlatform(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return platformRe.MatchString(value)
}
