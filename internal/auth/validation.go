package auth

import "regexp"

var (
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^01[0125][0-9]{8}$`)
)

// ValidateRegisterForm duplicates the upstream registration rules to save a
// round trip. The upstream remains the authority and re-validates everything.
func ValidateRegisterForm(username, email, phone, password, rePassword string) []string {
	var errs []string

	if username == "" {
		errs = append(errs, "Username is required")
	}
	if email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Invalid email")
	}
	if phone == "" {
		errs = append(errs, "Phone is required")
	} else if !phonePattern.MatchString(phone) {
		errs = append(errs, "Invalid Egyptian phone")
	}
	if password == "" {
		errs = append(errs, "Password is required")
	}
	if password != rePassword {
		errs = append(errs, "Passwords must match")
	}

	return errs
}
