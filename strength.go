package ulpforms

import "strings"

// PasswordStrength is the live password requirement readout shown alongside
// the password field. Each condition is independent and recomputed on every
// password or email change; it informs the user but is not a submission gate.
type PasswordStrength struct {
	ValidLength        bool `json:"valid_length"`
	HasNumber          bool `json:"has_number"`
	HasLetter          bool `json:"has_letter"`
	HasSpecial         bool `json:"has_special"`
	ContainsEmailLocal bool `json:"contains_email_local"`
}

// Satisfied reports whether every requirement is met. The email-local check
// is inverted: the password must NOT contain the email's local part.
func (s PasswordStrength) Satisfied() bool {
	return s.ValidLength && s.HasNumber && s.HasLetter && s.HasSpecial && !s.ContainsEmailLocal
}

// EvaluatePasswordStrength computes the requirement readout for the current
// password and email values.
func EvaluatePasswordStrength(password, email string) PasswordStrength {
	return PasswordStrength{
		ValidLength:        len(password) >= 8 && len(password) <= 20,
		HasNumber:          strings.ContainsAny(password, "0123456789"),
		HasLetter:          containsLetter(password),
		HasSpecial:         strings.ContainsAny(password, "@!#$^"),
		ContainsEmailLocal: containsEmailLocal(password, email),
	}
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// containsEmailLocal is a case-insensitive substring check against the local
// part of the email; empty password or email never matches.
func containsEmailLocal(password, email string) bool {
	if password == "" || email == "" {
		return false
	}
	local := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	if local == "" {
		return false
	}
	return strings.Contains(strings.ToLower(password), local)
}
