// Package password scores candidate passwords against the fixed rule set
// shown on the sign-up and reset forms.
package password

import "unicode/utf8"

const (
	// MinLength is the number of characters required by the length rule.
	MinLength = 8

	// StrongThreshold is how many of the five rules must hold for a password
	// to count as strong.
	StrongThreshold = 4
)

// Result holds the outcome of every rule for one password/confirmation pair.
type Result struct {
	MinLength    bool `json:"minLength"`
	HasUppercase bool `json:"hasUppercase"`
	HasLowercase bool `json:"hasLowercase"`
	HasNumber    bool `json:"hasNumber"`
	HasSpecial   bool `json:"hasSpecial"`
	Matches      bool `json:"matches"`
}

// Rule is a single labelled entry of the strength checklist.
type Rule struct {
	Label     string
	Satisfied bool
}

// Evaluate checks password against the five strength rules and compares it
// with confirm. It has no side effects and is cheap enough to run on every
// keystroke.
func Evaluate(password, confirm string) Result {
	r := Result{
		MinLength: utf8.RuneCountInString(password) >= MinLength,
		Matches:   password != "" && password == confirm,
	}
	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			r.HasUppercase = true
		case ch >= 'a' && ch <= 'z':
			r.HasLowercase = true
		case ch >= '0' && ch <= '9':
			r.HasNumber = true
		default:
			r.HasSpecial = true
		}
	}
	return r
}

// Score returns how many of the five strength rules are satisfied.
// The match flag is not a strength rule and is not counted.
func (r Result) Score() int {
	n := 0
	for _, ok := range []bool{r.MinLength, r.HasUppercase, r.HasLowercase, r.HasNumber, r.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

// Strong reports whether at least StrongThreshold rules hold.
func (r Result) Strong() bool {
	return r.Score() >= StrongThreshold
}

// CanSubmit reports whether a reset form holding this result may be submitted.
func (r Result) CanSubmit() bool {
	return r.Strong() && r.Matches
}

// Rules returns the checklist in display order.
func (r Result) Rules() []Rule {
	return []Rule{
		{Label: "At least 8 characters", Satisfied: r.MinLength},
		{Label: "One uppercase letter", Satisfied: r.HasUppercase},
		{Label: "One lowercase letter", Satisfied: r.HasLowercase},
		{Label: "One number", Satisfied: r.HasNumber},
		{Label: "One special character", Satisfied: r.HasSpecial},
	}
}

// Label describes the aggregate strength tier.
func (r Result) Label() string {
	switch s := r.Score(); {
	case s == 0:
		return ""
	case s < 3:
		return "Weak"
	case s < StrongThreshold:
		return "Fair"
	case s < 5:
		return "Strong"
	default:
		return "Very strong"
	}
}
