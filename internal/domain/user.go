package domain

// SignUpRequest carries the fields of the account creation form.
type SignUpRequest struct {
	FullName     string
	Email        string
	Password     string
	AgreeToTerms bool
}
