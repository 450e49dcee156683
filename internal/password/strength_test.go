package password_test

import (
	"strings"
	"testing"

	"github.com/nfrund/authflow/internal/password"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		want     password.Result
		strong   bool
	}{
		{
			name:     "empty password never matches",
			password: "",
			confirm:  "",
			want:     password.Result{},
		},
		{
			name:     "all five rules",
			password: "Aa1!aaaa",
			confirm:  "Aa1!aaaa",
			want:     password.Result{MinLength: true, HasUppercase: true, HasLowercase: true, HasNumber: true, HasSpecial: true, Matches: true},
			strong:   true,
		},
		{
			name:     "exactly four rules is strong",
			password: "Aa1aaaaa",
			confirm:  "different",
			want:     password.Result{MinLength: true, HasUppercase: true, HasLowercase: true, HasNumber: true},
			strong:   true,
		},
		{
			name:     "three rules is not strong",
			password: "aaaaaaa1",
			confirm:  "aaaaaaa1",
			want:     password.Result{MinLength: true, HasLowercase: true, HasNumber: true, Matches: true},
		},
		{
			name:     "short but varied",
			password: "Aa1!",
			confirm:  "Aa1!",
			want:     password.Result{HasUppercase: true, HasLowercase: true, HasNumber: true, HasSpecial: true, Matches: true},
			strong:   true,
		},
		{
			name:     "space and non-ascii letters count as special",
			password: "é a",
			confirm:  "",
			want:     password.Result{HasLowercase: true, HasSpecial: true},
		},
		{
			name:     "length counts characters not bytes",
			password: "ééééééé",
			confirm:  "ééééééé",
			want:     password.Result{HasSpecial: true, Matches: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := password.Evaluate(tt.password, tt.confirm)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.strong, got.Strong())
			assert.Equal(t, tt.strong && tt.want.Matches, got.CanSubmit())
		})
	}
}

func TestStrongIffAtLeastFourRules(t *testing.T) {
	alphabet := []string{"A", "a", "1", "!", "Z", "z", "9", " "}

	// Walk every password of up to four symbols plus padded variants.
	var candidates []string
	var build func(prefix string, depth int)
	build = func(prefix string, depth int) {
		candidates = append(candidates, prefix, prefix+strings.Repeat("x", 8))
		if depth == 0 {
			return
		}
		for _, s := range alphabet {
			build(prefix+s, depth-1)
		}
	}
	build("", 4)

	for _, p := range candidates {
		r := password.Evaluate(p, p)
		rules := 0
		for _, rule := range r.Rules() {
			if rule.Satisfied {
				rules++
			}
		}
		assert.Equal(t, rules, r.Score(), "score for %q", p)
		assert.Equal(t, rules >= 4, r.Strong(), "strong for %q", p)
		assert.Equal(t, p != "", r.Matches, "match for %q", p)
	}
}

func TestMatchRequiresEqualNonEmpty(t *testing.T) {
	assert.False(t, password.Evaluate("Secret1!", "Secret1").Matches)
	assert.False(t, password.Evaluate("", "x").Matches)
	assert.True(t, password.Evaluate("x", "x").Matches)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "", password.Evaluate("", "").Label())
	assert.Equal(t, "Weak", password.Evaluate("a", "").Label())
	assert.Equal(t, "Fair", password.Evaluate("aA1", "").Label())
	assert.Equal(t, "Strong", password.Evaluate("aA1!", "").Label())
	assert.Equal(t, "Very strong", password.Evaluate("aA1!aaaa", "").Label())
}
