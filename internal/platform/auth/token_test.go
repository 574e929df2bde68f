package auth

import "testing"

func TestToken(t *testing.T) {
	if got := Token("abc-123"); got != "token_abc-123" {
		t.Errorf("Token() = %q, want token_abc-123", got)
	}
}

func TestUserID(t *testing.T) {
	tests := []struct {
		token  string
		wantID string
		wantOK bool
	}{
		{"token_abc-123", "abc-123", true},
		{"token_", "", false},
		{"bearer_abc", "", false},
		{"", "", false},
		{"abc-123", "", false},
	}
	for _, tt := range tests {
		id, ok := UserID(tt.token)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("UserID(%q) = (%q, %v), want (%q, %v)", tt.token, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	id, ok := UserID(Token("user-9"))
	if !ok || id != "user-9" {
		t.Errorf("round trip failed: (%q, %v)", id, ok)
	}
}
