package services_test

import (
	"testing"

	"shopfront/internal/services"
)

func TestTokenIssueValidate(t *testing.T) {
	issuer := services.NewTokenIssuer()

	tok := issuer.Issue()
	if len(tok) != 32 {
		t.Fatalf("token length %d, want 32 hex chars", len(tok))
	}
	if !issuer.Validate(tok) {
		t.Fatal("freshly issued token did not validate")
	}
}

func TestTokenEmptyNeverValidates(t *testing.T) {
	issuer := services.NewTokenIssuer()
	if issuer.Validate("") {
		t.Fatal("empty submission validated before issue")
	}
	issuer.Issue()
	if issuer.Validate("") {
		t.Fatal("empty submission validated after issue")
	}
}

func TestTokenStaleAfterReissue(t *testing.T) {
	issuer := services.NewTokenIssuer()

	old := issuer.Issue()
	fresh := issuer.Issue()
	if old == fresh {
		t.Fatal("reissue returned the same token")
	}
	if issuer.Validate(old) {
		t.Fatal("stale token validated")
	}
	if !issuer.Validate(fresh) {
		t.Fatal("current token rejected")
	}
}

func TestTokenWrongValueFails(t *testing.T) {
	issuer := services.NewTokenIssuer()
	issuer.Issue()
	if issuer.Validate("00000000000000000000000000000000") {
		t.Fatal("forged token validated")
	}
}
