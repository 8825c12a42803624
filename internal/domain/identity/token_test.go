package identity

import (
	"testing"
	"time"
)

var tokenNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestIssuer(t *testing.T, ttl time.Duration) *TokenIssuer {
	t.Helper()
	iss, err := NewTokenIssuer(ttl)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	iss.SetClock(func() time.Time { return tokenNow })
	return iss
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	u := User{ID: "u1", FirstName: "Mary", LastName: "Thompson", Role: RoleCaregiver}

	token, err := iss.Issue(u)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	sub, role, err := iss.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if sub != "u1" {
		t.Errorf("sub = %q, want u1", sub)
	}
	if role != RoleCaregiver {
		t.Errorf("role = %q, want caregiver", role)
	}
}

func TestIssue_InvalidRole(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	if _, err := iss.Issue(User{ID: "u1", Role: Role("admin")}); err == nil {
		t.Error("Issue() with unknown role succeeded, want error")
	}
}

func TestVerify_Expired(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	token, err := iss.Issue(User{ID: "u1", Role: RolePatient})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	iss.SetClock(func() time.Time { return tokenNow.Add(2 * time.Hour) })
	if _, _, err := iss.Verify(token); err == nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestVerify_Garbage(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	if _, _, err := iss.Verify("not-a-token"); err == nil {
		t.Error("Verify() accepted garbage input")
	}
}

func TestVerify_RejectsForeignKey(t *testing.T) {
	a := newTestIssuer(t, time.Hour)
	b := newTestIssuer(t, time.Hour)
	token, err := a.Issue(User{ID: "u1", Role: RolePatient})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, _, err := b.Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with a different key")
	}
}
