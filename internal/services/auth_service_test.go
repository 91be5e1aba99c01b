package services_test

import (
	"testing"

	"royalstudy/internal/repos"
	"royalstudy/internal/services"
)

func TestLoginAndSession(t *testing.T) {
	db := seededDB(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db), TokenSecret: "test-secret"}

	if _, _, err := svc.Login("sid-1", "layla@royalstudy.test", "wrongpass!"); err != services.ErrBadCreds {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, _, err := svc.Login("sid-1", "nobody@royalstudy.test", "Passw0rd!"); err != services.ErrBadCreds {
		t.Fatalf("unknown email must read as bad creds, got %v", err)
	}

	u, token, err := svc.Login("sid-1", "layla@royalstudy.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != "USER" || token == "" {
		t.Fatalf("bad login result: %+v token=%q", u, token)
	}

	cur, err := svc.CurrentUser("sid-1")
	if err != nil || cur.ID != u.ID {
		t.Fatalf("session not bound: %v %+v", err, cur)
	}

	fromTok, err := svc.UserFromToken(token)
	if err != nil || fromTok.ID != u.ID {
		t.Fatalf("token does not resolve to user: %v", err)
	}
	if _, err := svc.UserFromToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}

	if err := svc.Logout("sid-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CurrentUser("sid-1"); err == nil {
		t.Fatal("session survives logout")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := seededDB(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db), TokenSecret: "test-secret"}

	if _, _, err := svc.Register("sid-2", "layla@royalstudy.test", "Layla Again", "Passw0rd!"); err != services.ErrEmailTaken {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}

	u, token, err := svc.Register("sid-2", "new@royalstudy.test", "New User", "S3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != "USER" {
		t.Fatalf("registered role must be USER, got %q", u.Role)
	}
	if token == "" {
		t.Fatal("register must log the user in")
	}
	if cur, err := svc.CurrentUser("sid-2"); err != nil || cur.Email != "new@royalstudy.test" {
		t.Fatalf("register did not bind session: %v", err)
	}
}
