package members

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	config := Config{
		SecretKey:      []byte("test-secret"),
		Issuer:         "foodloop-test",
		AccessTokenExp: time.Hour,
	}

	return NewService(NewRepository(db), config, zaptest.NewLogger(t))
}

func testDraft(email string) MemberDraft {
	return MemberDraft{
		MemberBase: MemberBase{
			LoginEmail: email,
			Contact: Contact{
				FirstName: "Alex",
				LastName:  "de Vries",
			},
		},
		Password: "correct horse battery",
	}
}

func TestService_Register(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	member, err := svc.Register(ctx, testDraft("alex@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if member.LoginEmail != "alex@example.com" {
		t.Errorf("Expected login email to round-trip, got '%s'", member.LoginEmail)
	}
	if member.ID.String() == "" || member.CreatedAt.IsZero() {
		t.Error("Expected assigned identity and timestamps")
	}
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, testDraft("alex@example.com")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Register(ctx, testDraft("alex@example.com"))
	if !errors.Is(err, ErrDuplicateMember) {
		t.Errorf("Expected ErrDuplicateMember, got %v", err)
	}
}

func TestService_LoginAndAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, testDraft("alex@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, member, err := svc.Login(ctx, "alex@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a signed token")
	}
	if member.ID != registered.ID {
		t.Errorf("Expected member %s, got %s", registered.ID, member.ID)
	}

	resolved, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resolved.ID != registered.ID {
		t.Errorf("Expected member %s, got %s", registered.ID, resolved.ID)
	}
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, testDraft("alex@example.com")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, _, err := svc.Login(ctx, "alex@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	_, _, err = svc.Login(ctx, "nobody@example.com", "correct horse battery")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestService_AuthenticateGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid, got %v", err)
	}
}

func TestService_UpdateContact(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	member, err := svc.Register(ctx, testDraft("alex@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	updated, err := svc.UpdateContact(ctx, member.ID, Contact{
		FirstName: "Alexandra",
		Phones:    []string{"+31612345678"},
	})
	if err != nil {
		t.Fatalf("UpdateContact failed: %v", err)
	}

	if updated.Contact.FirstName != "Alexandra" {
		t.Errorf("Expected updated first name, got '%s'", updated.Contact.FirstName)
	}
	if len(updated.Contact.Phones) != 1 {
		t.Errorf("Expected one phone, got %d", len(updated.Contact.Phones))
	}
	if updated.LoginEmail != "alex@example.com" {
		t.Error("Login email must not change")
	}
}
