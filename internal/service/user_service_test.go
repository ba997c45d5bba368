package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ctoRVC/RV-Connect/config"
	"github.com/ctoRVC/RV-Connect/pkg/jwt"
	"github.com/ctoRVC/RV-Connect/pkg/password"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "rv-connect-test",
	})
}

func TestRegisterEmailDomain(t *testing.T) {
	cases := []struct {
		name  string
		email string
		ok    bool
	}{
		{"campus email", "x@rvce.edu.in", true},
		{"outside domain", "x@gmail.com", false},
		{"empty email", "", false},
		{"suffix only as substring", "x@rvce.edu.in.evil.com", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := newFakeUserStore()
			svc := NewUserService(store, newTestJWTService(), "@rvce.edu.in")

			user, token, err := svc.Register("student", c.email, "secret123")
			if c.ok {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				if user.ID == 0 || token == "" {
					t.Fatalf("expected persisted user and token, got id=%d token=%q", user.ID, token)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			// 校验失败时不应有任何持久化
			if len(store.users) != 0 {
				t.Fatalf("expected no persisted user, got %d", len(store.users))
			}
		})
	}
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, newTestJWTService(), "@rvce.edu.in")

	user, _, err := svc.Register("student", "s@rvce.edu.in", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if !password.Verify("secret123", user.PasswordHash) {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, newTestJWTService(), "@rvce.edu.in")

	if _, _, err := svc.Register("student", "s@rvce.edu.in", "secret123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register("student", "other@rvce.edu.in", "secret123"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for duplicate username, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, newTestJWTService(), "@rvce.edu.in")

	if _, _, err := svc.Register("student", "s@rvce.edu.in", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, token, err := svc.Login("student", "secret123"); err != nil || token == "" {
		t.Fatalf("expected login success, got token=%q err=%v", token, err)
	}
	if _, _, err := svc.Login("student", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", err)
	}
	if _, _, err := svc.Login("ghost", "secret123"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestResolveDualMode(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, newTestJWTService(), "@rvce.edu.in")

	// ID会按插入顺序分配：alice=1, bob=2
	alice := store.addUser("alice", "alice@rvce.edu.in")
	bob := store.addUser("bob", "bob@rvce.edu.in")

	// 数值优先按ID解析
	if u, err := svc.Resolve("2"); err != nil || u.ID != bob.ID {
		t.Fatalf("expected bob by id, got %+v err=%v", u, err)
	}
	// 非数值按用户名解析
	if u, err := svc.Resolve("alice"); err != nil || u.ID != alice.ID {
		t.Fatalf("expected alice by username, got %+v err=%v", u, err)
	}
	// 数值未命中ID时回退到用户名匹配
	numeric := store.addUser("42", "num@rvce.edu.in")
	if u, err := svc.Resolve("42"); err != nil || u.ID != numeric.ID {
		t.Fatalf("expected username fallback for %q, got %+v err=%v", "42", u, err)
	}
	// 两种方式都未命中
	if _, err := svc.Resolve("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, newTestJWTService(), "@rvce.edu.in")
	store.addUser("alice", "alice@rvce.edu.in")

	if _, err := svc.Search(""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty username, got %v", err)
	}
	users, err := svc.Search("alice")
	if err != nil || len(users) != 1 {
		t.Fatalf("expected one match, got %d err=%v", len(users), err)
	}
	// 精确匹配，区分大小写
	users, err = svc.Search("Alice")
	if err != nil || len(users) != 0 {
		t.Fatalf("expected no match for different case, got %d err=%v", len(users), err)
	}
}

func TestUpdateProfileEmailDomain(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, newTestJWTService(), "@rvce.edu.in")
	u := store.addUser("alice", "alice@rvce.edu.in")

	if _, err := svc.UpdateProfile(u.ID, "", "alice@gmail.com", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for outside domain, got %v", err)
	}
	updated, err := svc.UpdateProfile(u.ID, "alice2", "alice2@rvce.edu.in", "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "alice2" || updated.Email != "alice2@rvce.edu.in" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}
