package service

import (
	"testing"
	"time"

	"github.com/ctoRVC/RV-Connect/internal/model"
	"github.com/ctoRVC/RV-Connect/pkg/crypto"
)

func newFeedServiceForTest(t *testing.T) (*FeedService, *fakePostStore, *fakeUserStore, *crypto.FeedCipher) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key failed: %v", err)
	}
	cipher, err := crypto.NewFeedCipher(key)
	if err != nil {
		t.Fatalf("new cipher failed: %v", err)
	}
	posts := newFakePostStore()
	users := newFakeUserStore()
	return NewFeedService(posts, users, cipher), posts, users, cipher
}

func TestRenderFeed(t *testing.T) {
	svc, posts, users, cipher := newFeedServiceForTest(t)
	alice := users.addUser("alice", "alice@rvce.edu.in")
	bob := users.addUser("bob", "bob@rvce.edu.in")

	created := time.Date(2023, 9, 24, 8, 30, 0, 0, time.UTC)
	_ = posts.Create(&model.Post{
		Content:   "hello campus",
		AuthorID:  alice.ID,
		CreatedAt: created,
	})
	_ = posts.Create(&model.Post{
		Content:         "hi @bob",
		AuthorID:        alice.ID,
		MentionedUserID: &bob.ID,
		CreatedAt:       created.Add(time.Minute),
	})

	items, err := svc.Render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}

	first := items[0]
	if first.Content != "hello campus" {
		t.Fatalf("unexpected content %q", first.Content)
	}
	if first.DatePosted != "2023-09-24 08:30:00" {
		t.Fatalf("unexpected timestamp format %q", first.DatePosted)
	}
	// 作者名是密文，持钥方可精确还原
	if first.Author == "alice" {
		t.Fatal("author username must not appear in cleartext")
	}
	plain, err := cipher.Decrypt(first.Author)
	if err != nil || plain != "alice" {
		t.Fatalf("round-trip failed: %q err=%v", plain, err)
	}
	if first.MentionedUser != nil {
		t.Fatalf("expected no mention, got %+v", first.MentionedUser)
	}

	// 被提及用户按用户名明文返回
	second := items[1]
	if second.MentionedUser == nil || second.MentionedUser.Username != "bob" {
		t.Fatalf("expected mention of bob, got %+v", second.MentionedUser)
	}
}

func TestRenderFeedEmpty(t *testing.T) {
	svc, _, _, _ := newFeedServiceForTest(t)

	items, err := svc.Render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty feed, got %d", len(items))
	}
}
