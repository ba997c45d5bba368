package service

import (
	"errors"
	"testing"

	"github.com/ctoRVC/RV-Connect/internal/model"
)

func newFriendServiceForTest() (*FriendService, *fakeFriendStore, *fakeUserStore) {
	friends := newFakeFriendStore()
	users := newFakeUserStore()
	return NewFriendService(friends, users), friends, users
}

func TestSendRequestInvariants(t *testing.T) {
	svc, _, users := newFriendServiceForTest()
	alice := users.addUser("alice", "alice@rvce.edu.in")
	users.addUser("bob", "bob@rvce.edu.in")

	// 不存在的接收者
	if _, err := svc.SendRequest(alice.ID, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// 不能发给自己
	if _, err := svc.SendRequest(alice.ID, "alice"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for self request, got %v", err)
	}

	// 正常发送（按用户名）
	req, err := svc.SendRequest(alice.ID, "bob")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if req.Status != model.RequestStatusPending {
		t.Fatalf("expected pending status, got %q", req.Status)
	}

	// 同一有序对重复pending请求被拒绝
	if _, err := svc.SendRequest(alice.ID, "bob"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for duplicate pending, got %v", err)
	}
}

func TestAcceptRequest(t *testing.T) {
	svc, friends, users := newFriendServiceForTest()
	alice := users.addUser("alice", "alice@rvce.edu.in")
	bob := users.addUser("bob", "bob@rvce.edu.in")

	req, err := svc.SendRequest(bob.ID, "alice")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	// 只有接收者能接受
	if _, err := svc.Accept(bob.ID, req.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for sender accept, got %v", err)
	}

	friendship, err := svc.Accept(alice.ID, req.ID)
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	// 无序对归一化存储：小ID在前
	if friendship.UserAID != alice.ID || friendship.UserBID != bob.ID {
		t.Fatalf("unexpected pair: %d,%d", friendship.UserAID, friendship.UserBID)
	}
	// 恰好一条好友关系，请求被移除
	if len(friends.friendships) != 1 {
		t.Fatalf("expected exactly one friendship, got %d", len(friends.friendships))
	}
	if len(friends.requests) != 0 {
		t.Fatalf("expected request removed, got %d", len(friends.requests))
	}

	// 已是好友后再发请求被拒绝（任一方向）
	if _, err := svc.SendRequest(alice.ID, "bob"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for already friends, got %v", err)
	}
	if _, err := svc.SendRequest(bob.ID, "alice"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for already friends, got %v", err)
	}
}

func TestRejectRequest(t *testing.T) {
	svc, friends, users := newFriendServiceForTest()
	alice := users.addUser("alice", "alice@rvce.edu.in")
	bob := users.addUser("bob", "bob@rvce.edu.in")

	req, err := svc.SendRequest(bob.ID, "alice")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if err := svc.Reject(bob.ID, req.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for sender reject, got %v", err)
	}
	if err := svc.Reject(alice.ID, req.ID); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if len(friends.requests) != 0 {
		t.Fatalf("expected request removed, got %d", len(friends.requests))
	}
	if len(friends.friendships) != 0 {
		t.Fatalf("reject must not create a friendship, got %d", len(friends.friendships))
	}
	if err := svc.Reject(alice.ID, req.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after reject, got %v", err)
	}
}

func TestListSentReceivedDualMode(t *testing.T) {
	svc, _, users := newFriendServiceForTest()
	alice := users.addUser("alice", "alice@rvce.edu.in")
	bob := users.addUser("bob", "bob@rvce.edu.in")
	carol := users.addUser("carol", "carol@rvce.edu.in")

	if _, err := svc.SendRequest(alice.ID, "bob"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := svc.SendRequest(carol.ID, "bob"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	// 按用户名解析
	sent, err := svc.ListSent("alice")
	if err != nil || len(sent) != 1 || sent[0].ReceiverID != bob.ID {
		t.Fatalf("unexpected sent list: %v err=%v", sent, err)
	}
	// 按数值ID解析
	received, err := svc.ListReceived("2")
	if err != nil || len(received) != 2 {
		t.Fatalf("expected two received requests, got %d err=%v", len(received), err)
	}
	// 无法解析的标识符
	if _, err := svc.ListSent("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFriends(t *testing.T) {
	svc, _, users := newFriendServiceForTest()
	alice := users.addUser("alice", "alice@rvce.edu.in")
	bob := users.addUser("bob", "bob@rvce.edu.in")
	carol := users.addUser("carol", "carol@rvce.edu.in")

	req1, _ := svc.SendRequest(bob.ID, "alice")
	if _, err := svc.Accept(alice.ID, req1.ID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	req2, _ := svc.SendRequest(carol.ID, "alice")
	if _, err := svc.Accept(alice.ID, req2.ID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	got, err := svc.ListFriends(alice.ID)
	if err != nil || len(got) != 2 {
		t.Fatalf("expected two friends, got %d err=%v", len(got), err)
	}
	names := map[string]bool{}
	for _, u := range got {
		names[u.Username] = true
	}
	if !names["bob"] || !names["carol"] {
		t.Fatalf("unexpected friends: %v", names)
	}
}
