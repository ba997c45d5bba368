package service

import (
	"sort"

	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// 内存版仓储实现，仅测试使用

type fakeUserStore struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*model.User)}
}

func (s *fakeUserStore) addUser(username, email string) *model.User {
	u := &model.User{Username: username, Email: email}
	_ = s.Create(u)
	return u
}

func (s *fakeUserStore) Create(user *model.User) error {
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByIDs(ids []uint) ([]*model.User, error) {
	var users []*model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByUsernameOrEmail(identifier string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) SearchByUsername(username string) ([]*model.User, error) {
	var users []*model.User
	for _, u := range s.users {
		if u.Username == username {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) Update(user *model.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) Delete(id uint) error {
	delete(s.users, id)
	return nil
}

type fakePostStore struct {
	posts     map[uint]*model.Post
	nextID    uint
	lastLimit int
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[uint]*model.Post)}
}

func (s *fakePostStore) Create(post *model.Post) error {
	s.nextID++
	post.ID = s.nextID
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostStore) GetByID(id uint) (*model.Post, error) {
	if p, ok := s.posts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakePostStore) Update(post *model.Post) error {
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostStore) Delete(id uint) error {
	delete(s.posts, id)
	return nil
}

func (s *fakePostStore) ListRecent(limit int) ([]*model.Post, error) {
	s.lastLimit = limit
	posts := s.all()
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (s *fakePostStore) ListByAuthor(authorID uint) ([]*model.Post, error) {
	var posts []*model.Post
	for _, p := range s.all() {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (s *fakePostStore) ListAll() ([]*model.Post, error) {
	posts := s.all()
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (s *fakePostStore) all() []*model.Post {
	posts := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	return posts
}

type fakeCommentStore struct {
	comments map[uint]*model.Comment
	nextID   uint
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[uint]*model.Comment)}
}

func (s *fakeCommentStore) Create(comment *model.Comment) error {
	s.nextID++
	comment.ID = s.nextID
	s.comments[comment.ID] = comment
	return nil
}

func (s *fakeCommentStore) GetByID(id uint) (*model.Comment, error) {
	if cm, ok := s.comments[id]; ok {
		return cm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeCommentStore) ListByPost(postID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	for _, cm := range s.comments {
		if cm.PostID == postID {
			comments = append(comments, cm)
		}
	}
	return comments, nil
}

func (s *fakeCommentStore) ListByCommenter(commenterID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	for _, cm := range s.comments {
		if cm.CommenterID == commenterID {
			comments = append(comments, cm)
		}
	}
	return comments, nil
}

func (s *fakeCommentStore) Delete(id uint) error {
	delete(s.comments, id)
	return nil
}

type fakeFriendStore struct {
	requests    map[uint]*model.FriendRequest
	friendships map[uint]*model.Friendship
	nextID      uint
}

func newFakeFriendStore() *fakeFriendStore {
	return &fakeFriendStore{
		requests:    make(map[uint]*model.FriendRequest),
		friendships: make(map[uint]*model.Friendship),
	}
}

func (s *fakeFriendStore) CreateRequest(req *model.FriendRequest) error {
	s.nextID++
	req.ID = s.nextID
	s.requests[req.ID] = req
	return nil
}

func (s *fakeFriendStore) GetRequestByID(id uint) (*model.FriendRequest, error) {
	if r, ok := s.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeFriendStore) ListSent(senderID uint) ([]*model.FriendRequest, error) {
	var reqs []*model.FriendRequest
	for _, r := range s.requests {
		if r.SenderID == senderID {
			reqs = append(reqs, r)
		}
	}
	return reqs, nil
}

func (s *fakeFriendStore) ListReceived(receiverID uint) ([]*model.FriendRequest, error) {
	var reqs []*model.FriendRequest
	for _, r := range s.requests {
		if r.ReceiverID == receiverID {
			reqs = append(reqs, r)
		}
	}
	return reqs, nil
}

func (s *fakeFriendStore) HasPendingRequest(senderID, receiverID uint) (bool, error) {
	for _, r := range s.requests {
		if r.SenderID == senderID && r.ReceiverID == receiverID && r.Status == model.RequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFriendStore) AreFriends(a, b uint) (bool, error) {
	ua, ub := model.NormalizePair(a, b)
	for _, f := range s.friendships {
		if f.UserAID == ua && f.UserBID == ub {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFriendStore) AcceptRequest(req *model.FriendRequest) error {
	ua, ub := model.NormalizePair(req.SenderID, req.ReceiverID)
	s.nextID++
	s.friendships[s.nextID] = &model.Friendship{ID: s.nextID, UserAID: ua, UserBID: ub}
	delete(s.requests, req.ID)
	return nil
}

func (s *fakeFriendStore) DeleteRequest(id uint) error {
	delete(s.requests, id)
	return nil
}

func (s *fakeFriendStore) ListFriendships(userID uint) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	for _, f := range s.friendships {
		if f.UserAID == userID || f.UserBID == userID {
			friendships = append(friendships, f)
		}
	}
	return friendships, nil
}
