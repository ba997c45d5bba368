package service

import (
	"github.com/ctoRVC/RV-Connect/pkg/crypto"
)

// 信息流时间字段的展示格式
const feedTimeLayout = "2006-01-02 15:04:05"

// FeedMention 信息流中被提及的用户（用户名明文返回）
type FeedMention struct {
	Username string `json:"username"`
}

// FeedItem 公开信息流中的一条帖子
// Author 为作者用户名经对称加密后的密文，只有持有密钥方可还原
// 这是信息流接口特有的策略：其他接口中作者身份均为明文
type FeedItem struct {
	Content       string       `json:"content"`
	DatePosted    string       `json:"date_posted"`
	Author        string       `json:"author"`
	MentionedUser *FeedMention `json:"mentioned_user"`
}

// FeedService 公开信息流服务
type FeedService struct {
	postStore PostStore
	userStore UserStore
	cipher    *crypto.FeedCipher
}

// NewFeedService 创建FeedService实例
func NewFeedService(postStore PostStore, userStore UserStore, cipher *crypto.FeedCipher) *FeedService {
	return &FeedService{postStore: postStore, userStore: userStore, cipher: cipher}
}

// Render 渲染全部帖子的信息流
// 作者用户名加密返回；被提及用户（如有）按用户名明文返回
func (s *FeedService) Render() ([]*FeedItem, error) {
	posts, err := s.postStore.ListAll()
	if err != nil {
		return nil, err
	}

	// 批量取出涉及的用户，避免逐条查询
	idSet := make(map[uint]struct{})
	for _, p := range posts {
		idSet[p.AuthorID] = struct{}{}
		if p.MentionedUserID != nil {
			idSet[*p.MentionedUserID] = struct{}{}
		}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	users, err := s.userStore.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	usernames := make(map[uint]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	items := make([]*FeedItem, 0, len(posts))
	for _, p := range posts {
		author, err := s.cipher.Encrypt(usernames[p.AuthorID])
		if err != nil {
			return nil, err
		}

		item := &FeedItem{
			Content:    p.Content,
			DatePosted: p.CreatedAt.Format(feedTimeLayout),
			Author:     author,
		}
		if p.MentionedUserID != nil {
			if name, ok := usernames[*p.MentionedUserID]; ok {
				item.MentionedUser = &FeedMention{Username: name}
			}
		}
		items = append(items, item)
	}
	return items, nil
}
