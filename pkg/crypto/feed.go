package crypto

import (
	"errors"

	"github.com/fernet/fernet-go"
)

// FeedCipher 信息流作者名的对称加密器
// 使用Fernet（AES-128-CBC + HMAC-SHA256），可逆：持有相同密钥方可解密
// 密钥由配置注入，进程内全局共享一把

type FeedCipher struct {
	key *fernet.Key
}

// NewFeedCipher 从base64编码的密钥创建加密器
func NewFeedCipher(encodedKey string) (*FeedCipher, error) {
	if encodedKey == "" {
		return nil, errors.New("feed encryption key is empty")
	}
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, err
	}
	return &FeedCipher{key: key}, nil
}

// GenerateKey 生成一把新的随机密钥（base64编码）
// 仅用于本地开发和密钥轮换工具，生产密钥应由部署环境注入
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", err
	}
	return key.Encode(), nil
}

// Encrypt 加密明文，返回Fernet令牌字符串
func (c *FeedCipher) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), c.key)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// Decrypt 解密Fernet令牌，还原明文
// 令牌不设过期时间：信息流中的密文需要长期可还原
func (c *FeedCipher) Decrypt(token string) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{c.key})
	if msg == nil {
		return "", errors.New("invalid token or wrong key")
	}
	return string(msg), nil
}
