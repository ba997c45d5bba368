package service

import (
	"errors"
	"strconv"

	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// resolveUser 双模标识符解析：先尝试按数值ID查找，失败后按用户名精确匹配
// 好友请求列表、按作者查帖、用户查询和提及解析共用这一个入口
func resolveUser(store UserStore, identifier string) (*model.User, error) {
	if id, err := strconv.ParseUint(identifier, 10, 32); err == nil {
		user, err := store.GetByID(uint(id))
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// ID未命中，继续按用户名匹配
	}

	user, err := store.GetByUsername(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("user %q does not exist", identifier)
		}
		return nil, err
	}
	return user, nil
}
