package database

import (
	"errors"

	"gorm.io/gorm"
)

// isNotFound 判断是否为GORM记录不存在错误
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// unscoped 用于Preload：已软删除的分类仍然作为图书的分类返回
func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
