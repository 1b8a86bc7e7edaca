package dto

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

var registerOnce sync.Once

// RegisterValidators 注册自定义校验标签
//   - sortkey:   none | name | price | category
//   - sortorder: asc | desc
//
// 路由初始化时调用一次，重复调用无副作用
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
			_, err := book.ParseSortKey(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("sortorder", func(fl validator.FieldLevel) bool {
			_, err := book.ParseSortOrder(fl.Field().String())
			return err == nil
		})
	})
}
