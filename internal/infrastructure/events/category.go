package events

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/category"
)

const entityCategory = "category"

// CategoryPayload 分类事件数据
type CategoryPayload struct {
	Name string `json:"name"`
}

type categoryService struct {
	category.Service
	pub Publisher
}

// NewCategoryService 包装分类服务，写操作成功后发布事件
func NewCategoryService(next category.Service, pub Publisher) category.Service {
	return &categoryService{Service: next, pub: pub}
}

func (s *categoryService) Create(ctx context.Context, in category.CreateInput) (*category.Category, error) {
	c, err := s.Service.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityCategory, ActionCreated, c.ID, CategoryPayload{Name: c.Name})
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, patch category.Patch) (*category.Category, error) {
	c, err := s.Service.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityCategory, ActionUpdated, c.ID, CategoryPayload{Name: c.Name})
	return c, nil
}

func (s *categoryService) SoftDelete(ctx context.Context, id string) (*category.Category, error) {
	c, err := s.Service.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityCategory, ActionSoftDeleted, c.ID, CategoryPayload{Name: c.Name})
	return c, nil
}

func (s *categoryService) HardDelete(ctx context.Context, id string) (*category.Category, error) {
	c, err := s.Service.HardDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityCategory, ActionDeleted, c.ID, CategoryPayload{Name: c.Name})
	return c, nil
}
