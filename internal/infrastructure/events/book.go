package events

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

const entityBook = "book"

// BookPayload 图书事件数据
type BookPayload struct {
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	FinalPrice     string  `json:"final_price"`
	Image          *string `json:"image,omitempty"`
	MainCategoryID string  `json:"main_category_id"`
	SubCategoryID  *string `json:"sub_category_id,omitempty"`
}

func newBookPayload(b *book.Book) BookPayload {
	return BookPayload{
		Title:          b.Title,
		Author:         b.Author,
		FinalPrice:     b.FinalPrice.StringFixed(2),
		Image:          b.Image,
		MainCategoryID: b.MainCategoryID,
		SubCategoryID:  b.SubCategoryID,
	}
}

type bookService struct {
	book.Service
	pub Publisher
}

// NewBookService 包装图书服务，写操作成功后发布事件
// 读操作直接透传
func NewBookService(next book.Service, pub Publisher) book.Service {
	return &bookService{Service: next, pub: pub}
}

func (s *bookService) Create(ctx context.Context, in book.CreateInput, image *book.Image) (*book.Book, error) {
	b, err := s.Service.Create(ctx, in, image)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityBook, ActionCreated, b.ID, newBookPayload(b))
	return b, nil
}

func (s *bookService) Update(ctx context.Context, id string, patch book.Patch) (*book.Book, error) {
	b, err := s.Service.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityBook, ActionUpdated, b.ID, newBookPayload(b))
	return b, nil
}

func (s *bookService) SoftDelete(ctx context.Context, id string) (*book.Book, error) {
	b, err := s.Service.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityBook, ActionSoftDeleted, b.ID, newBookPayload(b))
	return b, nil
}

func (s *bookService) HardDelete(ctx context.Context, id string) (*book.Book, error) {
	b, err := s.Service.HardDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, entityBook, ActionDeleted, b.ID, newBookPayload(b))
	return b, nil
}
