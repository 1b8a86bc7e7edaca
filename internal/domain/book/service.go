package book

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/metrics"
	"github.com/xiebiao/bookstore-inventory/pkg/pagination"
	"github.com/xiebiao/bookstore-inventory/pkg/tracing"
)

const tracerName = "catalog"

// Service 图书领域服务接口
// 错误约定:
// - GetByID/List 区分NotFound与Internal
// - Create 只有分类不存在时返回NotFound,其余失败为Internal
// - Update/SoftDelete/HardDelete/Count 的任何失败(包括记录不存在)都归为Internal
type Service interface {
	GetByID(ctx context.Context, id string) (*Book, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Create(ctx context.Context, in CreateInput, image *Image) (*Book, error)
	Update(ctx context.Context, id string, patch Patch) (*Book, error)
	SoftDelete(ctx context.Context, id string) (*Book, error)
	HardDelete(ctx context.Context, id string) (*Book, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo       Repository
	categories CategoryLookup
	images     ImageStore
}

// NewService 创建图书领域服务
func NewService(repo Repository, categories CategoryLookup, images ImageStore) Service {
	return &service{
		repo:       repo,
		categories: categories,
		images:     images,
	}
}

// GetByID 查询单本有效图书(含主分类、子分类)
func (s *service) GetByID(ctx context.Context, id string) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.GetByID",
		trace.WithAttributes(attribute.String("book.id", id)))
	defer observe(span, "get", time.Now(), &err)

	b, err = s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, msgGetFailed)
	}
	return b, nil
}

// List 分页查询有效图书
//
// 当前页为空返回ErrNoBooksFound(空库的第1页也一样)。
// TotalCount统计全部有效图书,不受CategoryID过滤影响,与Count一致。
func (s *service) List(ctx context.Context, params ListParams) (res *ListResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.List",
		trace.WithAttributes(
			attribute.Int("page", params.Page),
			attribute.Int("per_page", params.PerPage),
			attribute.String("sort_by", string(params.SortBy)),
			attribute.String("category_id", params.CategoryID),
		))
	defer observe(span, "list", time.Now(), &err)

	items, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, apperrors.Wrap(err, msgListFailed)
	}
	if len(items) == 0 {
		return nil, ErrNoBooksFound
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, msgCountFailed)
	}

	return &ListResult{
		Items:      items,
		TotalCount: total,
		TotalPages: pagination.TotalPages(total, params.PerPage),
	}, nil
}

// Create 创建图书
// 顺序:主分类校验 -> 子分类校验 -> 写入封面图 -> 插入记录
// 分类校验失败时不会写入图片;插入失败时已写入的图片不回收
func (s *service) Create(ctx context.Context, in CreateInput, image *Image) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Create")
	defer observe(span, "create", time.Now(), &err)

	if err = s.checkCategory(ctx, in.MainCategoryID, ErrMainCategoryNotFound); err != nil {
		return nil, err
	}
	if in.SubCategoryID != nil && *in.SubCategoryID != "" {
		if err = s.checkCategory(ctx, *in.SubCategoryID, ErrSubCategoryNotFound); err != nil {
			return nil, err
		}
	}

	b = &Book{
		Title:          in.Title,
		Author:         in.Author,
		Description:    in.Description,
		Price:          in.Price,
		FinalPrice:     in.FinalPrice,
		MainCategoryID: in.MainCategoryID,
		SubCategoryID:  in.SubCategoryID,
	}

	if image != nil && image.Name != "" {
		stored, saveErr := s.images.Save(ctx, image.Name, image.Content)
		if saveErr != nil {
			// 存储层已分类的错误(如熔断)原样返回
			if appErr := apperrors.GetAppError(saveErr); appErr.Code == apperrors.ErrCodeStorageError {
				return nil, appErr
			}
			return nil, apperrors.Wrap(saveErr, msgCreateFailed)
		}
		metrics.AddImageBytes(len(image.Content))
		b.Image = &stored
	}

	if err = s.repo.Create(ctx, b); err != nil {
		return nil, apperrors.Wrap(err, msgCreateFailed)
	}
	return b, nil
}

// checkCategory 分类不存在时返回notFound,查询失败返回Internal
func (s *service) checkCategory(ctx context.Context, id string, notFound error) error {
	ok, err := s.categories.ExistsByID(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, msgCreateFailed)
	}
	if !ok {
		return notFound
	}
	return nil
}

// Update 部分更新,不做存在性预检查
func (s *service) Update(ctx context.Context, id string, patch Patch) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Update",
		trace.WithAttributes(attribute.String("book.id", id)))
	defer observe(span, "update", time.Now(), &err)

	b, err = s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, apperrors.Wrap(err, msgUpdateFailed)
	}
	return b, nil
}

// SoftDelete 软删除
func (s *service) SoftDelete(ctx context.Context, id string) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.SoftDelete",
		trace.WithAttributes(attribute.String("book.id", id)))
	defer observe(span, "soft_delete", time.Now(), &err)

	b, err = s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, msgSoftDeleteFailed)
	}
	return b, nil
}

// HardDelete 物理删除
func (s *service) HardDelete(ctx context.Context, id string) (b *Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.HardDelete",
		trace.WithAttributes(attribute.String("book.id", id)))
	defer observe(span, "hard_delete", time.Now(), &err)

	b, err = s.repo.HardDelete(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, msgDeleteFailed)
	}
	return b, nil
}

// Count 统计有效图书数量
func (s *service) Count(ctx context.Context) (n int64, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "book.Count")
	defer observe(span, "count", time.Now(), &err)

	n, err = s.repo.CountActive(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, msgCountFailed)
	}
	return n, nil
}

func observe(span trace.Span, operation string, start time.Time, err *error) {
	metrics.ObserveOperation("book", operation, start, *err)
	tracing.EndSpan(span, *err)
}
