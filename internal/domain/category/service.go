package category

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/metrics"
	"github.com/xiebiao/bookstore-inventory/pkg/pagination"
	"github.com/xiebiao/bookstore-inventory/pkg/tracing"
)

const tracerName = "catalog"

// Service 分类领域服务接口
// 错误约定:
// - GetByID/List 区分NotFound与Internal
// - 写操作(Create/Update/SoftDelete/HardDelete)与Count 的任何失败都归为Internal
type Service interface {
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context, page, perPage int) (*ListResult, error)
	Create(ctx context.Context, in CreateInput) (*Category, error)
	Update(ctx context.Context, id string, patch Patch) (*Category, error)
	SoftDelete(ctx context.Context, id string) (*Category, error)
	HardDelete(ctx context.Context, id string) (*Category, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetByID 查询单个有效分类
func (s *service) GetByID(ctx context.Context, id string) (c *Category, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "category.GetByID")
	defer observe(span, "get", time.Now(), &err)

	c, err = s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, msgGetFailed)
	}
	return c, nil
}

// List 分页查询有效分类
// 当前页为空时返回ErrNoCategoriesFound(包括空库的第1页)
func (s *service) List(ctx context.Context, page, perPage int) (res *ListResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "category.List")
	defer observe(span, "list", time.Now(), &err)

	items, err := s.repo.List(ctx, pagination.Offset(page, perPage), perPage)
	if err != nil {
		return nil, apperrors.Wrap(err, msgListFailed)
	}
	if len(items) == 0 {
		return nil, ErrNoCategoriesFound
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, msgCountFailed)
	}

	return &ListResult{
		Items:      items,
		TotalCount: total,
		TotalPages: pagination.TotalPages(total, perPage),
	}, nil
}

// Create 创建分类
func (s *service) Create(ctx context.Context, in CreateInput) (c *Category, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "category.Create")
	defer observe(span, "create", time.Now(), &err)

	c = &Category{
		Name:        in.Name,
		Description: in.Description,
	}
	if err = s.repo.Create(ctx, c); err != nil {
		return nil, apperrors.Wrap(err, msgCreateFailed)
	}
	return c, nil
}

// Update 部分更新,不做存在性预检查
func (s *service) Update(ctx context.Context, id string, patch Patch) (c *Category, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "category.Update")
	defer observe(span, "update", time.Now(), &err)

	c, err = s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, apperrors.Wrap(err, msgUpdateFailed)
	}
	return c, nil
}

// SoftDelete 软删除
func (s *service) SoftDelete(ctx context.Context, id string) (c *Category, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "category.SoftDelete")
	defer observe(span, "soft_delete", time.Now(), &err)

	c, err = s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, msgSoftDeleteFailed)
	}
	return c, nil
}

// HardDelete 物理删除
// 引用该分类的图书不会被级联处理
func (s *service) HardDelete(ctx context.Context, id string) (c *Category, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "category.HardDelete")
	defer observe(span, "hard_delete", time.Now(), &err)

	c, err = s.repo.HardDelete(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, msgDeleteFailed)
	}
	return c, nil
}

// Count 统计有效分类数量
func (s *service) Count(ctx context.Context) (n int64, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "category.Count")
	defer observe(span, "count", time.Now(), &err)

	n, err = s.repo.CountActive(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, msgCountFailed)
	}
	return n, nil
}

func observe(span trace.Span, operation string, start time.Time, err *error) {
	metrics.ObserveOperation("category", operation, start, *err)
	tracing.EndSpan(span, *err)
}
