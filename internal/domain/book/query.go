package book

import "fmt"

// CategoryAll 分类过滤的哨兵值,表示不按分类过滤
const CategoryAll = "none"

// SortKey 列表排序字段
type SortKey string

const (
	SortNone     SortKey = "none"     // 存储默认顺序
	SortName     SortKey = "name"     // 按书名
	SortPrice    SortKey = "price"    // 按售价
	SortCategory SortKey = "category" // 按主分类ID
)

// SortOrder 排序方向
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortKey 解析排序字段,空串视为none
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortNone, nil
	case SortNone, SortName, SortPrice, SortCategory:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// ParseSortOrder 解析排序方向,空串视为asc
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case "":
		return OrderAsc, nil
	case OrderAsc, OrderDesc:
		return o, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// Desc 是否降序
func (o SortOrder) Desc() bool {
	return o == OrderDesc
}

// ListParams 列表查询参数
type ListParams struct {
	Page       int       // 页码(从1开始)
	PerPage    int       // 每页数量
	SortBy     SortKey   // 排序字段
	Order      SortOrder // 排序方向,SortBy为none时忽略
	CategoryID string    // 按主分类过滤,CategoryAll表示不过滤
}

// FilterByCategory 是否需要按主分类过滤
func (p ListParams) FilterByCategory() bool {
	return p.CategoryID != "" && p.CategoryID != CategoryAll
}
