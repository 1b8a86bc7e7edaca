package dto

import "time"

// TimeLayout 响应中的时间格式
const TimeLayout = "2006-01-02 15:04:05"

// 分页默认值
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PageRequest 分页参数
type PageRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1" example:"1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100" example:"10"`
}

// Normalize 填充默认值
func (p *PageRequest) Normalize() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
}

// CountResponse 计数响应
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

func formatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
