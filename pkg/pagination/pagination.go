// Package pagination 页码/偏移量换算
package pagination

// Offset 计算跳过的记录数：(page-1)*perPage
// 页码从1开始；page、perPage的合法性由HTTP层校验，这里不做修正
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}

// TotalPages 总页数：ceil(total/perPage)
// perPage<=0时返回0，避免除零
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}
