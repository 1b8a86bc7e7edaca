// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
// **1. HTTP指标**：请求总数、耗时分布、处理中的请求数（由middleware.Metrics记录）
//
// **2. 目录操作指标**：每个图书/分类操作的调用次数与耗时
//   - entity：book | category
//   - operation：get | list | create | update | soft_delete | hard_delete | count
//   - result：ok | not_found | error
//
// **3. 存储指标**：写入图片的字节数
//
// # 使用示例
//
//	// 1. 启动时初始化一次
//	metrics.InitMetrics()
//
//	// 2. 暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 在领域服务中记录
//	start := time.Now()
//	book, err := s.repo.FindActiveByID(ctx, id)
//	metrics.ObserveOperation("book", "get", start, err)
//
// # 命名规范
//
//   - Counter以`_total`结尾
//   - Histogram以单位结尾（`_seconds`、`_bytes`）
//   - 不使用book_id之类的高基数标签
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板，如/api/v1/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// CatalogOperationsTotal 目录操作总数（Counter）
	// 标签：entity、operation、result
	CatalogOperationsTotal *prometheus.CounterVec

	// CatalogOperationDuration 目录操作耗时（Histogram）
	// 标签：entity、operation
	CatalogOperationDuration *prometheus.HistogramVec

	// ImageBytesStoredTotal 已写入的图片字节数（Counter）
	ImageBytesStoredTotal prometheus.Counter
)

// InitMetrics 初始化所有Prometheus指标
//
// 使用promauto注册到默认Registry；多次调用只生效一次
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_operations_total",
				Help: "图书/分类操作总数",
			},
			[]string{"entity", "operation", "result"},
		)

		CatalogOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "catalog_operation_duration_seconds",
				Help: "图书/分类操作耗时（秒）",
				// 单次数据库往返，比HTTP桶更细
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"entity", "operation"},
		)

		ImageBytesStoredTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "image_bytes_stored_total",
				Help: "写入图片存储的字节数",
			},
		)
	})
}

// Result 把错误归类为指标标签值
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperrors.IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}

// ObserveOperation 记录一次目录操作
// 未调用InitMetrics时为空操作（单元测试无需注册指标）
func ObserveOperation(entity, operation string, start time.Time, err error) {
	if CatalogOperationsTotal == nil {
		return
	}
	CatalogOperationsTotal.With(prometheus.Labels{
		"entity":    entity,
		"operation": operation,
		"result":    Result(err),
	}).Inc()
	CatalogOperationDuration.With(prometheus.Labels{
		"entity":    entity,
		"operation": operation,
	}).Observe(time.Since(start).Seconds())
}

// AddImageBytes 累加写入的图片字节数
func AddImageBytes(n int) {
	if ImageBytesStoredTotal == nil {
		return
	}
	ImageBytesStoredTotal.Add(float64(n))
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
