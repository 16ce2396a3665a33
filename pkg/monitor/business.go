package monitor

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics 转换相关的业务指标
type BusinessMetrics struct {
	ConversionsTotal        *prometheus.CounterVec
	ConversionFailuresTotal *prometheus.CounterVec
	ConversionDuration      *prometheus.HistogramVec
	WordlistDetectionsTotal *prometheus.CounterVec
}

// Global Metrics Instance，未 Init 时为 nil，下面的方法都可安全调用
var Business *BusinessMetrics

// InitBusinessMetrics 初始化业务指标
func InitBusinessMetrics() {
	Business = NewBusinessMetrics(prometheus.DefaultRegisterer)
}

// NewBusinessMetrics 在指定 registerer 上创建指标，测试中可传入独立的 Registry
func NewBusinessMetrics(reg prometheus.Registerer) *BusinessMetrics {
	factory := promauto.With(reg)
	return &BusinessMetrics{
		ConversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_conversions_total",
			Help: "Successful conversions by input type",
		}, []string{"input_type"}),
		ConversionFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_failures_total",
			Help: "Failed conversions by error code",
		}, []string{"code"}),
		ConversionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "converter_conversion_duration_seconds",
			Help:    "Duration of a single conversion",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		WordlistDetectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_wordlist_detections_total",
			Help: "Source wordlist detections by language",
		}, []string{"language", "detected"}),
	}
}

func (m *BusinessMetrics) ObserveConversion(inputType string, d time.Duration) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(inputType).Inc()
	m.ConversionDuration.WithLabelValues(inputType).Observe(d.Seconds())
}

func (m *BusinessMetrics) ObserveFailure(code int) {
	if m == nil {
		return
	}
	m.ConversionFailuresTotal.WithLabelValues(strconv.Itoa(code)).Inc()
}

func (m *BusinessMetrics) ObserveDetection(language string, detected bool) {
	if m == nil {
		return
	}
	m.WordlistDetectionsTotal.WithLabelValues(language, strconv.FormatBool(detected)).Inc()
}
