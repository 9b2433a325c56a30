package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	questionnaireStartedTotal   atomic.Uint64
	questionnaireSubmittedTotal atomic.Uint64
	resultsRenderedTotal        atomic.Uint64
	resultsFallbackTotal        atomic.Uint64
	resultStoreErrorsTotal      atomic.Uint64
	chatMessagesTotal           atomic.Uint64
	chatFallbackTotal           atomic.Uint64
	httpPanicsTotal             atomic.Uint64

	completionDuration = newHistogram([]float64{5, 15, 30, 60, 120, 300, 600, 1800})
)

// IncQuestionnaireStarted increments the started counter.
func IncQuestionnaireStarted() {
	questionnaireStartedTotal.Add(1)
}

// IncQuestionnaireSubmitted increments the submitted counter.
func IncQuestionnaireSubmitted() {
	questionnaireSubmittedTotal.Add(1)
}

// IncResultsRendered counts results views that found a stored recommendation.
func IncResultsRendered() {
	resultsRenderedTotal.Add(1)
}

// IncResultsFallback counts results views that fell back to the empty state.
func IncResultsFallback() {
	resultsFallbackTotal.Add(1)
}

func IncResultStoreError() {
	resultStoreErrorsTotal.Add(1)
}

func IncChatMessage() {
	chatMessagesTotal.Add(1)
}

func IncChatFallback() {
	chatFallbackTotal.Add(1)
}

// IncPanics counts handler panics caught by the recovery middleware.
func IncPanics() {
	httpPanicsTotal.Add(1)
}

// ObserveCompletionSeconds records the time from questionnaire start to submit.
func ObserveCompletionSeconds(value float64) {
	if value < 0 {
		value = 0
	}
	completionDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "questionnaire_started_total", "Total questionnaires started", questionnaireStartedTotal.Load())
	writeCounter(&buf, "questionnaire_submitted_total", "Total questionnaires submitted", questionnaireSubmittedTotal.Load())
	writeCounter(&buf, "results_rendered_total", "Results views with a stored recommendation", resultsRenderedTotal.Load())
	writeCounter(&buf, "results_fallback_total", "Results views without a stored recommendation", resultsFallbackTotal.Load())
	writeCounter(&buf, "result_store_errors_total", "Result store backend failures", resultStoreErrorsTotal.Load())
	writeCounter(&buf, "chat_messages_total", "Chat messages answered", chatMessagesTotal.Load())
	writeCounter(&buf, "chat_fallback_total", "Chat messages answered with the fallback reply", chatFallbackTotal.Load())
	writeCounter(&buf, "http_panics_total", "Handler panics recovered", httpPanicsTotal.Load())
	writeHistogram(&buf, "questionnaire_completion_seconds", "Time from questionnaire start to submit", completionDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records value in the first bucket whose bound holds it; counts are
// accumulated at render time.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
