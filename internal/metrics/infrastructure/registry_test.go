package infrastructure

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-v0/internal/metrics/domain"
)

func testPageView() domain.PageView {
	return domain.PageView{
		Path:        "/blog/x",
		Method:      "GET",
		IsBot:       "false",
		ContentType: "blog",
		Source:      "google",
		Browser:     "chrome",
		Device:      "desktop",
	}
}

func TestRegistry_RecordPageView(t *testing.T) {
	r := NewRegistry("test")

	r.RecordPageView(testPageView())
	r.RecordPageView(testPageView())

	got := testutil.ToFloat64(r.pageViews.WithLabelValues(testPageView().LabelValues()...))
	assert.Equal(t, float64(2), got)
}

func TestRegistry_ConcurrentIncrements(t *testing.T) {
	r := NewRegistry("test")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				r.RecordRequest(domain.Request{Path: "/", Method: "GET", StatusCode: 200, ContentType: "page"})
			}
		}()
	}
	wg.Wait()

	got := testutil.ToFloat64(r.requests.WithLabelValues("/", "GET", "200", "page"))
	assert.Equal(t, float64(1000), got)
}

func TestRegistry_ObserveDuration(t *testing.T) {
	r := NewRegistry("test")

	r.ObserveDuration(domain.Duration{Path: "/", Method: "GET", ContentType: "page", Seconds: 0.02})
	r.ObserveDuration(domain.Duration{Path: "/", Method: "GET", ContentType: "page", Seconds: 3})

	assert.Equal(t, 1, testutil.CollectAndCount(r.pageDuration))

	out, err := Encode(r.Gatherer())
	require.NoError(t, err)
	assert.Contains(t, string(out), `page_duration_seconds_bucket{app="test",content_type="page",method="GET",path="/",le="0.025"} 1`)
	assert.Contains(t, string(out), `page_duration_seconds_count{app="test",content_type="page",method="GET",path="/"} 2`)
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	r := NewRegistry("test")

	assert.Panics(t, func() {
		r.Registerer().MustRegister(prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: domain.HTTPRequestsName,
			Help: "duplicate",
		}, []string{"path"}))
	})
}

func TestRegistry_RegistererAddsAppLabel(t *testing.T) {
	r := NewRegistry("test")

	extra := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "extra_events_total",
		Help: "Extra events.",
	})
	require.NoError(t, r.Registerer().Register(extra))
	extra.Inc()

	expected := `
# HELP extra_events_total Extra events.
# TYPE extra_events_total counter
extra_events_total{app="test"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected), "extra_events_total"))
}

func TestDefault_IsSingleton(t *testing.T) {
	a := Default("first")
	b := Default("second")
	assert.Same(t, a, b)
}

func TestEncode(t *testing.T) {
	r := NewRegistry("test")
	r.RecordPageView(testPageView())

	out, err := Encode(r.Gatherer())
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "# TYPE page_views_total counter")
	assert.Contains(t, body, `path="/blog/x"`)
	assert.Contains(t, body, `app="test"`)
	assert.Contains(t, body, "go_goroutines")
}

func TestEncode_GatherError(t *testing.T) {
	failing := prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return nil, errors.New("collector exploded")
	})

	out, err := Encode(failing)
	assert.Error(t, err)
	assert.Nil(t, out)
}
