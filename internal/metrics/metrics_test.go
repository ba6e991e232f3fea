package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-ca/internal/rules"
	"voxel-ca/internal/voxel"
)

func TestRecorderObservesTicks(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	var counts [voxel.MaterialCount]int
	counts[voxel.Sand] = 12
	counts[voxel.Wall] = 5
	r.ObserveTick(2*time.Millisecond, rules.Stats{Moves: 3, Births: 1}, counts)
	r.ObserveTick(time.Millisecond, rules.Stats{Moves: 2, Deaths: 4}, counts)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ticks))
	assert.Equal(t, 12.0, testutil.ToFloat64(r.population.WithLabelValues("sand")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.population.WithLabelValues("water")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.changes.WithLabelValues("move")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.changes.WithLabelValues("birth")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.changes.WithLabelValues("death")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestHandlerExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.ObserveTick(time.Millisecond, rules.Stats{}, [voxel.MaterialCount]int{})

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "voxelca_ticks_total 1"), body)
	assert.Contains(t, body, `voxelca_population{material="life"} 0`)
}
