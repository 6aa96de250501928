package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a custom registry and options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 10}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metrics are registered under the namespace", func() {
				So(manager, ShouldNotBeNil)
				manager.RecordEncode("weather", 13)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_encodes_total")
				So(names, ShouldContain, "test_unit_points_encoded_total")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording encodes", func() {
			m.RecordEncode("weather", 13)
			m.RecordEncode("weather", 2)
			m.RecordEncode("mood", 4)

			Convey("Then counters accumulate by variant and points", func() {
				So(testutil.ToFloat64(m.encodes.WithLabelValues("weather")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.encodes.WithLabelValues("mood")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.pointsEncoded), ShouldEqual, 19)
			})
		})

		Convey("When recording errors, renders and datasets", func() {
			m.RecordEncodeError("invalid_scale")
			m.RecordRender("svg", 1.5)
			m.UpdateDatasetsStored(3)
			m.RecordHTTPRequest("chart", "GET", "200", 2)
			m.RecordErrorByEndpoint("chart", "GET", "not_found")

			Convey("Then each metric reflects the call", func() {
				So(testutil.ToFloat64(m.encodeErrors.WithLabelValues("invalid_scale")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.renders.WithLabelValues("svg")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.datasetsStored), ShouldEqual, 3)
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("chart", "GET", "200")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.errorsByEndpoint.WithLabelValues("chart", "GET", "not_found")), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

		Convey("When recording", func() {
			m.RecordEncode("weather", 13)

			Convey("Then nothing is counted", func() {
				So(testutil.ToFloat64(m.pointsEncoded), ShouldEqual, 0)
			})
		})
	})

	Convey("Given the package-level helpers", t, func() {
		Convey("Then they do not panic and use the custom registry", func() {
			So(func() {
				RecordEncode("weather", 1)
				RecordEncodeError("invalid_margin")
				RecordRender("png", 3)
				UpdateDatasetsStored(1)
				RecordHTTPRequest("healthz", "GET", "200", 0)
				RecordErrorByEndpoint("points", "GET", "client_error")
			}, ShouldNotPanic)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}

func TestSystemMetrics(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When system readings are recorded", func() {
			m.UpdateSystemMemoryUsage(4096)
			m.UpdateSystemGoroutineCount(7)
			m.RecordSystemGCPauseTime(0.25)

			Convey("Then the gauges hold the latest values", func() {
				So(testutil.ToFloat64(m.memoryUsage), ShouldEqual, 4096)
				So(testutil.ToFloat64(m.goroutineCount), ShouldEqual, 7)
				So(testutil.ToFloat64(m.gcPause), ShouldEqual, 0.25)
			})
		})
	})
}
