package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))
			So(manager, ShouldNotBeNil)
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-ns"),
				WithSubsystem("test-sub"),
				WithHistogramBuckets([]float64{1, 10, 100}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)
			So(manager, ShouldNotBeNil)
			So(manager.namespace, ShouldEqual, "test-ns")
			So(manager.subsystem, ShouldEqual, "test-sub")
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("recording helpers must not panic", func() {
			So(func() {
				RecordHTTPRequest("readings", "POST", "200")
				RecordHTTPRequestDuration("readings", "POST", "200", 12.5)
				RecordReadingKind("matching")
				RecordEmptyResult("no_content")
				RecordEmptyResult("safety_blocked")
				RecordUpstreamRequest("503")
				RecordUpstreamDuration(850)
				RecordCacheHit()
				RecordCacheMiss()
			}, ShouldNotPanic)
		})

		Convey("the registry serves gathered metrics", func() {
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
