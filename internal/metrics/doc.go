// Package metrics records build metrics for refdocs.
//
// Components receive a Recorder. NoopRecorder is the default and does
// nothing; PrometheusRecorder registers collectors on a registry that can be
// exported in the node_exporter textfile format with WriteTextfile:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	// ... run the build with rec ...
//	err := metrics.WriteTextfile(path, reg)
package metrics
