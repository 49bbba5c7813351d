/*
Package observability turns navigation and result events into metrics and logs.

Both Metrics and LogHooks expose domain.Hooks, so they can be merged and handed
to a host:

	hooks := observability.NewMetrics(prometheus.DefaultRegisterer).Hooks().
		Merge(observability.LogHooks(logger))
*/
package observability
