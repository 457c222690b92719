/*
Package observability turns loop lifecycle hooks into Prometheus metrics
and structured log records.
*/
package observability
