// Package ports declares the seams between the HTTP and CLI adapters, the
// article application service and the Postgres gateways.
//
// ArticleService is implemented by internal/app and driven by handlers and
// vmctl. ArticleStore and TagStore are the persistence gateways the
// view-model pipelines call inside a transaction scope.
package ports
