// Package viewhttp serves a read-only JSON API over a views.Router, so that
// thin clients can look up routes and titles without embedding the view
// table.
//
//	r, _ := cfg.NewRouter()
//	http.Handle("/", viewhttp.NewHandler(r, viewhttp.Config{}))
//
// GET /views lists the registered views with their templates, title
// templates and parameter names. GET /views/{view} resolves one view; the
// query string is the model:
//
//	GET /views/itemView?id=1234&name=foobar
//	{"view":"itemView","route":"projects/1234","title":"Projects | foobar"}
//
// Unknown views answer 404. Missing route parameters and, with the error
// placeholder policy, missing title values answer 422 with the offending
// names in "params".
//
// Requests are traced with the global OpenTelemetry tracer provider.
package viewhttp
