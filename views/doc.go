// Package views layers named views on top of a client-side router: it maps
// symbolic view names to route templates and page-title templates, builds
// URLs for a view and a data model (reverse routing), and navigates to a
// view through an external history engine.
//
// # Registration
//
// Routes are registered as template to view name pairs, titles as view
// name to title template pairs:
//
//	r := views.NewRouter()
//	err := r.RegisterViews(map[string]string{
//	    "":             "homeView",
//	    "projects":     "listView",
//	    "projects/:id": "itemView",
//	}, map[string]string{
//	    "homeView": "Projects",
//	    "itemView": "Projects | <name>",
//	})
//
// A trailing wildcard segment ("files/*path") is stripped on registration;
// wildcards are not used for reverse routing. Registering a view name again
// replaces its template.
//
// # Reverse Routing
//
// ResolveRoute fills every ":param" segment from the model:
//
//	route, err := r.ResolveRoute("itemView", views.Attrs{"id": 1234})
//	// route == "projects/1234"
//
// Parameters whose value is blank (nil, "", false, zero) are reported
// together in an *UnmatchedParameterError. Unregistered views fail with an
// *UnknownViewError. The returned route has no leading slash.
//
// # Titles
//
// Title management is inactive until a title root is set with TitleRoot or
// a non-empty titles map is registered. Once active, the title of a view is
// the root followed by its title template with "<name>" placeholders filled
// from the model. MissingPlaceholder selects what happens to placeholders
// without a value.
//
// # Navigation
//
// GoToView resolves the route, updates the title and calls the History
// engine. It does nothing when the route is already current:
//
//	err := r.GoToView("itemView", project, views.NavigateOptions{Trigger: true})
package views
