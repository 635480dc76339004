// Package viewconfig loads view definitions from YAML or TOML files.
//
// A YAML file:
//
//	title_root: "Projects"
//	missing_placeholder: error
//	routes:
//	  "": homeView
//	  "projects/:id": itemView
//	titles:
//	  itemView: " | <name>"
//
// The same file in TOML:
//
//	title_root = "Projects"
//	missing_placeholder = "error"
//
//	[routes]
//	"projects/:id" = "itemView"
//
//	[titles]
//	itemView = " | <name>"
//
// Load the file and build a router:
//
//	cfg, err := viewconfig.Load("views.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := cfg.NewRouter()
package viewconfig
