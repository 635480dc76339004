package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/viewkit/viewconfig"
	"github.com/vitalvas/viewkit/views"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "viewkit",
		Short: "Resolve named views to routes and titles",
		Long: `viewkit reads a view configuration (YAML or TOML) and resolves
view names to relative routes and page titles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "views.yaml", "path to the view configuration file")

	rootCmd.AddCommand(
		resolveCmd(opts),
		titleCmd(opts),
		viewsCmd(opts),
		serveCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// loadRouter builds a router from the configured file.
func (o *rootOptions) loadRouter() (*views.Router, error) {
	cfg, err := viewconfig.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	return cfg.NewRouter()
}

// parseAttrs turns key=value arguments into a model.
func parseAttrs(args []string) (views.Attrs, error) {
	pairs := make([]string, 0, len(args)*2)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected key=value", arg)
		}
		pairs = append(pairs, key, value)
	}
	return views.AttrsFromPairs(pairs...)
}
