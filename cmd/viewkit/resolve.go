package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func resolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve VIEW [key=value...]",
		Short: "Print the route of a view",
		Example: `  viewkit resolve itemView id=1234
  viewkit -c views.toml resolve listView`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.loadRouter()
			if err != nil {
				return err
			}
			model, err := parseAttrs(args[1:])
			if err != nil {
				return err
			}

			route, err := r.ResolveRoute(args[0], model)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), route)
			return nil
		},
	}
}

func titleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "title VIEW [key=value...]",
		Short: "Print the page title of a view",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.loadRouter()
			if err != nil {
				return err
			}
			model, err := parseAttrs(args[1:])
			if err != nil {
				return err
			}

			title, active, err := r.ResolveTitle(args[0], model)
			if err != nil {
				return err
			}
			if !active {
				return errors.New("title management is not active: set title_root or titles")
			}
			fmt.Fprintln(cmd.OutOrStdout(), title)
			return nil
		},
	}
}

func viewsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List registered views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.loadRouter()
			if err != nil {
				return err
			}

			titles := r.Titles()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VIEW\tROUTE\tTITLE")
			for _, name := range r.ViewNames() {
				tpl, _ := r.GetTemplate(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, tpl, titles[name])
			}
			return w.Flush()
		},
	}
}
