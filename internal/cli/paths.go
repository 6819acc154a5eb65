package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/drs-tools/drs/internal/config"
	"github.com/spf13/cobra"
)

var pathsRequire string

func init() {
	pathsCmd.Flags().StringVar(&pathsRequire, "require", "", "Fail unless the settings package version satisfies this constraint (e.g. \">= 1.0\")")
	rootCmd.AddCommand(pathsCmd)
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the resolved project layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, paths, err := loadProject()
		if err != nil {
			return err
		}

		name := config.Get(config.KeyPackage)
		pkg, err := project.Package(name)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		projectName := project.Name()
		if projectName == "" {
			projectName = "(unnamed)"
		}
		fmt.Fprintf(tw, "Project:\t%s\n", projectName)
		fmt.Fprintf(tw, "Root:\t%s\n", paths.Root)
		fmt.Fprintf(tw, "Vendor:\t%s\n", paths.Vendor)
		fmt.Fprintf(tw, "Web root:\t%s\n", paths.WebRoot)
		fmt.Fprintf(tw, "Multisite:\t%s\n", paths.Multisite)
		fmt.Fprintf(tw, "Package:\t%s (%s %s)\n", paths.Package, name, pkg.DisplayVersion())
		fmt.Fprintf(tw, "Global settings:\t%s\n", paths.Global)
		if err := tw.Flush(); err != nil {
			return err
		}

		if pathsRequire != "" {
			ok, err := pkg.Satisfies(pathsRequire)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s %s does not satisfy %q", name, pkg.DisplayVersion(), pathsRequire)
			}
		}
		return nil
	},
}
