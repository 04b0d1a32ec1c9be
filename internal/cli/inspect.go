package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logcatalog/internal/app"
)

type inspectOptions struct {
	OutputDir  string
	BundleName string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show generated catalogs as a consumer reads them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory holding the catalogs")
	cmd.Flags().StringVar(&opts.BundleName, "bundle", "", "Resource bundle name (defaults to the recorded one)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir:  resolveString(cmd, opts.OutputDir, "output", "output"),
		BundleName: opts.BundleName,
	})
	if err != nil {
		return err
	}
	printInspect(cmd.OutOrStdout(), result)
	return nil
}
