package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logcatalog/internal/app"
	"logcatalog/internal/policies"
)

type validateOptions struct {
	Declarations  []string
	OutputDir     string
	FailurePolicy string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check declarations against the existing catalogs without writing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Declarations, "declarations", nil, "Declaration files (yaml, json, toml)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory holding the catalogs")
	cmd.Flags().StringVar(&opts.FailurePolicy, "failure-policy", string(policies.DefaultFailurePolicy), "Failure policy: lenient or strict")
	_ = viper.BindPFlag("declarations", cmd.Flags().Lookup("declarations"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("failure_policy", cmd.Flags().Lookup("failure-policy"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	summary, err := service.Validate(ctx, app.ValidateRequest{
		DeclarationPaths: resolveStrings(cmd, opts.Declarations, "declarations", "declarations"),
		OutputDir:        resolveString(cmd, opts.OutputDir, "output", "output"),
		FailurePolicy:    resolveString(cmd, opts.FailurePolicy, "failure_policy", "failure-policy"),
	})
	printSummary(cmd.OutOrStdout(), summary)
	if err != nil {
		return err
	}
	return roundOutcome(summary)
}
