package cli

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logcatalog/internal/app"
	"logcatalog/internal/policies"
)

const roundFailedMessage = "round failed under the strict failure policy"

type generateOptions struct {
	Declarations    []string
	OutputDir       string
	FailurePolicy   string
	CopyrightHolder string
	HeaderFile      string
	BuildDate       string
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Merge declarations into the log message and logger catalogs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Declarations, "declarations", nil, "Declaration files (yaml, json, toml)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory holding the catalogs")
	cmd.Flags().StringVar(&opts.FailurePolicy, "failure-policy", string(policies.DefaultFailurePolicy), "Failure policy: lenient or strict")
	cmd.Flags().StringVar(&opts.CopyrightHolder, "copyright-holder", "", "Copyright holder named in the catalog header")
	cmd.Flags().StringVar(&opts.HeaderFile, "header-file", "", "Custom catalog header template")
	cmd.Flags().StringVar(&opts.BuildDate, "build-date", "", "Pinned build date for the header year (unix seconds or RFC 3339)")

	_ = viper.BindPFlag("declarations", cmd.Flags().Lookup("declarations"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("failure_policy", cmd.Flags().Lookup("failure-policy"))
	_ = viper.BindPFlag("copyright_holder", cmd.Flags().Lookup("copyright-holder"))
	_ = viper.BindPFlag("header_file", cmd.Flags().Lookup("header-file"))
	_ = viper.BindPFlag("build_date", cmd.Flags().Lookup("build-date"))
	_ = viper.BindEnv("build_date", envPrefix+"_BUILD_DATE", "SOURCE_DATE_EPOCH")
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	summary, err := service.Generate(ctx, app.GenerateRequest{
		DeclarationPaths: resolveStrings(cmd, opts.Declarations, "declarations", "declarations"),
		OutputDir:        resolveString(cmd, opts.OutputDir, "output", "output"),
		FailurePolicy:    resolveString(cmd, opts.FailurePolicy, "failure_policy", "failure-policy"),
		CopyrightHolder:  resolveString(cmd, opts.CopyrightHolder, "copyright_holder", "copyright-holder"),
		HeaderFile:       resolveString(cmd, opts.HeaderFile, "header_file", "header-file"),
		BuildDate:        resolveString(cmd, opts.BuildDate, "build_date", "build-date"),
	})
	printSummary(cmd.OutOrStdout(), summary)
	if err != nil {
		return err
	}
	return roundOutcome(summary)
}

func roundOutcome(summary app.RoundSummary) error {
	if summary.Failed() {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(roundFailedMessage)
	}
	return nil
}
