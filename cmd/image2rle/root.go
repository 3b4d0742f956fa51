package main

import (
	"github.com/spf13/cobra"

	"image2rle/internal/convert"
)

func newRootCommand() *cobra.Command {
	flags := &commandFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "image2rle [flags] <image>...",
		Short: "Convert images to Game of Life RLE pattern files",
		Long: "Convert images to Game of Life RLE pattern files.\n\n" +
			"Each input is written next to itself with its extension replaced by .rle.\n" +
			"Bright pixels become alive cells unless --invert is given.\n\n" +
			"An image whose path is exactly a subcommand name (inspect, config, help)\n" +
			"runs that subcommand instead; pass it as ./inspect to convert it.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			reporter := newCLIReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			converter := convert.New(convert.OptionsFromConfig(cfg), logger, convert.WithReporter(reporter))
			_, err = converter.Run(ctx.runContext(cmd), args)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")

	rootCmd.Flags().BoolVarP(&flags.invert, "invert", "i", false, "Treat dark pixels as alive cells")
	rootCmd.Flags().IntVar(&flags.maxWidth, "max-width", 0, "Downscale images wider than this many pixels (0 disables)")
	rootCmd.Flags().IntVar(&flags.maxHeight, "max-height", 0, "Downscale images taller than this many pixels (0 disables)")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
