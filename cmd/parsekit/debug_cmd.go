package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudcmds/parsekit/plog"
)

func init() {
	debugCmd.Flags().StringP("code", "c", "", "Code to evaluate the production against")
	debugCmd.Flags().Int("pos", 0, "Structural token position to start evaluation at")
	viper.BindPFlag("debug.code", debugCmd.Flags().Lookup("code"))
	viper.BindPFlag("debug.pos", debugCmd.Flags().Lookup("pos"))
	rootCmd.AddCommand(debugCmd)
}

var debugCmd = &cobra.Command{
	Use:   "debug <production> [file]",
	Short: "Evaluate a single registered debug production against a file or -c snippet",
	Long: `Evaluates a production registered via AddDebugProduction directly at a
structural token position, independent of whether the grammar's root
production reaches it. Useful for isolating why one rule of a grammar
does or doesn't match a given input.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		input, _, err := readSource(args[1:], viper.GetString("debug.code"))
		if err != nil {
			return err
		}
		g, err := selectedGrammar()
		if err != nil {
			return err
		}
		if viper.GetBool("verbose-log") {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			g.parser.SetLog(plog.NewZerologSink(logger))
		}

		outcome, err := g.parser.DebugProductionAt(name, viper.GetInt("debug.pos"), input)
		if err != nil {
			return err
		}
		if outcome.Matched {
			fmt.Printf("matched: end position %d, %d node(s)\n", outcome.EndPos, len(outcome.Nodes))
		} else {
			fmt.Printf("no match: deepest failure at structural position %d\n", outcome.DeepestPos)
			for expected := range outcome.Expected {
				fmt.Printf("  expected: %s\n", expected)
			}
		}
		return nil
	},
}
