package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(replCmd)
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive loop that parses one line at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := selectedGrammar()
		if err != nil {
			return err
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "parsekit> ",
			HistoryFile: historyFilePath(),
		})
		if err != nil {
			return fmt.Errorf("create readline config: %w", err)
		}
		defer rl.Close()

		red := color.New(color.FgRed).SprintFunc()
		fmt.Printf("parsekit repl (grammar: %s) -- each line is parsed as one statement\n", viper.GetString("grammar"))
		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if line == "" {
				continue
			}
			root, err := g.parser.Parse("<repl>", []byte(line))
			if err != nil {
				fmt.Println(red(err.Error()))
				continue
			}
			printTree(root, 0)
		}
	},
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.parsekit_history"
}
