package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cryptid/deduce"
	"cryptid/engine"
	"cryptid/render"
)

var scenarioPath string

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "cryptid",
		Short: "Deduce the hidden habitat on a Cryptid board",
	}
	root.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", "",
		"path to a scenario YAML file")
	cobra.CheckErr(root.MarkPersistentFlagRequired("scenario"))

	root.AddCommand(showCommand(), solveCommand(), simulateCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render the scenario's board",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := engine.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			b, err := scenario.Board()
			if err != nil {
				return err
			}
			fmt.Print(render.Board(b))
			return nil
		},
	}
}

func solveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve clue [clue...]",
		Short: "Find the single cell satisfying the given clues",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := engine.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			game, err := scenario.Game()
			if err != nil {
				return err
			}

			clues := make([]deduce.Clue, len(args))
			for i, name := range args {
				if clues[i], err = deduce.ParseClue(name); err != nil {
					return err
				}
			}

			cell, err := game.Solve(clues...)
			if err != nil {
				return err
			}
			fmt.Printf("%s satisfies: %s\n", cell, strings.Join(args, "; "))
			return nil
		},
	}
}

func simulateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Play out the scenario and count remaining solutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := engine.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			eng, err := scenario.Engine()
			if err != nil {
				return err
			}
			remaining, err := eng.Run(scenario.Rounds)
			if err != nil {
				return err
			}
			fmt.Printf("%d consistent solutions remain\n", remaining)
			for _, p := range eng.Game.Players() {
				fmt.Print(render.Marks(eng.Game.Board(), p.Index()))
			}
			return nil
		},
	}
}
