package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	ConfigFlag        = "config"
	MapFlag           = "map"
	AlgorithmFlag     = "algorithm"
	HeuristicFlag     = "heuristic"
	SeedFlag          = "seed"
	FPSFlag           = "fps"
	MaxExpansionsFlag = "max-expansions"
	LogLevelFlag      = "log-level"
	LogFileFlag       = "log-file"
	MetricsFlag       = "metrics"
)

var sessionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    ConfigFlag,
		Aliases: []string{"c"},
		Usage:   "TOML config file; flags override its values",
	},
	&cli.StringFlag{
		Name:    MapFlag,
		Aliases: []string{"m"},
		Usage:   "text map: '*' wall, '#' start, 'x' goal",
	},
	&cli.StringFlag{
		Name:    AlgorithmFlag,
		Aliases: []string{"a"},
		Usage:   "bfs, dfs, ucs or astar",
	},
	&cli.StringFlag{
		Name:  HeuristicFlag,
		Usage: "manhattan or euclidean (astar only)",
	},
	&cli.Uint64Flag{
		Name:  SeedFlag,
		Usage: "seed for placing a missing start or goal",
	},
	&cli.IntFlag{
		Name:  MaxExpansionsFlag,
		Usage: "stop searching after this many expanded cells (0 = no limit)",
	},
	&cli.StringFlag{
		Name:  LogLevelFlag,
		Usage: "ERROR, WARN, INFO or DEBUG",
	},
	&cli.StringFlag{
		Name:  LogFileFlag,
		Usage: "write logs to this file instead of stderr",
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "gridpath",
		Usage: "plan and follow a route across a grid map",
		Commands: []*cli.Command{
			{
				Name:    "plan",
				Aliases: []string{"p"},
				Usage:   "Plan once and print the route over the map",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  MetricsFlag,
						Usage: "print planner metrics after the route",
					},
				}, sessionFlags...),
				Action: planAction,
			},
			{
				Name:  "play",
				Usage: "Animate the agent along its route in the terminal",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  FPSFlag,
						Usage: "steps per second",
					},
				}, sessionFlags...),
				Action: playAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
