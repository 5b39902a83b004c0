// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// demoCommand runs the built-in rock/alt/fake scenario
func demoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "Populate the catalog, generate the sample playlists and print everything",
		Action: r.Demo,
	}
}

// genresCommand lists the catalog's genre index
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "List every genre in the catalog",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Genres,
	}
}

// subgenresCommand lists the catalog's subgenre index
func subgenresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "subgenres",
		Usage: "List every subgenre in the catalog",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Subgenres,
	}
}

// songsCommand lists catalog songs
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "List catalog songs with their genres",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Only list songs tagged with one of these genres",
			},
			&cli.StringSliceFlag{
				Name:    "subgenre",
				Aliases: []string{"s"},
				Usage:   "Only list songs tagged with one of these subgenres",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Songs,
	}
}

// generateCommand creates one playlist
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Create a playlist from songs matching any of the given genres or subgenres",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Playlist name",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Genre filter (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "subgenre",
				Aliases: []string{"s"},
				Usage:   "Subgenre filter (repeatable, instead of --genre)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, markdown, csv or json (default: output.format from config)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		},
		Action: r.Generate,
	}
}

// planCommand creates a batch of playlists from a plan file
func planCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Create every playlist listed in a TOML plan file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to plan file of [[playlist]] tables",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "export-dir",
				Usage: "Write each created playlist to this directory",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format for --export-dir and --show (default: output.format from config)",
			},
			&cli.IntFlag{
				Name:  "show",
				Usage: "Print the playlist at this position (0-based) in the generated history",
			},
		},
		Action: r.Plan,
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist creation.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Pick genres interactively and create a playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Playlist name (default: derived from the selected genres)",
			},
		},
		Action: r.TUI,
	}
}

// configCommand handles configuration files
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination (default: the --config path)",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: r.ConfigShow,
			},
		},
	}
}

// libraryCommand handles library export files
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "library",
		Usage: "Library export commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the built-in sample songs as a library file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination (.toml or .json)",
						Value: "library.toml",
					},
				},
				Action: r.LibraryInit,
			},
			{
				Name:   "check",
				Usage:  "Validate the configured library and report its size",
				Action: r.LibraryCheck,
			},
		},
	}
}
