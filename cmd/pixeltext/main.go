package main

import (
	"errors"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/bodgit/pixeltext"
	"github.com/bodgit/pixeltext/config"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func options(c *cli.Context, cfg *config.Config) (pixeltext.Options, error) {
	opts := pixeltext.Options{
		Colors: cfg.Colors,
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
	}

	mode := cfg.Mode
	if c.IsSet("mode") {
		mode = c.String("mode")
	}
	var err error
	if opts.Mode, err = pixeltext.ParseMode(mode); err != nil {
		return opts, err
	}

	if opts.Meta, err = cfg.MetaRune(); err != nil {
		return opts, err
	}
	if c.IsSet("meta") {
		s := c.String("meta")
		if utf8.RuneCountInString(s) != 1 {
			return opts, errors.New("meta must be a single character")
		}
		opts.Meta, _ = utf8.DecodeRuneInString(s)
	}

	if c.IsSet("colors") {
		opts.Colors = c.Int("colors")
	}
	if c.IsSet("width") {
		opts.Width = c.Uint("width")
	}
	if c.IsSet("height") {
		opts.Height = c.Uint("height")
	}
	if c.IsSet("scale") {
		opts.Scale = c.Int("scale")
	}

	return opts, nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "pixeltext"
	app.Usage = "Text to 2D image converter"
	app.Description = "Converts text files where each character is a pixel into images, and images back into text.\n" +
		"Input files ending in .png, .bmp, .jpg or .jpeg are treated as images, anything else as text."
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "infile",
			Aliases: []string{"i"},
			Usage:   "input file, defaults to reading standard input",
		},
		&cli.StringFlag{
			Name:    "outfile",
			Aliases: []string{"o"},
			Usage:   "output file, defaults to \"" + pixeltext.DefaultImageFile + "\" if the input is text, or standard output if the input is an image",
		},
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Value:   "auto",
			Usage:   "conversion direction; auto, text or image",
		},
		&cli.StringFlag{
			Name:    "meta",
			EnvVars: []string{"PIXELTEXT_META"},
			Value:   "#",
			Usage:   "meta character used when writing text",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce an input image to this many colors, 0 disables",
		},
		&cli.UintFlag{
			Name:  "width",
			Usage: "resize an input image to this width",
		},
		&cli.UintFlag{
			Name:  "height",
			Usage: "resize an input image to this height",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "enlarge the output image by this factor",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"PIXELTEXT_CONFIG"},
			Usage:   "path to configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() > 0 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return cli.Exit(err, 1)
		}

		logger := log.New(io.Discard, "", 0)
		if c.Bool("verbose") || cfg.Verbose {
			logger.SetOutput(os.Stderr)
		}

		opts, err := options(c, cfg)
		if err != nil {
			return cli.Exit(err, 1)
		}

		p, err := pixeltext.New(logger, opts)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := p.ConvertFile(c.String("infile"), c.String("outfile")); err != nil {
			return cli.Exit(err, 1)
		}

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
