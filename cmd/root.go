package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/pipeshell/psh/core"
	"github.com/pipeshell/psh/core/config"
	"github.com/pipeshell/psh/core/logger"
	"github.com/pipeshell/psh/core/prompt"
	"github.com/pipeshell/psh/core/shell"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

var (
	cfgPath   string
	command   string
	colorMode string
)

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.New(cmd.ErrOrStderr(), shell.Name+": ", 0).Println("Couldn't load config, using defaults: did you run init?")
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "psh",
	Short: "Pipeline shell",
	Long: `An interactive shell that runs commands joined by " | ", optionally
writing the output of the last one to a file with "> FILE".

Built-in commands: exit, clear, cd [DIR|-].`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("color") {
			configuration.Color = colorMode
			if err := configuration.Validate(); err != nil {
				return err
			}
		}

		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		term := shell.Terminal{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
		colors := prompt.NewColorPrinter(configuration.Color, isTerminal(term.Stdout))

		engine := shell.NewEngine(shell.NewSession(afero.NewOsFs(), wd), term)
		engine.Farewell = colors.Sprint(prompt.ColorRed, configuration.Farewell)
		engine.CdDefault = configuration.CdDefault
		engine.WaitBeforeBuiltin = configuration.WaitBeforeBuiltin

		if configuration.EventLog {
			fd, err := configuration.OpenEventLog()
			if err != nil {
				return err
			}
			defer fd.Close()
			engine.Events = logger.NewJsonLinesLogRecorder(fd).NewSession()
		}

		// Interrupts are for the running children, the shell keeps going.
		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)

		if command != "" {
			engine.RunLine(command)
			return nil
		}

		var reader core.LineReader
		if isTerminal(term.Stdin) {
			reader, err = core.NewReadline(term, configuration.HistoryPath(), true)
			if err != nil {
				return err
			}
		} else {
			reader = core.NewPlainReader(term.Stdin, term.Stdout)
		}

		sh := core.NewShell(engine, prompt.New(configuration, colors), reader)
		sh.ClearOnStart = configuration.ClearOnStart && isTerminal(term.Stdout)
		defer sh.Close()

		sh.Run()
		return nil
	},
}

func isTerminal(stream interface{}) bool {
	fd, ok := stream.(*os.File)
	return ok && terminal.IsTerminal(int(fd.Fd()))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultDir(), "config path")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "run a single line and exit")
	rootCmd.Flags().StringVar(&colorMode, "color", config.ColorAuto, "color the prompt: always, auto or never")
}
