package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/formalizer"
)

const usage = `Usage: formalizer <command> [flags]

Commands:
  formalize   rewrite a raw transcript as a clean, speaker-labeled dialogue
  questions   list clarifying questions about a transcript
  watch       formalize every transcript dropped into paths.input
  models      list the selectable models
  key         manage the saved API key (set <key> | clear | show)

Run 'formalizer <command> -h' for the flags of a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "formalize":
		err = runFormalize(ctx, args)
	case "questions":
		err = runQuestions(ctx, args)
	case "watch":
		err = runWatch(ctx, args)
	case "models":
		err = runModels(args)
	case "key":
		err = runKey(ctx, args)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, formalizer.UserMessage(err))
		os.Exit(1)
	}
}

// commonFlags are shared by the commands that load configuration.
type commonFlags struct {
	configPath string
	model      string
	apiKey     string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "config.yaml", "path to the YAML config file")
	fs.StringVar(&c.model, "model", "", "model identifier (see 'formalizer models')")
	fs.StringVar(&c.apiKey, "api-key", "", "API key for this run; overrides saved and environment keys")
}

// load reads the config file; an absent default config.yaml means defaults.
func (c *commonFlags) load(fs *flag.FlagSet) (*config.Config, error) {
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	if explicit {
		return config.Load(c.configPath)
	}
	return config.LoadOrDefault(c.configPath)
}
