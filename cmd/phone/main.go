// Command phone formats and validates phone numbers from the command line.
//
//	phone format -c US,GB -f international "07400 123456"
//	phone validate -r "phone:AUTO,mobile" +447400123456
//	phone validate -d phone_country=GB "07400 123456"
//	phone info -o yaml +16502530000
//
// Defaults come from PHONE_* environment variables (see phone.Config).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/phonekit/pkg/logger"
	"github.com/dmitrymomot/phonekit/pkg/phone"
)

// errInvalid signals a number that failed validation; it maps to exit code 1
// without an error log line.
var errInvalid = errors.New("invalid phone number")

func main() {
	cfg, err := phone.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(append(cfg.LoggerOptions(), logger.WithOutput(os.Stderr))...)
	logger.SetAsDefault(log)

	if err := run(os.Args[1:], os.Stdout, cfg, log); err != nil {
		if errors.Is(err, errInvalid) {
			os.Exit(1)
		}
		log.Error("phone command failed", logger.Error(err))
		os.Exit(2)
	}
}

func run(args []string, stdout io.Writer, cfg phone.Config, log *slog.Logger) error {
	if len(args) == 0 {
		return errors.New("usage: phone <format|validate|info> [flags] number...")
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "format":
		return runFormat(args, stdout, cfg)
	case "validate":
		return runValidate(args, stdout, cfg, log)
	case "info":
		return runInfo(args, stdout, cfg)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
