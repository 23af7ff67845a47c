// Command finmanctl runs privileged account operations directly against the
// database: creating admins, promoting users and overriding balances.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jhaabhiiishek/finmanBackend/infra/initializer"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/service/account"
	"golang.org/x/term"
)

const usage = `Usage: finmanctl <command> [flags]

Commands:
  create-admin -email <email> [-name <name>] [-password <password>]
  promote      -email <email>
  set-balance  -email <email> -balance <amount>
  balance      -email <email>`

var (
	okColor  = color.New(color.FgGreen, color.Bold)
	errColor = color.New(color.FgRed, color.Bold)
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, connect); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		_, _ = errColor.Fprint(os.Stderr, "Error: ")
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads the server configuration and opens the same database the
// server uses.
func connect() (config.Deps, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return config.Deps{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return initializer.InitializeDependencies(cfg)
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	connect func() (config.Deps, error),
) error {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(stderr, usage)
		return errors.New("missing command")
	}
	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	email := fs.String("email", "", "Account email")
	name := fs.String("name", "Administrator", "Display name (create-admin)")
	password := fs.String("password", "", "Password (create-admin, prompts if omitted)")
	balance := fs.String("balance", "", "New balance in major units (set-balance)")

	switch cmd {
	case "create-admin", "promote", "set-balance", "balance":
	case "help", "-h", "--help":
		_, _ = fmt.Fprintln(stdout, usage)
		return flag.ErrHelp
	default:
		_, _ = fmt.Fprintln(stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-email is required")
	}

	var amount money.Amount
	if cmd == "set-balance" {
		var err error
		if amount, err = money.Parse(*balance); err != nil {
			return fmt.Errorf("invalid -balance %q: %w", *balance, err)
		}
	}
	if cmd == "create-admin" && *password == "" {
		_, _ = fmt.Fprint(stdout, "Password: ")
		p, err := readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		_, _ = fmt.Fprintln(stdout)
		*password = p
	}

	deps, err := connect()
	if err != nil {
		return err
	}
	defer func() {
		if deps.Close != nil {
			_ = deps.Close()
		}
	}()
	svc := account.NewService(deps)

	switch cmd {
	case "create-admin":
		a, err := svc.Register(ctx, *name, *email, *password)
		if err != nil {
			return err
		}
		if err := svc.Promote(ctx, a.Email); err != nil {
			return err
		}
		_, _ = okColor.Fprintf(stdout, "Admin %s created\n", a.Email)
	case "promote":
		if err := svc.Promote(ctx, *email); err != nil {
			return err
		}
		_, _ = okColor.Fprintf(stdout, "%s is now an admin\n", *email)
	case "set-balance":
		if err := svc.SetBalance(ctx, "finmanctl", *email, amount); err != nil {
			return err
		}
		_, _ = okColor.Fprintf(stdout, "Balance of %s set to %s\n", *email, amount)
	case "balance":
		a, err := svc.Get(ctx, *email)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "%s %s\n", a.Email, a.Balance)
	}
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// Pipes and tests.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
