package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goliatone/go-decor/pkg/renderers/templated"
	"github.com/goliatone/go-decor/pkg/template"
)

// confirmFunc asks a yes/no question. Replaced in tests.
var confirmFunc = surveyConfirm

var errAborted = errors.New("aborted")

func newTemplateCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Work with decor templates",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the built-in template to path as a starting point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateInit(args[0], force, stdin, stdout)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file without asking")

	checkCmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Report the slots a template does not define",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateCheck(args[0], stdout)
		},
	}

	cmd.AddCommand(initCmd, checkCmd)
	return cmd
}

func runTemplateInit(target string, force bool, stdin io.Reader, stdout io.Writer) error {
	if _, err := os.Stat(target); err == nil && !force {
		if !interactive(stdin) {
			return fmt.Errorf("%s exists; use --force to overwrite", target)
		}
		ok, err := confirmFunc(fmt.Sprintf("%s exists. Overwrite?", target))
		if err != nil {
			return err
		}
		if !ok {
			return errAborted
		}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(target, []byte(templated.DefaultTemplate()), 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	_, err := fmt.Fprintf(stdout, "template written to %s\n", target)
	return err
}

func runTemplateCheck(path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = template.Parse(string(data))
	if missing := template.MissingSlots(err); missing != nil {
		for _, name := range missing {
			if _, werr := fmt.Fprintln(stdout, name); werr != nil {
				return werr
			}
		}
		return fmt.Errorf("%s: %d slots missing", path, len(missing))
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s defines every slot\n", path)
	return err
}

// interactive reports whether stdin is a terminal.
func interactive(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func surveyConfirm(message string) (bool, error) {
	var out bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, errAborted
		}
		return false, err
	}
	return out, nil
}
