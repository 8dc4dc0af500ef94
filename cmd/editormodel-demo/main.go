// Command editormodel-demo runs a terminal view bound to an EditorModel.
// Key presses change model attributes; the view re-renders from the model's
// change notifications.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/iw2rmb/editormodel"
	"github.com/iw2rmb/editormodel/model"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("editormodel-demo failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	f := &demoFlags{}
	root := &cobra.Command{
		Use:           "editormodel-demo",
		Short:         "Terminal view over an observable editor model",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, f)
		},
	}
	f.register(root)
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the editormodel version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), editormodel.VersionTag())
			return err
		},
	}
}

func runDemo(cmd *cobra.Command, f *demoFlags) error {
	ctx := cmd.Context()
	opts, err := optionsFromFlags(cmd, f)
	if err != nil {
		return err
	}

	logger, closeLog, err := openModelLog(f.logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	opts.Logger = logger

	m := model.New(opts)
	v := newView(m, DefaultStyle(), f.rows)
	defer v.close()

	p := tea.NewProgram(v, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	pslog.Ctx(ctx).Info("editormodel-demo exit", "changes", v.events.count, "bytes", len(m.Text()))
	return nil
}

// openModelLog returns the logger handed to the model. The terminal belongs
// to the view while it runs, so without a log file the model does not log.
func openModelLog(path string) (pslog.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := pslog.NewWithOptions(fh, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
	return logger, func() { _ = fh.Close() }, nil
}
