package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"orgsetup/internal/config"
	"orgsetup/internal/domain"
	"orgsetup/internal/orgcreate"
	"orgsetup/internal/ui/theme"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("create failed")

func newCreateCmd() *cobra.Command {
	var name, desc, cover string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organization without the interactive form",
		Example: `  orgsetup create --name "Acme Labs"
  orgsetup create --name Acme --desc "Rockets and anvils" --cover https://example.com/acme.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("cover") {
				cover = config.GetString(config.KeyDefaultCover)
			}
			return runCreate(cmd, domain.FormValues{Name: name, Desc: desc, Cover: cover})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Organization name (4 to 16 characters)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image URL (defaults to form.default-cover)")
	return cmd
}

func runCreate(cmd *cobra.Command, values domain.FormValues) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	form := orgcreate.NewForm(values.Cover)
	form.Change(domain.FieldName, values.Name)
	form.Change(domain.FieldDesc, values.Desc)

	ctrl := orgcreate.NewController(orgcreate.Deps{
		Creator:  sess.client,
		Notifier: newStderrNotifier(cmd.ErrOrStderr()),
		State:    sess.store,
	})

	out := ctrl.Submit(cmd.Context(), form)
	switch {
	case out.Succeeded():
		fmt.Fprintln(cmd.OutOrStdout(), out.Path)
		return nil
	case out.Kind == orgcreate.OutcomeUnrecognized:
		return fmt.Errorf("create organization: %w", out.Err)
	default:
		return errReported
	}
}

// stderrNotifier prints the create flow's warnings and errors.
type stderrNotifier struct {
	w    io.Writer
	warn lipgloss.Style
	err  lipgloss.Style
}

func newStderrNotifier(w io.Writer) stderrNotifier {
	th := theme.Current()
	return stderrNotifier{
		w:    w,
		warn: lipgloss.NewStyle().Foreground(th.Warning).Bold(true),
		err:  lipgloss.NewStyle().Foreground(th.Error).Bold(true),
	}
}

func (n stderrNotifier) Warn(msg string) {
	fmt.Fprintf(n.w, "%s %s\n", n.warn.Render("⚠ Warning:"), msg)
}

func (n stderrNotifier) Error(msg string) {
	fmt.Fprintf(n.w, "%s %s\n", n.err.Render("✖ Error:"), msg)
}
