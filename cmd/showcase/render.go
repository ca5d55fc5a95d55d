package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vangoframework/formkit/internal/config"
	"github.com/vangoframework/formkit/internal/showcase"
	"github.com/vangoframework/formkit/internal/templates/pages"
)

type renderFlags struct {
	out      string
	htmxSrc  string
	fragment bool
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the showcase page as static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.out == "" || flags.out == "-" {
				return render(cmd, cmd.OutOrStdout(), flags)
			}
			return renderFile(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringVar(&flags.htmxSrc, "htmx-src", config.DefaultHTMXSrc, "htmx script URL")
	cmd.Flags().BoolVar(&flags.fragment, "fragment", false, "Render only the form, without the document shell")

	return cmd
}

// renderFile writes the page to flags.out. A failed flush or close is an error.
func renderFile(cmd *cobra.Command, flags *renderFlags) error {
	f, err := os.Create(flags.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", flags.out, err)
	}

	w := bufio.NewWriter(f)
	if err := render(cmd, w, flags); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", flags.out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", flags.out, err)
	}
	return nil
}

func render(cmd *cobra.Command, w io.Writer, flags *renderFlags) error {
	catalog, err := showcase.DefaultCatalog()
	if err != nil {
		return err
	}
	form := showcase.NewForm(catalog)

	if flags.fragment {
		return pages.Form(form).Render(cmd.Context(), w)
	}
	return pages.Layout("formkit showcase", flags.htmxSrc, pages.Showcase(form)).Render(cmd.Context(), w)
}
