package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rrinconline/sticker-lab-backend/records"
	"github.com/rrinconline/sticker-lab-backend/templates"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/rrinconline/sticker-lab-backend/validation"
	"github.com/spf13/cobra"
)

const (
	formatHTML    = "html"
	formatText    = "text"
	formatSubject = "subject"
)

type previewOptions struct {
	audience string
	format   string
	staff    []string
}

func newRootCmd() *cobra.Command {
	opts := &previewOptions{}

	rootCmd := &cobra.Command{
		Use:   "preview",
		Short: "Render notification emails from a sample submission",
		Long: `Reads a submission JSON file, runs it through validation and record building,
and prints one rendered notification to stdout.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.audience, "audience", string(types.AudienceStaff), "staff or submitter")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", formatHTML, "html, text or subject")
	rootCmd.PersistentFlags().StringSliceVar(&opts.staff, "staff", []string{"hello@stickermagnetlab.com"}, "staff recipients")

	rootCmd.AddCommand(
		newKindCmd(types.KindContact, "Render a contact inquiry", opts),
		newKindCmd(types.KindOrder, "Render an order", opts),
	)
	return rootCmd
}

func newKindCmd(kind types.Kind, short string, opts *previewOptions) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind) + " <file.json>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := render(kind, data, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func render(kind types.Kind, data []byte, opts *previewOptions) (string, error) {
	audience := types.Audience(opts.audience)
	if audience != types.AudienceStaff && audience != types.AudienceSubmitter {
		return "", fmt.Errorf("unknown audience %q", opts.audience)
	}

	rec, err := buildRecord(kind, data)
	if err != nil {
		return "", err
	}

	n, err := templates.NewRenderer(opts.staff).Render(rec, audience)
	if err != nil {
		return "", err
	}

	switch opts.format {
	case formatHTML:
		return n.HTML, nil
	case formatText:
		return n.Text, nil
	case formatSubject:
		return n.Subject, nil
	default:
		return "", fmt.Errorf("unknown format %q", opts.format)
	}
}

func buildRecord(kind types.Kind, data []byte) (types.Record, error) {
	builder := records.NewBuilder()

	switch kind {
	case types.KindOrder:
		var form types.OrderForm
		if err := json.Unmarshal(data, &form); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}
		if errs := validation.ValidateOrder(form); len(errs) > 0 {
			return nil, fmt.Errorf("invalid order: %s", strings.Join(errs, "; "))
		}
		return builder.Order(form), nil
	default:
		var form types.ContactForm
		if err := json.Unmarshal(data, &form); err != nil {
			return nil, fmt.Errorf("failed to parse contact: %w", err)
		}
		if errs := validation.ValidateContact(form); len(errs) > 0 {
			return nil, fmt.Errorf("invalid contact: %s", strings.Join(errs, "; "))
		}
		return builder.Contact(form), nil
	}
}
