package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/pkordes/visamarker/internal/domain"
)

// tripFlags are the four inputs shared by the document commands.
type tripFlags struct {
	nationality string
	destination string
	date        string
	purpose     string
	raw         bool
}

func (f tripFlags) request() (domain.TripRequest, error) {
	req := domain.TripRequest{
		Nationality: f.nationality,
		Destination: f.destination,
		Purpose:     f.purpose,
	}
	if f.date != "" {
		d, err := time.Parse(domain.DateLayout, f.date)
		if err != nil {
			return req, fmt.Errorf("--date must be %s: %w", domain.DateLayout, err)
		}
		req.TravelDate = d
	}
	return req, nil
}

// newDocumentCmds returns one command per document: the checklist plus one
// for each lazily generated slot.
func newDocumentCmds(a *app) []*cobra.Command {
	cmds := []*cobra.Command{newDocumentCmd(a, "checklist", "Print the visa checklist", "")}
	for _, k := range domain.SlotKinds {
		name := strings.ReplaceAll(string(k), "_", "-")
		cmds = append(cmds, newDocumentCmd(a, name, "Print the "+strings.ToLower(k.Title()), k))
	}
	return cmds
}

func newDocumentCmd(a *app, use, short string, kind domain.SlotKind) *cobra.Command {
	var flags tripFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: "  visamarker " + use +
			` --nationality Kenya --destination Japan --date 2030-06-01 --purpose Tourism`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			text, err := a.document(cmd, req, kind)
			if err != nil {
				return err
			}
			if !flags.raw {
				text, err = renderTerminal(text)
				if err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVar(&flags.nationality, "nationality", "", "your nationality (see `visamarker options`)")
	cmd.Flags().StringVar(&flags.destination, "destination", "", "destination country")
	cmd.Flags().StringVar(&flags.date, "date", "", "travel date, "+domain.DateLayout)
	cmd.Flags().StringVar(&flags.purpose, "purpose", "", "purpose of travel")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "print markdown instead of rendering it")
	for _, f := range []string{"nationality", "destination", "date", "purpose"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

// document submits the trip and returns the requested document. An empty
// kind means the checklist.
func (a *app) document(cmd *cobra.Command, req domain.TripRequest, kind domain.SlotKind) (string, error) {
	plans, err := a.planService()
	if err != nil {
		return "", err
	}
	ctx := cmd.Context()
	plan, err := plans.Submit(ctx, req)
	if err != nil {
		return "", err
	}
	if kind == "" {
		return plan.Checklist, nil
	}
	slot, err := plans.Generate(ctx, plan.ID, kind)
	if err != nil {
		return "", err
	}
	if slot.State == domain.SlotFailed {
		return "", errors.New(slot.Error)
	}
	return slot.Content, nil
}

func renderTerminal(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render(md)
}
