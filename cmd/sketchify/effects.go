package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/esimov/sketchify/effect"
	"github.com/spf13/cobra"
)

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")

	styleEffect = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Width(24)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

func newEffectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "effects",
		Short: "List the available animation effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, e := range effect.Catalog() {
				p := e.DefaultParams()
				info := fmt.Sprintf("%d frames @ %d fps", p.FrameCount, p.FPS)
				if e.Transition {
					info = fmt.Sprintf("%v @ %d fps", p.Duration, p.FPS)
				}
				fmt.Fprintf(w, "%s %-5s %s\n", styleEffect.Render(e.Name), e.Container.Ext(), styleDim.Render(info))
			}
			return nil
		},
	}
}
