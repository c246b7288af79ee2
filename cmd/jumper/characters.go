package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List playable heroes",
	Long:  `Shows every hero that can be picked with 'jumper play --character'.`,
	Args:  cobra.NoArgs,
	Run:   runCharacters,
}

func runCharacters(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE", "SPRITE", "")
	for _, c := range assets.List() {
		note := ""
		if c.ID == assets.DefaultCharacter {
			note = "default"
		}
		t.Row(c.ID, c.Title, string(c.RunRight[0]), note)
	}

	fmt.Fprintln(out, t.String())
	fmt.Fprintln(out, "Run 'jumper play --character <id>' to play a hero.")
}
