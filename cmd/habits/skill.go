// ABOUTME: CLI command installing the Claude Code skill definition.
// ABOUTME: Embeds SKILL.md and copies it to ~/.claude/skills/habits/.
package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillDefinition []byte

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the habits skill for Claude Code.

This copies the skill definition to ~/.claude/skills/habits/ so Claude
Code can create habits, log progress, and analyze streaks contextually.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		skillDir := filepath.Join(home, ".claude", "skills", "habits")
		skillPath := filepath.Join(skillDir, "SKILL.md")

		fmt.Println("This installs the habits skill for Claude Code to:")
		fmt.Printf("  %s\n\n", skillPath)
		if _, err := os.Stat(skillPath); err == nil {
			fmt.Println("An existing skill file will be overwritten.")
			fmt.Println()
		}

		if !skillSkipConfirm && !confirm("Install the habits skill? [y/N] ") {
			fmt.Println("Installation canceled.")
			return nil
		}

		if err := os.MkdirAll(skillDir, 0750); err != nil {
			return fmt.Errorf("failed to create skill directory: %w", err)
		}
		if err := os.WriteFile(skillPath, skillDefinition, 0600); err != nil {
			return fmt.Errorf("failed to write skill file: %w", err)
		}

		fmt.Println("✓ Installed habits skill.")
		fmt.Println("Try asking Claude: \"Check off my reading habit\" or \"How is my sports streak?\"")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}
