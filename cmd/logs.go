package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/intervu/internal/store"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect archived interview sessions",
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived interviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rows, err := s.InterviewRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list interviews: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No archived interviews found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-20s  %-16s  %s\n",
			"ID", "Date", "Candidate", "Role", "Session")
		fmt.Println(strings.Repeat("─", 90))

		for _, r := range rows {
			name := r.CandidateName
			if len(name) > 20 {
				name = name[:20]
			}
			fmt.Printf("%-5d  %-19s  %-20s  %-16s  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				name,
				r.Role,
				r.SessionID,
			)
		}
		return nil
	},
}

var logsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View one archived interview in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		log, err := s.InterviewRepo().Get(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get interview: %w", err)
		}
		if log == nil {
			return fmt.Errorf("interview %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("Session:    %s\n", log.SessionID)
		fmt.Printf("Candidate:  %s\n", log.CandidateName)
		fmt.Printf("Role:       %s\n", log.Role)
		fmt.Printf("Date:       %s\n", log.CreatedAt.Local().Format("2006-01-02 15:04:05"))

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("SKILL PROFILE")
		fmt.Println(sep)
		skills := make([]string, 0, len(log.SkillProfile))
		for skill := range log.SkillProfile {
			skills = append(skills, skill)
		}
		sort.Strings(skills)
		for _, skill := range skills {
			rec := log.SkillProfile[skill]
			fmt.Printf("%-20s  %-9s  score %d", skill, rec.Status, rec.Score)
			if rec.Efficiency > 0 {
				fmt.Printf("  efficiency %d", rec.Efficiency)
			}
			fmt.Println()
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REPORT")
		fmt.Println(sep)
		fmt.Println(log.Report)

		fmt.Println(sep)
		fmt.Println("TRANSCRIPT")
		fmt.Println(sep)
		for _, entry := range log.Transcript {
			speaker := "Interviewer"
			if entry.Role == "user" {
				speaker = "Candidate"
			}
			fmt.Printf("[%s]\n%s\n\n", speaker, entry.Content)
		}

		return nil
	},
}

func init() {
	logsListCmd.Flags().Int("limit", 20, "Maximum number of interviews to show")

	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsViewCmd)
}
