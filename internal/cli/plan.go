package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/slt/internal/adapters/cli"
	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/wire"
)

// PlanCmd returns the plan command
func PlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage a case's therapy plan",
		Long:  "Add, edit and review the goals of a therapy case",
	}

	cmd.AddCommand(planShowCmd())
	cmd.AddCommand(planAddCmd())
	cmd.AddCommand(planEditCmd())
	cmd.AddCommand(planReviewCmd())

	return cmd
}

func planShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [case-id]",
		Short: "Show the goals of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			goals, err := wire.PlanService().GetPlan(cmd.Context(), caseID)
			if err != nil {
				return fmt.Errorf("failed to get plan: %w", err)
			}
			printGoals(goals)
			return nil
		},
	}
}

func planAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [case-id] [description:target]...",
		Short: "Add goals to a case",
		Long: `Add one or more goals to a case. Each goal is given as
description:target, where target is the number of sessions needed.

Example:
  slt plan add 1 "Produce /s/ in initial position:5" "Two-word phrases:3"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			specs := make([]primary.GoalSpec, 0, len(args)-1)
			for _, arg := range args[1:] {
				spec, err := parseGoalSpec(arg)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}

			added, err := wire.PlanService().AddGoals(cmd.Context(), primary.AddGoalsRequest{CaseID: caseID, Goals: specs})
			if err != nil {
				return fmt.Errorf("failed to add goals: %w", err)
			}

			fmt.Printf("✓ Added %d goal(s) to case %d\n", len(added), caseID)
			return nil
		},
	}
	return cmd
}

func planEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [case-id] [goal-number]",
		Short: "Edit a goal's description or target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			goalNumber, err := parseID(args[1], "goal")
			if err != nil {
				return err
			}
			description, _ := cmd.Flags().GetString("description")
			target, _ := cmd.Flags().GetInt("target")

			g, err := wire.PlanService().EditGoal(cmd.Context(), primary.EditGoalRequest{
				CaseID:         caseID,
				GoalNumber:     goalNumber,
				Description:    description,
				TargetSessions: target,
			})
			if err != nil {
				return fmt.Errorf("failed to edit goal: %w", err)
			}

			fmt.Printf("✓ Goal %d: %s (%d/%d, %s)\n", g.Number, g.Description, g.Achieved, g.TargetSessions, g.Status)
			return nil
		},
	}
	cmd.Flags().String("description", "", "New description (empty keeps the current one)")
	cmd.Flags().Int("target", 0, "New target sessions (0 keeps the current one)")
	return cmd
}

func planReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review [case-id]",
		Short: "Record a supervisor's review of a therapy plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			supervisorID, _ := cmd.Flags().GetInt("supervisor")
			reject, _ := cmd.Flags().GetBool("reject")
			feedback, _ := cmd.Flags().GetString("feedback")

			if err := wire.EvaluationService().ReviewPlan(cmd.Context(), primary.ReviewPlanRequest{
				CaseID:       caseID,
				SupervisorID: supervisorID,
				Approved:     !reject,
				Feedback:     feedback,
			}); err != nil {
				return fmt.Errorf("failed to review plan: %w", err)
			}

			verdict := "approved"
			if reject {
				verdict = "returned for changes"
			}
			fmt.Printf("✓ Plan for case %d %s\n", caseID, verdict)
			return nil
		},
	}
	cmd.Flags().Int("supervisor", 0, "Reviewing supervisor id (default: the acting supervisor)")
	cmd.Flags().Bool("reject", false, "Return the plan for changes")
	cmd.Flags().String("feedback", "", "Review feedback")
	return cmd
}

func printGoals(goals []*primary.Goal) {
	if len(goals) == 0 {
		fmt.Println("No goals set")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "#\tGOAL\tPROGRESS\tSTATUS")
	for _, g := range goals {
		fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\n", g.Number, g.Description, g.Achieved, g.TargetSessions, cliadapter.GoalBadge(g.Status))
	}
	w.Flush()
}
