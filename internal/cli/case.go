package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/slt/internal/ports/primary"
	"github.com/example/slt/internal/wire"
)

// CaseCmd returns the case command
func CaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Manage therapy cases",
		Long:  "Allocate, inspect, evaluate and close therapy cases",
	}

	cmd.AddCommand(caseAllocateCmd())
	cmd.AddCommand(caseShowCmd())
	cmd.AddCommand(caseListCmd())
	cmd.AddCommand(caseSearchCmd())
	cmd.AddCommand(caseEvaluateCmd())
	cmd.AddCommand(caseCloseCmd())
	cmd.AddCommand(caseHistoryCmd())

	return cmd
}

func caseAllocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Register a patient and open their case",
		Long: `Register a patient and open a case under a supervisor.

Without --therapist the least-loaded therapist is chosen.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			diagnosis, _ := cmd.Flags().GetString("diagnosis")
			age, _ := cmd.Flags().GetInt("age")
			gender, _ := cmd.Flags().GetString("gender")
			contact, _ := cmd.Flags().GetString("contact")
			admission, _ := cmd.Flags().GetString("admission")
			supervisorID, _ := cmd.Flags().GetInt("supervisor")
			therapistID, _ := cmd.Flags().GetInt("therapist")

			resp, err := wire.AllocationService().AllocateCase(cmd.Context(), primary.AllocateCaseRequest{
				Patient: primary.PatientInfo{
					Name:          name,
					Diagnosis:     diagnosis,
					Age:           age,
					Gender:        gender,
					Contact:       contact,
					AdmissionDate: resolveDate(admission),
				},
				SupervisorID: supervisorID,
				AutoAllocate: therapistID == 0,
				TherapistID:  therapistID,
			})
			if err != nil {
				return fmt.Errorf("failed to allocate case: %w", err)
			}

			fmt.Printf("✓ Opened case %d for patient %d %s\n", resp.CaseID, resp.PatientID, name)
			fmt.Printf("  Therapist:  %s (#%d)\n", resp.TherapistName, resp.TherapistID)
			fmt.Printf("  Supervisor: %s\n", resp.SupervisorName)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Patient name (required)")
	cmd.Flags().String("diagnosis", "", "Diagnosis")
	cmd.Flags().Int("age", 0, "Patient age")
	cmd.Flags().String("gender", "", "Gender code (M, F, O)")
	cmd.Flags().String("contact", "", "Contact details")
	cmd.Flags().String("admission", "today", "Admission date (YYYY-MM-DD or today)")
	cmd.Flags().Int("supervisor", 0, "Supervisor id (required)")
	cmd.Flags().Int("therapist", 0, "Therapist id (default: least-loaded)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("supervisor")

	return cmd
}

func caseShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [case-id]",
		Short: "Show case details with goals and sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			_, err = wire.CaseAdapter().Show(cmd.Context(), caseID)
			return err
		},
	}
}

func caseListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return wire.CaseAdapter().List(cmd.Context(), primary.CaseFilters{ActiveOnly: !all})
		},
	}
	cmd.Flags().Bool("all", false, "Include closed cases")
	return cmd
}

func caseSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search cases by patient, staff or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetInt("patient")
			therapistID, _ := cmd.Flags().GetInt("therapist")
			supervisorID, _ := cmd.Flags().GetInt("supervisor")
			status, _ := cmd.Flags().GetString("status")
			active, _ := cmd.Flags().GetBool("active")

			return wire.CaseAdapter().List(cmd.Context(), primary.CaseFilters{
				PatientID:    patientID,
				TherapistID:  therapistID,
				SupervisorID: supervisorID,
				Status:       status,
				ActiveOnly:   active,
			})
		},
	}
	cmd.Flags().Int("patient", 0, "Filter by patient id")
	cmd.Flags().Int("therapist", 0, "Filter by therapist id")
	cmd.Flags().Int("supervisor", 0, "Filter by supervisor id")
	cmd.Flags().String("status", "", "Filter by status (case-insensitive)")
	cmd.Flags().Bool("active", false, "Only active cases")
	return cmd
}

func caseEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [case-id]",
		Short: "Record supervisor feedback and a clinical rating",
		Long: `Record supervisor feedback on the latest session and set the clinical rating.

An active case can be evaluated once it has at least 10 sessions.
Evaluations are written by supervisors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			feedback, _ := cmd.Flags().GetString("feedback")
			rating, _ := cmd.Flags().GetFloat64("rating")

			if err := wire.EvaluationService().EvaluateCase(cmd.Context(), primary.EvaluateCaseRequest{
				CaseID:   caseID,
				Feedback: feedback,
				Rating:   rating,
			}); err != nil {
				return fmt.Errorf("failed to evaluate case: %w", err)
			}

			fmt.Printf("✓ Case %d evaluated (rating %.1f/5.0)\n", caseID, rating)
			return nil
		},
	}
	cmd.Flags().String("feedback", "", "Feedback on the latest session")
	cmd.Flags().Float64("rating", 0, "Clinical rating from 0 to 5")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func caseCloseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close [case-id]",
		Short: "Close a case and release the therapist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case")
			if err != nil {
				return err
			}
			endDate, _ := cmd.Flags().GetString("end-date")
			status, _ := cmd.Flags().GetString("status")
			rating, _ := cmd.Flags().GetFloat64("rating")

			if err := wire.EvaluationService().CloseCase(cmd.Context(), primary.CloseCaseRequest{
				CaseID:      caseID,
				EndDate:     resolveDate(endDate),
				FinalStatus: status,
				FinalRating: rating,
			}); err != nil {
				return fmt.Errorf("failed to close case: %w", err)
			}

			fmt.Printf("✓ Case %d closed as %s\n", caseID, status)
			return nil
		},
	}
	cmd.Flags().String("end-date", "today", "End date (YYYY-MM-DD or today)")
	cmd.Flags().String("status", "", "Final status, e.g. Discharged (required)")
	cmd.Flags().Float64("rating", 0, "Final clinical rating from 0 to 5")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func caseHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [case-id]",
		Short: "Show the lifecycle history of a case, or of all cases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, _ := cmd.Flags().GetString("action")
			actor, _ := cmd.Flags().GetString("by")
			limit, _ := cmd.Flags().GetInt("limit")

			filters := primary.EventFilters{Action: action, Actor: actor, Limit: limit}
			if len(args) == 1 {
				caseID, err := parseID(args[0], "case")
				if err != nil {
					return err
				}
				filters.CaseID = caseID
			}
			return wire.HistoryAdapter().List(cmd.Context(), filters)
		},
	}
	cmd.Flags().String("action", "", "Filter by action (allocate, add_goals, edit_goal, record_session, evaluate, close, review_plan)")
	cmd.Flags().String("by", "", "Filter by actor, e.g. therapist-1")
	cmd.Flags().Int("limit", 0, "Maximum number of events")
	return cmd
}
