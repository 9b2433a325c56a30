package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"aurelia-backend/internal/profile"
	"aurelia-backend/internal/recommendations"
)

var (
	deriveSkinType string
	deriveAgeGroup string
	deriveConcerns []string
	deriveBudget   string
	deriveAllergy  string
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Print the recommendation for a set of answers as JSON",
	RunE:  runDerive,
}

func init() {
	deriveCmd.Flags().StringVar(&deriveSkinType, "skin-type", "", "Skin type")
	deriveCmd.Flags().StringVar(&deriveAgeGroup, "age-group", "", "Age group")
	deriveCmd.Flags().StringSliceVar(&deriveConcerns, "concern", nil, "Concern (repeatable, order kept)")
	deriveCmd.Flags().StringVar(&deriveBudget, "budget", "", "Budget range")
	deriveCmd.Flags().StringVar(&deriveAllergy, "allergies", "", "Allergy notes")
	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, _ []string) error {
	answers, err := buildAnswers()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(recommendations.Derive(answers), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func buildAnswers() (profile.Answers, error) {
	patch := profile.AnswerPatch{
		SkinType:     &deriveSkinType,
		AgeGroup:     &deriveAgeGroup,
		AllergyNotes: &deriveAllergy,
		Budget:       &deriveBudget,
	}
	if err := patch.Validate(); err != nil {
		return profile.Answers{}, err
	}
	answers := profile.Answers{
		SkinType:     deriveSkinType,
		AgeGroup:     deriveAgeGroup,
		AllergyNotes: deriveAllergy,
		Budget:       deriveBudget,
	}
	for _, c := range deriveConcerns {
		if err := profile.ValidateConcern(c); err != nil {
			return profile.Answers{}, fmt.Errorf("concern %q: %w", c, err)
		}
		if !answers.HasConcern(c) {
			answers.ToggleConcern(c)
		}
	}
	return answers, nil
}
