package onboarding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilyakharev/glossy/internal/client/models"
)

func TestNextStep_DecisionTable(t *testing.T) {
	tests := []struct {
		name  string
		intro bool
		plan  bool
		pay   bool
		want  models.Step
	}{
		{name: "nothing done", want: models.StepIntro},
		{name: "intro skipped but plan done", plan: true, pay: true, want: models.StepIntro},
		{name: "intro done", intro: true, want: models.StepPlanSelection},
		{name: "plan pending despite payment", intro: true, pay: true, want: models.StepPlanSelection},
		{name: "payment pending", intro: true, plan: true, want: models.StepPayment},
		{name: "all done", intro: true, plan: true, pay: true, want: models.StepCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := models.OnboardingState{
				IntroCompleted:         tt.intro,
				PlanSelectionCompleted: tt.plan,
				PaymentCompleted:       tt.pay,
			}
			require.Equal(t, tt.want, NextStep(st))
		})
	}
}

// A stored completed flag cannot skip unfinished steps; the derived table is
// what gates navigation.
func TestNextStep_IgnoresStoredCompletedFlag(t *testing.T) {
	st := models.OnboardingState{
		IntroCompleted:      true,
		OnboardingCompleted: true,
	}
	require.Equal(t, models.StepPlanSelection, NextStep(st))
}
