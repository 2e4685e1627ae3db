package medication

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMealSlots(t *testing.T) {
	for _, slot := range []string{
		TimeBeforeBreakfast, TimeAfterBreakfast,
		TimeBeforeLunch, TimeAfterLunch,
		TimeBeforeDinner, TimeAfterDinner,
		TimeBedtime,
	} {
		if !validTimes[slot] {
			t.Errorf("slot %q should be valid", slot)
		}
	}

	for _, slot := range []string{"", "morning", "noon", "evening", "BEDTIME", "after breakfast"} {
		if validTimes[slot] {
			t.Errorf("slot %q should be rejected", slot)
		}
	}
}

func TestCreateRejectsUnknownSlot(t *testing.T) {
	svc := New(nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{
		Name: "Metformin",
		Dose: "500mg",
		Time: "morning",
	})
	if !errors.Is(err, ErrInvalidTime) {
		t.Errorf("Create() error = %v, want ErrInvalidTime", err)
	}
}
