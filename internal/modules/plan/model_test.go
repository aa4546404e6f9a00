package plan

import (
	"errors"
	"testing"

	"lushu/internal/ai"
)

func validReq() ai.PlanRequest {
	return ai.PlanRequest{
		Destination: "日本",
		StartDate:   "2025-07-01",
		EndDate:     "2025-07-05",
		Budget:      10000,
		Travelers:   2,
		Preferences: "美食",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ai.PlanRequest)
		wantErr bool
	}{
		{"valid", func(r *ai.PlanRequest) {}, false},
		{"single day trip", func(r *ai.PlanRequest) { r.EndDate = r.StartDate }, false},
		{"missing destination", func(r *ai.PlanRequest) { r.Destination = "" }, true},
		{"bad start date", func(r *ai.PlanRequest) { r.StartDate = "07/01/2025" }, true},
		{"bad end date", func(r *ai.PlanRequest) { r.EndDate = "明天" }, true},
		{"end before start", func(r *ai.PlanRequest) { r.EndDate = "2025-06-30" }, true},
		{"budget too low", func(r *ai.PlanRequest) { r.Budget = 99 }, true},
		{"budget too high", func(r *ai.PlanRequest) { r.Budget = 1_000_001 }, true},
		{"budget at bounds", func(r *ai.PlanRequest) { r.Budget = 100 }, false},
		{"zero travelers", func(r *ai.PlanRequest) { r.Travelers = 0 }, true},
		{"too many travelers", func(r *ai.PlanRequest) { r.Travelers = 21 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReq()
			tt.mutate(&req)
			err := validateRequest(req)
			if tt.wantErr && !errors.Is(err, ErrBadRequest) {
				t.Errorf("err = %v, want ErrBadRequest", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected err: %v", err)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	empty := ""
	title := "新标题"
	badBudget := 50
	okBudget := 5000

	if err := validateUpdate(UpdateCommand{}); err != nil {
		t.Errorf("empty update should be valid: %v", err)
	}
	if err := validateUpdate(UpdateCommand{Title: &title, Budget: &okBudget}); err != nil {
		t.Errorf("valid update rejected: %v", err)
	}
	if err := validateUpdate(UpdateCommand{Title: &empty}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("empty title: err = %v, want ErrBadRequest", err)
	}
	if err := validateUpdate(UpdateCommand{Budget: &badBudget}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("bad budget: err = %v, want ErrBadRequest", err)
	}
}
