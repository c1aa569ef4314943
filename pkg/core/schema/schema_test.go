package schema

import "testing"

func TestAdvisoryTreeIsValid(t *testing.T) {
	if err := Advisory().Validate(); err != nil {
		t.Fatalf("advisory tree: %v", err)
	}
}

func TestWeatherTreeIsValid(t *testing.T) {
	if err := Weather().Validate(); err != nil {
		t.Fatalf("weather tree: %v", err)
	}
}

func TestAdvisoryRequiredFieldsArePresent(t *testing.T) {
	tree := Advisory()
	want := []string{
		"suggested_crop_for_cultivation",
		"why",
		"soil_health_assessment",
		"time_to_complete_harvest",
		"estimated_total_expense_for_user_land",
		"irrigation_schedule",
		"profitability_projection",
		"pest_and_disease_management",
		"fertilizer_recommendations",
		"recommended_marketplaces",
		"warnings_and_constraints",
		"data_gaps_and_assumptions",
	}
	if len(tree.Required) != len(want) {
		t.Fatalf("required count = %d, want %d", len(tree.Required), len(want))
	}
	for i, name := range want {
		if tree.Required[i] != name {
			t.Fatalf("required[%d] = %q, want %q", i, tree.Required[i], name)
		}
	}
}

func TestValidateRejectsRequiredWithoutProperty(t *testing.T) {
	n := obj(map[string]*Node{"a": str()}, "a", "b")
	if err := n.Validate(); err == nil {
		t.Fatal("want error for required name missing from properties")
	}
}

func TestValidateRejectsArrayWithoutItems(t *testing.T) {
	n := &Node{Kind: Array}
	if err := n.Validate(); err == nil {
		t.Fatal("want error for ARRAY node without items")
	}
}

func TestValidateRejectsUnknownKind(t *testing.T) {
	n := &Node{Kind: Kind("DATE")}
	if err := n.Validate(); err == nil {
		t.Fatal("want error for unknown kind")
	}
}

func TestSharedTreesReturnSamePointer(t *testing.T) {
	if Advisory() != Advisory() {
		t.Fatal("Advisory() must return the shared tree")
	}
	if Weather() != Weather() {
		t.Fatal("Weather() must return the shared tree")
	}
}
