package schema

// advisoryTree is built once; Advisory() hands out the shared pointer.
var advisoryTree = obj(map[string]*Node{
	"suggested_crop_for_cultivation": str(),
	"why": obj(map[string]*Node{
		"soil_suitability": str(),
		"crop_rotation":    str(),
		"market_demand":    str(),
	}, "soil_suitability", "crop_rotation", "market_demand"),
	"soil_health_assessment": obj(map[string]*Node{
		"overall_assessment": str(),
		"improvement_recommendations": arr(obj(map[string]*Node{
			"recommendation": str(),
			"benefit":        str(),
			"how_to_steps":   arr(str()),
		}, "recommendation", "benefit", "how_to_steps")),
	}, "overall_assessment", "improvement_recommendations"),
	"time_to_complete_harvest": obj(map[string]*Node{
		"duration_days_range": str(),
		"season_window":       str(),
		"assumptions":         str(),
	}, "duration_days_range", "season_window"),
	"estimated_total_expense_for_user_land": obj(map[string]*Node{
		"currency": strDefault("INR"),
		"amount":   num(),
		"breakdown": obj(map[string]*Node{
			"seeds":                    num(),
			"land_preparation":         num(),
			"fertilizer_and_nutrients": num(),
			"irrigation_and_water":     num(),
			"labor":                    num(),
			"pest_and_disease_control": num(),
			"harvesting_and_transport": num(),
			"miscellaneous":            num(),
		}, "seeds", "land_preparation", "fertilizer_and_nutrients", "irrigation_and_water",
			"labor", "pest_and_disease_control", "harvesting_and_transport", "miscellaneous"),
		"unit_cost_basis": str(),
		"assumptions":     str(),
	}, "currency", "amount", "breakdown"),
	"irrigation_schedule": obj(map[string]*Node{
		"frequency":            str(),
		"method":               str(),
		"seasonal_adjustments": str(),
		"notes":                str(),
	}, "frequency", "method"),
	"profitability_projection": obj(map[string]*Node{
		"expected_yield": obj(map[string]*Node{
			"value_range_per_acre": str(),
			"unit":                 strDefault("quintals per acre"),
			"assumptions":          str(),
		}, "value_range_per_acre", "unit"),
		"farm_gate_price": obj(map[string]*Node{
			"currency":                  strDefault("INR"),
			"price_per_quintal_assumed": num(),
			"assumptions":               str(),
		}, "currency", "price_per_quintal_assumed"),
		"gross_revenue_for_user_land": obj(map[string]*Node{
			"currency":     strDefault("INR"),
			"amount_range": str(),
		}, "currency", "amount_range"),
		"net_profit_for_user_land": obj(map[string]*Node{
			"currency":     strDefault("INR"),
			"amount_range": str(),
		}, "currency", "amount_range"),
		"roi_percentage_range": str(),
	}, "expected_yield", "farm_gate_price", "gross_revenue_for_user_land",
		"net_profit_for_user_land", "roi_percentage_range"),
	"pest_and_disease_management": arr(obj(map[string]*Node{
		"name":       str(),
		"type":       str(),
		"symptoms":   str(),
		"management": arr(str()),
	}, "name", "type", "symptoms", "management")),
	"fertilizer_recommendations": arr(obj(map[string]*Node{
		"stage":             str(),
		"fertilizer":        str(),
		"dosage_per_acre":   str(),
		"application_notes": str(),
	}, "stage", "fertilizer", "dosage_per_acre")),
	"recommended_marketplaces": arr(obj(map[string]*Node{
		"name":         str(),
		"type":         str(),
		"region":       str(),
		"why_suitable": str(),
		"phone":        str(),
	}, "name", "type", "region", "why_suitable")),
	"key_practices_for_success": arr(str()),
	"warnings_and_constraints":  arr(str()),
	"data_gaps_and_assumptions": arr(str()),
},
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
)

// Advisory returns the crop advisory schema tree. The returned tree is
// shared and must not be mutated.
func Advisory() *Node {
	return advisoryTree
}
