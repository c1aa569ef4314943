package types

// CropAdvisory is the validated structured output of the advisory generator.
// It is constructed atomically from one model response and immutable
// thereafter; the caller that requested it owns it exclusively.
type CropAdvisory struct {
	SuggestedCrop       string                  `json:"suggested_crop_for_cultivation"`
	Why                 AdvisoryRationale       `json:"why"`
	SoilHealth          SoilHealthAssessment    `json:"soil_health_assessment"`
	HarvestTiming       HarvestTiming           `json:"time_to_complete_harvest"`
	EstimatedExpense    ExpenseEstimate         `json:"estimated_total_expense_for_user_land"`
	IrrigationSchedule  IrrigationSchedule      `json:"irrigation_schedule"`
	Profitability       ProfitabilityProjection `json:"profitability_projection"`
	PestManagement      []PestEntry             `json:"pest_and_disease_management"`
	Fertilizers         []FertilizerStage       `json:"fertilizer_recommendations"`
	Marketplaces        []Marketplace           `json:"recommended_marketplaces"`
	KeyPractices        []string                `json:"key_practices_for_success,omitempty"`
	Warnings            []string                `json:"warnings_and_constraints"`
	DataGapsAssumptions []string                `json:"data_gaps_and_assumptions"`
}

// AdvisoryRationale explains why the crop was recommended.
type AdvisoryRationale struct {
	SoilSuitability string `json:"soil_suitability"`
	CropRotation    string `json:"crop_rotation"`
	MarketDemand    string `json:"market_demand"`
}

// SoilHealthAssessment evaluates the stated soil and how to improve it.
type SoilHealthAssessment struct {
	OverallAssessment string            `json:"overall_assessment"`
	Improvements      []SoilImprovement `json:"improvement_recommendations"`
}

// SoilImprovement is one soil improvement recommendation with its expected
// benefit and ordered how-to steps.
type SoilImprovement struct {
	Recommendation string   `json:"recommendation"`
	Benefit        string   `json:"benefit"`
	HowToSteps     []string `json:"how_to_steps"`
}

// HarvestTiming states when a full harvest cycle completes.
type HarvestTiming struct {
	DurationDaysRange string `json:"duration_days_range"`
	SeasonWindow      string `json:"season_window"`
	Assumptions       string `json:"assumptions"`
}

// ExpenseEstimate totals cultivation cost for the user's land with a
// fixed-key breakdown.
type ExpenseEstimate struct {
	Currency      string           `json:"currency"`
	Amount        float64          `json:"amount"`
	Breakdown     ExpenseBreakdown `json:"breakdown"`
	UnitCostBasis string           `json:"unit_cost_basis,omitempty"`
	Assumptions   string           `json:"assumptions,omitempty"`
}

// ExpenseBreakdown itemizes cultivation expenses. The key set is fixed by
// the schema; consumers iterate these fields for charting.
type ExpenseBreakdown struct {
	Seeds             float64 `json:"seeds"`
	LandPreparation   float64 `json:"land_preparation"`
	Fertilizer        float64 `json:"fertilizer_and_nutrients"`
	Irrigation        float64 `json:"irrigation_and_water"`
	Labor             float64 `json:"labor"`
	PestControl       float64 `json:"pest_and_disease_control"`
	HarvestingTranspt float64 `json:"harvesting_and_transport"`
	Miscellaneous     float64 `json:"miscellaneous"`
}

// IrrigationSchedule describes how to water the recommended crop.
type IrrigationSchedule struct {
	Frequency           string `json:"frequency"`
	Method              string `json:"method"`
	SeasonalAdjustments string `json:"seasonal_adjustments,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// ProfitabilityProjection projects yield, price, revenue and profit. Profit
// may be negative; the generator never assumes a profit a priori.
type ProfitabilityProjection struct {
	ExpectedYield      ExpectedYield `json:"expected_yield"`
	FarmGatePrice      FarmGatePrice `json:"farm_gate_price"`
	GrossRevenue       AmountRange   `json:"gross_revenue_for_user_land"`
	NetProfit          AmountRange   `json:"net_profit_for_user_land"`
	ROIPercentageRange string        `json:"roi_percentage_range"`
}

// ExpectedYield is the projected per-acre yield range.
type ExpectedYield struct {
	ValueRangePerAcre string `json:"value_range_per_acre"`
	Unit              string `json:"unit"`
	Assumptions       string `json:"assumptions,omitempty"`
}

// FarmGatePrice is the assumed selling price used for revenue math.
type FarmGatePrice struct {
	Currency        string  `json:"currency"`
	PricePerQuintal float64 `json:"price_per_quintal_assumed"`
	Assumptions     string  `json:"assumptions,omitempty"`
}

// AmountRange is a formatted monetary range in a single fixed currency.
// The range stays free text on the wire; ParseAmountRange in the SDK offers
// a best-effort numeric view for charting.
type AmountRange struct {
	Currency    string `json:"currency"`
	AmountRange string `json:"amount_range"`
}

// PestEntry is one pest or disease with its management plan.
type PestEntry struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Symptoms   string   `json:"symptoms"`
	Management []string `json:"management"`
}

// FertilizerStage is one growth-stage fertilizer recommendation.
type FertilizerStage struct {
	Stage            string `json:"stage"`
	Fertilizer       string `json:"fertilizer"`
	DosagePerAcre    string `json:"dosage_per_acre"`
	ApplicationNotes string `json:"application_notes,omitempty"`
}

// Marketplace is one recommended selling channel.
type Marketplace struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	WhySuitable string `json:"why_suitable"`
	Phone       string `json:"phone,omitempty"`
}
