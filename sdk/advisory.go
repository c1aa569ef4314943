package krishi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/providers/gemini"
	"github.com/krishigpt/krishi-go/pkg/core/schema"
	"github.com/krishigpt/krishi-go/pkg/core/types"
)

// AdvisoryResult pairs a validated advisory with the grounding citations it
// was generated against.
type AdvisoryResult struct {
	Advisory *types.CropAdvisory `json:"advisory"`
	Sources  []types.SourceRef   `json:"sources,omitempty"`
}

var advisorySchema = gemini.MustConvertSchema(schema.Advisory())

// GenerateAdvisory produces a structured crop advisory for the given farm
// attributes. Grounding runs first and degrades gracefully; generation is a
// single attempt with no retry.
func (c *Client) GenerateAdvisory(ctx context.Context, req *types.AdvisoryRequest) (*AdvisoryResult, error) {
	language := LanguageName(Locale(req.Locale))

	grounded := c.RetrieveMarketContext(ctx, req.Location, req.Coordinates, "")

	model := ModelDefault
	var budget *int32
	if req.EnableThinking {
		model = ModelThinking
		b := thinkingBudgetTokens
		budget = &b
	}

	resp, err := c.provider.Generate(ctx, &gemini.GenerateRequest{
		Model:          model,
		Prompt:         buildAdvisoryPrompt(req, grounded, language),
		ResponseSchema: advisorySchema,
		ThinkingBudget: budget,
	})
	if err != nil {
		return nil, err
	}

	text := stripFences(resp.Text)
	if text == "" {
		return nil, core.NewEmptyResponseError("advisory")
	}

	var advisory types.CropAdvisory
	if err := json.Unmarshal([]byte(text), &advisory); err != nil {
		return nil, core.NewMalformedOutputError("advisory", err)
	}
	if err := validateAdvisory(text); err != nil {
		return nil, err
	}

	return &AdvisoryResult{Advisory: &advisory, Sources: grounded.Sources}, nil
}

// buildAdvisoryPrompt composes the generation prompt deterministically from
// the language directive, the grounded market context, the literal user
// inputs and the decision policy.
func buildAdvisoryPrompt(req *types.AdvisoryRequest, grounded *types.GroundedContext, language string) string {
	var b strings.Builder

	b.WriteString("You are an expert agronomist advising an Indian farmer. ")
	fmt.Fprintf(&b, "Write every output string value in %s. JSON keys stay exactly as defined in the schema; only values are translated. This applies recursively to every nested field.\n\n", language)

	b.WriteString("CURRENT MARKET CONTEXT (from live search):\n")
	b.WriteString(grounded.Text)
	b.WriteString("\n\n")

	b.WriteString("FARM DETAILS:\n")
	fmt.Fprintf(&b, "- Land size: %s\n", req.LandSize)
	fmt.Fprintf(&b, "- Location: %s\n", req.Location)
	fmt.Fprintf(&b, "- Soil type: %s\n", req.SoilType)
	fmt.Fprintf(&b, "- Irrigation source: %s\n\n", req.Irrigation)

	b.WriteString("DECISION POLICY, in strict order of precedence:\n")
	b.WriteString("1. Evaluate climate and irrigation feasibility before economics. The recommended crop's water requirement must be realistically satisfiable by the stated irrigation method in the local climate. If irrigation is rain-fed and the region is arid or semi-arid, restrict candidates to drought-tolerant crops.\n")
	b.WriteString("2. If you recommend a water-intensive crop, include an explicit justification tied to the stated irrigation method.\n")
	b.WriteString("3. Ground every price and demand estimate in the market context above; do not invent figures. Profitability may be negative; do not assume the farmer profits.\n")
	b.WriteString("4. State all monetary figures in INR, computed for the stated land size. Normalize common area units (acre, hectare, bigha, guntha) before computing totals.\n")
	fmt.Fprintf(&b, "5. Use the crop's properly localized common name in %s, not a transliteration.\n", language)

	return b.String()
}

// stripFences removes markdown code-fence wrappers a model sometimes adds
// around JSON output despite the schema constraint.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}

// validateAdvisory checks the raw JSON against the advisory schema's
// top-level required fields: each must be present and of the declared kind.
func validateAdvisory(raw string) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return core.NewMalformedOutputError("advisory", err)
	}

	tree := schema.Advisory()
	for _, field := range tree.Required {
		value, ok := top[field]
		if !ok {
			return core.NewMalformedOutputError("advisory",
				fmt.Errorf("missing required field %q", field))
		}
		if err := checkKind(field, value, tree.Properties[field].Kind); err != nil {
			return core.NewMalformedOutputError("advisory", err)
		}
	}
	return nil
}

func checkKind(field string, raw json.RawMessage, kind schema.Kind) error {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("field %q: %w", field, err)
	}

	ok := false
	switch kind {
	case schema.String:
		_, ok = probe.(string)
	case schema.Number, schema.Integer:
		_, ok = probe.(float64)
	case schema.Boolean:
		_, ok = probe.(bool)
	case schema.Array:
		_, ok = probe.([]any)
	case schema.Object:
		_, ok = probe.(map[string]any)
	}
	if !ok {
		return fmt.Errorf("field %q is not of kind %s", field, kind)
	}
	return nil
}
