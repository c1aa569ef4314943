package krishi

import (
	"context"
	"fmt"
	"strings"

	"github.com/krishigpt/krishi-go/pkg/core/providers/gemini"
	"github.com/krishigpt/krishi-go/pkg/core/types"
)

// groundingFallbackText is returned whenever the grounding stage fails or
// comes back empty. Grounding is an enhancement, not a correctness
// requirement: the advisory flow continues with weaker context.
const groundingFallbackText = "No specific local data found. Rely on general agronomic knowledge for the region."

// RetrieveMarketContext runs a search-augmented query for current market
// prices, demand and regional marketplaces around the given location. Errors
// are absorbed: the result is always usable, possibly degraded to the neutral
// fallback with no sources.
func (c *Client) RetrieveMarketContext(ctx context.Context, location string, coords *types.Coordinates, interest string) *types.GroundedContext {
	prompt := buildGroundingPrompt(location, interest)

	resp, err := c.provider.Generate(ctx, &gemini.GenerateRequest{
		Model:      ModelDefault,
		Prompt:     prompt,
		WebSearch:  true,
		MapsSearch: true,
		LatLng:     coords,
	})
	if err != nil {
		c.logger.Warn("grounding retrieval failed, continuing degraded",
			"location", location, "error", err)
		return &types.GroundedContext{Text: groundingFallbackText}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return &types.GroundedContext{Text: groundingFallbackText}
	}

	return &types.GroundedContext{Text: text, Sources: resp.Sources}
}

func buildGroundingPrompt(location, interest string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research the current agricultural market around %s. ", location)
	b.WriteString("Summarize in one short paragraph: current wholesale (mandi) prices for major crops, ")
	b.WriteString("which crops are in demand right now, and named regional marketplaces or mandis where a farmer can sell. ")
	if interest != "" {
		fmt.Fprintf(&b, "Pay particular attention to these crops: %s. ", interest)
	}
	b.WriteString("Be concrete and current; cite sources where possible.")
	return b.String()
}
