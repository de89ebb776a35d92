package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// ReportFunc re-renders the current portfolio report as markdown.
type ReportFunc func() (string, error)

// NewAnalyst creates the portfolio analyst expert. It answers questions
// about the user's holdings and gains, grounded in the actual figures of
// the portfolio report, which it can refresh through its library.
func NewAnalyst(report ReportFunc) *Expert {
	fn := &reportFunction{report: report}
	return &Expert{
		Name: "Analyst",
		Description: `Knows the user's portfolio: holdings, realized and
unrealized gains, allocations and the tax-advantaged split.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(fn)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio analyst. The user asks about their own
			portfolio: positions, realized and unrealized gains, currency
			effects, allocations by country, exchange and account.

			Always ground your answers in the figures of the portfolio
			report: call portfolio_report to get the current one. Never
			invent numbers. Gains are computed by FIFO lot matching in
			the user's reporting currency; say so when it matters.

			You give information, not investment advice.
		`}}},
		},
		Library: NewLibrary(fn),
	}
}

// reportFunction exposes the rendered portfolio report to the expert.
type reportFunction struct {
	report ReportFunc
}

func (f *reportFunction) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "portfolio_report",
		Description: "Returns the user's full portfolio report as markdown: holdings, gains, allocations.",
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The portfolio report in markdown.",
		},
	}
}

func (f *reportFunction) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: "portfolio_report"}
	md, err := f.report()
	if err != nil {
		fresp.Response = map[string]any{"error": fmt.Sprintf("could not build the report: %v", err)}
		return fresp
	}
	fresp.Response = map[string]any{"output": md}
	return fresp
}
