package agent

import (
	"context"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a founder or an operator asking about their company's finances: imported
			statements, derived indicators, books (expenses, invoices, budgets, cash, payroll,
			assets) and the generated management discussion draft.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Never invent figures: everything numeric must come from the
			Controller's books.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the market analyst expert, grounded with search for
// industry context the books cannot provide.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst,
		well aware of industry benchmarks, typical small-business margins,
		and the latest economic news. Ask the Analyst whenever you need recent or
		grounding information from outside the company's books.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market analyst. You can search and find anything related to industry
			benchmarks, competitors, markets and the economy. You leverage Google Search to
			ground your assertions in solid truth, and you relate the news to the user's request.
				`}}},
		},
	}
}

// NewController returns the controller expert. It is the only expert allowed
// to read the workspace, through the function library built over open.
func NewController(open func() (*finsuite.Workspace, error)) *Expert {
	lib := workspaceLibrary(open)

	return &Expert{
		Name: "Controller",
		Description: `This is the financial Controller. It is in charge of reading the company's
		workspace: the imported statement table, the derived indicators, the books and the
		management discussion draft. Ask the Controller for any figure about the company.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the financial controller of the user's company.
				You know how to use the Tools to extract relevant information from the books.
				You are part of a team of experts; yours is everything recorded in the workspace.
				Pardon their approximative language and figure out what they meant.

				Use the available tools to get
				  - the key performance indicators derived from the imported statements
				  - the derived statements (P&L, balance sheet, cash flow)
				  - the current management discussion draft
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// workspaceLibrary builds the read-only functions the Controller can call.
// Each one re-opens the workspace so the expert always sees the latest save.
func workspaceLibrary(open func() (*finsuite.Workspace, error)) []Function {
	reader := func(name, description string, produce func(*finsuite.Workspace) string) Function {
		return &Func{
			Decl: &genai.FunctionDeclaration{
				Name:        name,
				Description: description,
				Parameters:  &genai.Schema{Type: genai.TypeObject},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted report.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
				w, err := open()
				if err != nil {
					fresp.Response["error"] = err.Error()
					return fresp
				}
				fresp.Response["output"] = produce(w)
				return fresp
			},
		}
	}

	return []Function{
		reader("Indicators",
			"Indicators reports the key performance indicators derived from the two latest imported statement periods: revenue, growth, margins and cost ratios.",
			func(w *finsuite.Workspace) string { return renderer.KPIMarkdown(w.KPIs()) }),
		reader("Statements",
			"Statements reports the derived profit and loss, balance sheet and cash flow statements built from the books.",
			func(w *finsuite.Workspace) string {
				return renderer.StatementsMarkdown(w.ProfitAndLoss(), w.BalanceSheet(), w.CashFlow())
			}),
		reader("Draft",
			"Draft returns the current management discussion and analysis draft composed from the imported statements. Empty when no statements are imported.",
			func(w *finsuite.Workspace) string { return w.Draft() }),
		reader("Books",
			"Books reports the bookkeeping ledgers: expenses, invoices, budgets with variance, cash projections, payables and receivables, goals, payroll and assets.",
			func(w *finsuite.Workspace) string {
				net := w.ProfitAndLoss().NetIncome
				return renderer.RenderExpenses(w.Expenses) + "\n" +
					renderer.RenderInvoices(w.Invoices) + "\n" +
					renderer.RenderBudgets(w.Budgets, net) + "\n" +
					renderer.RenderCash(w.Cash) + "\n" +
					renderer.RenderAPAR(w.Payables, w.Receivables) + "\n" +
					renderer.RenderGoals(w.Goals) + "\n" +
					renderer.RenderPayroll(w.Payroll) + "\n" +
					renderer.RenderAssets(w.Assets)
			}),
	}
}
