package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthapath/finplan"
	"github.com/arthapath/finplan/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, he is here primarily to learn about personal finance
			and to understand his own retirement plan, journal and discipline sprints.
			If he is anxious about money try to understand why, and keep the tone educational,
			never prescriptive: explain the mechanics, never push a product.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know his plan figures, checked the Coach first to understand where he stands.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert grounding answers in public sources.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of financial products, tax rules and market conventions,
		and of the latest news about funds, rates and regulation.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher, you can search and find about anything related to
			personal finance, SIPs, index funds, inflation, taxes and insurance. You leverage
			Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewCoach creates the expert in charge of reading the user's plan.
func NewCoach() *Expert {

	lib := []Function{Projection, Signals, Journal}

	return &Expert{
		Name: "Coach",
		Description: `This is the Coach. He is in charge of reading the user's planning profile,
		journal and sprint log. He can compute the relevant figures about the user's retirement
		plan, discipline and coaching signals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial coach in charge of the user's retirement plan.
				You know how to use the Tools to extract relevant information about the user's plan.
				You are part of a team of experts, yours is everything about the user's own figures.
				They might ask you questions about the user's plan, pardon their approximative
				language and figure out what they meant.

				Use the available tools to get information about the user's plan
				  - corpus projection
				  - coaching signals and discipline score
				  - journal log
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// The following implementation is not scalable, it will do for the MVP not further.

var Projection = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Projection",
		Description: `Projection computes the user's corpus at retirement from his planning profile.

		It details the projected corpus, the required corpus, the funded ratio and the
		healthcare-adjusted view.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted projection report with the corpus, required corpus and funded ratio.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		p, err := loadProfile()
		if err != nil {
			return errResponse(id, "Projection", err)
		}
		report := renderer.NewProjectionReport(p, 0, planCurrency())
		return okResponse(id, "Projection", renderer.RenderProjection(report))
	},
}

var Signals = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Signals",
		Description: `Signals derives the prioritized coaching signals and the discipline score
		from the user's journal and plan readings.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted list of coaching signals with their severity and reason.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		p, err := loadProfile()
		if err != nil {
			return errResponse(id, "Signals", err)
		}
		entries, err := loadJournal()
		if err != nil {
			return errResponse(id, "Signals", err)
		}
		proj := finplan.Project(p)
		readings := finplan.Readings{
			SIPCurrent:     p.MonthlySIP,
			SIPRequired:    p.MonthlySIP,
			CorpusExpected: proj.Corpus,
			CorpusRequired: finplan.RequiredCorpus(p),
		}
		score := finplan.DisciplineScore(entries)
		report := renderer.NewSignalsReport(score, finplan.DeriveSignals(readings, entries))
		return okResponse(id, "Signals", renderer.RenderSignals(report))
	},
}

var Journal = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Journal",
		Description: `Journal lists the user's journal entries in chronological order, with
		their execution status, money moved and reflections.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted chronological log of the journal entries.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		entries, err := loadJournal()
		if err != nil {
			return errResponse(id, "Journal", err)
		}
		return okResponse(id, "Journal", renderer.JournalLogMarkdown(entries, planCurrency()))
	},
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// private loaders reading the app default files, resolved through the same
// environment variables as the CLI flags.

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func planCurrency() string { return envOr("FPC_CURRENCY", "INR") }

func loadProfile() (finplan.UserProfile, error) {
	var p finplan.UserProfile
	data, err := os.ReadFile(envOr("FPC_PROFILE_FILE", "profile.json"))
	if errors.Is(err, fs.ErrNotExist) {
		// A fresh install still gets a directional projection from the defaults.
		return p.Normalize(), nil
	}
	if err != nil {
		return p, fmt.Errorf("could not read profile: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("could not parse profile: %w", err)
	}
	return p.Normalize(), nil
}

func loadJournal() ([]finplan.Entry, error) {
	filename := envOr("FPC_JOURNAL_FILE", "journal.jsonl")
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open journal file %q: %w", filename, err)
	}
	defer f.Close()

	store, err := finplan.LoadStore(f, nil)
	if err != nil {
		return nil, fmt.Errorf("could not decode journal file %q: %w", filename, err)
	}
	return store.Entries()
}
