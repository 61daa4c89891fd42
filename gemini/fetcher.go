// Package gemini fetches VTI quotes from Gemini, grounded with Google Search.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/vti"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// prompt asks for the quote in the textual format understood by vti.Parse.
const prompt = `
VTI (Vanguard Total Stock Market ETF) の現在の株価(USD)と、最新のドル円(USD/JPY)為替レートを検索してください。

回答は以下の形式のみで行ってください：
"PRICE: <株価の数値>"
"RATE: <為替レートの数値>"
"SUMMARY: <市場状況の簡潔な日本語サマリー>"

例:
PRICE: 265.40
RATE: 150.50
SUMMARY: 本日のVTIはハイテク株主導で上昇しており、ドル円は米金利上昇を受けて円安傾向です。
`

//go:generate mockgen -source=fetcher.go -destination=mock_generator_test.go -package=gemini

// Generator is the part of the Gemini API used by the Fetcher.
// *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Fetcher retrieves one Quote per call to Fetch.
type Fetcher struct {
	gen Generator
	// Model is the Gemini model name.
	Model string
	// Structured asks for a JSON answer instead of the textual markers.
	Structured bool

	now func() time.Time
}

// New creates a Fetcher on top of gen with the given model, DefaultModel if
// empty.
func New(gen Generator, model string) *Fetcher {
	if model == "" {
		model = DefaultModel
	}
	return &Fetcher{gen: gen, Model: model, now: time.Now}
}

// NewClient creates the Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Fetch performs exactly one remote call. It fails with a *vti.FetchError and
// no quote at all on any transport or service failure.
func (f *Fetcher) Fetch(ctx context.Context) (vti.Quote, error) {
	resp, err := f.gen.GenerateContent(ctx, f.Model, genai.Text(f.prompt()), f.config())
	if err != nil {
		return vti.Quote{}, classify(err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return vti.Quote{}, &vti.FetchError{Kind: vti.KindService, Err: vti.ErrNoAnswer}
	}
	candidate := resp.Candidates[0]
	text := candidateText(candidate)
	sources := groundingCitations(candidate)
	at := f.now()

	if f.Structured {
		if q, ok := parseStructured(text, sources, at); ok {
			return q, nil
		}
	}
	return vti.Parse(text, sources, at), nil
}

func (f *Fetcher) prompt() string {
	if f.Structured {
		return structuredPrompt
	}
	return prompt
}

func (f *Fetcher) config() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		Temperature: genai.Ptr[float32](0.1),
	}
	if f.Structured {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = quoteSchema
	}
	return config
}

// classify wraps err into a FetchError, telling apart errors returned by the
// API from the others.
func classify(err error) error {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErr) || errors.As(err, &apiErrPtr) {
		return &vti.FetchError{Kind: vti.KindService, Err: err}
	}
	return &vti.FetchError{Kind: vti.KindNetwork, Err: err}
}

// candidateText concatenates the text parts of the answer, thoughts excluded.
func candidateText(c *genai.Candidate) string {
	if c == nil || c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// groundingCitations returns the web sources used for the answer, in order.
// Chunks that are not web pages are skipped.
func groundingCitations(c *genai.Candidate) []vti.Citation {
	if c == nil || c.GroundingMetadata == nil {
		return nil
	}
	var sources []vti.Citation
	for _, chunk := range c.GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		sources = append(sources, vti.Citation{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources
}

// String describes the fetcher for diagnostics.
func (f *Fetcher) String() string {
	return fmt.Sprintf("gemini(%s, structured=%v)", f.Model, f.Structured)
}
