package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/vti"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"google.golang.org/genai"
)

var fixedNow = time.Date(2025, 1, 6, 9, 30, 0, 0, time.UTC)

// answer builds a one candidate response with text and web grounding chunks.
func answer(text string, chunks ...*genai.GroundingChunk) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: text}},
			},
			GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: chunks},
		}},
	}
}

func web(title, uri string) *genai.GroundingChunk {
	return &genai.GroundingChunk{Web: &genai.GroundingChunkWeb{Title: title, URI: uri}}
}

func newTestFetcher(t *testing.T) (*Fetcher, *MockGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gen := NewMockGenerator(ctrl)
	f := New(gen, "")
	f.now = func() time.Time { return fixedNow }
	return f, gen
}

func TestFetcher_Fetch(t *testing.T) {
	f, gen := newTestFetcher(t)

	gen.EXPECT().
		GenerateContent(gomock.Any(), DefaultModel, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			if len(contents) != 1 || !strings.Contains(contents[0].Parts[0].Text, "PRICE:") {
				t.Errorf("unexpected prompt %v", contents)
			}
			if len(config.Tools) != 1 || config.Tools[0].GoogleSearch == nil {
				t.Errorf("google search tool is not enabled: %+v", config.Tools)
			}
			if config.Temperature == nil || *config.Temperature != 0.1 {
				t.Errorf("temperature = %v, want 0.1", config.Temperature)
			}
			if config.ResponseSchema != nil {
				t.Errorf("unexpected response schema in text mode")
			}
			return answer("PRICE: 265.40\nRATE: 150.50\nSUMMARY: 円安傾向です。",
				web("Yahoo Finance", "https://finance.yahoo.com/quote/VTI"),
				&genai.GroundingChunk{}, // not a web chunk
				web("", "https://www.google.com/finance"),
				web("broken", ""),
			), nil
		})

	q, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if price, ok := q.Price(); !ok || !price.Equal(decimal.RequireFromString("265.40")) {
		t.Errorf("Fetch() price = %v, %v", price, ok)
	}
	if rate, ok := q.ExchangeRate(); !ok || !rate.Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("Fetch() rate = %v, %v", rate, ok)
	}
	if got, want := q.Summary(), "円安傾向です。"; got != want {
		t.Errorf("Fetch() summary = %q, want %q", got, want)
	}
	wantSources := []vti.Citation{
		{Title: "Yahoo Finance", URI: "https://finance.yahoo.com/quote/VTI"},
		{Title: "Source", URI: "https://www.google.com/finance"},
	}
	if diff := cmp.Diff(wantSources, q.Sources()); diff != "" {
		t.Errorf("Fetch() sources mismatch (-want +got):\n%s", diff)
	}
	if !q.RetrievedAt().Equal(fixedNow) {
		t.Errorf("Fetch() retrievedAt = %v, want %v", q.RetrievedAt(), fixedNow)
	}
}

func TestFetcher_FetchModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := NewMockGenerator(ctrl)
	f := New(gen, "gemini-2.5-flash")
	gen.EXPECT().
		GenerateContent(gomock.Any(), "gemini-2.5-flash", gomock.Any(), gomock.Any()).
		Return(answer("SUMMARY: ok"), nil)

	if _, err := f.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
}

func TestFetcher_FetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		err      error
		wantKind vti.ErrorKind
		wantIs   error
	}{
		{
			name:     "service error",
			err:      genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"},
			wantKind: vti.KindService,
		},
		{
			name:     "network error",
			err:      errors.New("dial tcp: lookup generativelanguage.googleapis.com: no such host"),
			wantKind: vti.KindNetwork,
		},
		{
			name:     "canceled",
			err:      context.Canceled,
			wantKind: vti.KindNetwork,
			wantIs:   context.Canceled,
		},
		{
			name:     "no candidate",
			resp:     &genai.GenerateContentResponse{},
			wantKind: vti.KindService,
			wantIs:   vti.ErrNoAnswer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, gen := newTestFetcher(t)
			gen.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.resp, tt.err)

			_, err := f.Fetch(context.Background())
			var ferr *vti.FetchError
			if !errors.As(err, &ferr) {
				t.Fatalf("Fetch() error = %v, want a *vti.FetchError", err)
			}
			if ferr.Kind != tt.wantKind {
				t.Errorf("Fetch() error kind = %v, want %v", ferr.Kind, tt.wantKind)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("Fetch() error = %v, want it to wrap %v", err, tt.wantIs)
			}
		})
	}
}

func TestFetcher_FetchPartial(t *testing.T) {
	f, gen := newTestFetcher(t)
	gen.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(answer("I could not find the rate. PRICE: 265.40"), nil)

	q, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() partial answer must not fail: %v", err)
	}
	if _, ok := q.ExchangeRate(); ok {
		t.Errorf("Fetch() rate should be absent")
	}
	if got := q.Summary(); got != "I could not find the rate. PRICE: 265.40" {
		t.Errorf("Fetch() summary = %q, want the whole text", got)
	}
}

func TestFetcher_FetchIgnoresThoughts(t *testing.T) {
	f, gen := newTestFetcher(t)
	resp := answer("PRICE: 1\nRATE: 2\nSUMMARY: s")
	resp.Candidates[0].Content.Parts = append([]*genai.Part{{Text: "PRICE: 999", Thought: true}}, resp.Candidates[0].Content.Parts...)
	gen.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(resp, nil)

	q, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if price, _ := q.Price(); !price.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Fetch() price = %v, want 1", price)
	}
}
