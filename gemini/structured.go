package gemini

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/vti"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// structuredPrompt asks for the same fields as prompt, as a JSON object.
const structuredPrompt = `
VTI (Vanguard Total Stock Market ETF) の現在の株価(USD)と、最新のドル円(USD/JPY)為替レートを検索してください。

回答は次のキーを持つJSONオブジェクトのみで行ってください：
"price": 株価の数値
"rate": 為替レートの数値
"summary": 市場状況の簡潔な日本語サマリー
`

var quoteSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"price":   {Type: genai.TypeNumber, Description: "VTI price in USD"},
		"rate":    {Type: genai.TypeNumber, Description: "USD/JPY exchange rate"},
		"summary": {Type: genai.TypeString, Description: "short market summary in Japanese"},
	},
	Required: []string{"price", "rate", "summary"},
}

// parseStructured reads a JSON answer. ok is false if text is not a JSON
// object, the caller falls back to the marker parser then.
func parseStructured(text string, sources []vti.Citation, at time.Time) (q vti.Quote, ok bool) {
	var jobj any
	if err := json.Unmarshal([]byte(unfence(text)), &jobj); err != nil {
		return vti.Quote{}, false
	}
	if _, isObject := jobj.(map[string]any); !isObject {
		return vti.Quote{}, false
	}
	summary, _ := jsonGet("$.summary", jobj).(string)
	return vti.NewQuote(
		jsonNumber("$.price", jobj),
		jsonNumber("$.rate", jobj),
		strings.TrimSpace(summary),
		sources,
		at,
	), true
}

// unfence removes the markdown code fence models like to wrap JSON with.
func unfence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// jsonGet returns the value at path, nil if there is none.
func jsonGet(path string, jobj any) any {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	// jsonpath may answer a list of one value, keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval
}

// jsonNumber reads a number at path, either a JSON number or a numeric
// string. Anything else is absent.
func jsonNumber(path string, jobj any) decimal.NullDecimal {
	switch v := jsonGet(path, jobj).(type) {
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(v))
	case string:
		return vti.ParseNumber(strings.TrimLeft(v, "$¥￥"))
	default:
		return decimal.NullDecimal{}
	}
}
