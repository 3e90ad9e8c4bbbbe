package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hypeads-report/internal/config/configs"
	"hypeads-report/internal/core/domain"
)

// Client is an outbound adapter for the Gemini generateContent REST API.
// It implements port.InsightGateway. Errors are returned as-is; the use
// cases above substitute the fixed fallback values.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a Gemini client from configuration.
func NewClient(cfg configs.Gemini) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize asks the model for an executive analysis of the campaign in
// Spanish, at most three paragraphs.
func (c *Client) Summarize(ctx context.Context, summary domain.CampaignSummary, daily []domain.DailyReport) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Analiza los siguientes datos de una campaña publicitaria de %q en %s.\n", summary.Format, summary.Geo)
	b.WriteString("Resumen:\n")
	fmt.Fprintf(&b, "- Objetivo de Impresiones: %d\n", summary.ObjectiveImpressions)
	fmt.Fprintf(&b, "- Impresiones Servidas: %d (%s del total)\n", summary.ServedImpressions, domain.FormatPercent(summary.ImpressionsProgress(), 2))
	fmt.Fprintf(&b, "- Inversión Total Presupuestada: $%s\n", summary.Investment)
	fmt.Fprintf(&b, "- Consumido: $%s\n", summary.ConsumedBudget)
	fmt.Fprintf(&b, "- CTR Global: %v%%\n", summary.TotalCtr)
	fmt.Fprintf(&b, "- Viewability Global: %v%%\n", summary.TotalViewability)
	fmt.Fprintf(&b, "- Período: %s al %s\n\n", summary.StartDate, summary.EndDate)
	b.WriteString("Datos diarios (Día, Impresiones, Clicks, CTR%):\n")
	for _, d := range daily {
		fmt.Fprintf(&b, "%s: %d impr, %d clks, %v%% CTR\n", d.Date, d.Impressions, d.Clicks, d.CTR)
	}
	b.WriteString(`
Por favor, proporciona un análisis ejecutivo breve (máximo 3 párrafos) que incluya:
1. Desempeño general frente al objetivo.
2. Identificación de días con mejor rendimiento (picos de CTR).
3. Recomendaciones estratégicas basadas en el ritmo de consumo y viewability.

Responde en español, con un tono profesional y directo.
`)

	req := generateRequest{Contents: []content{{Parts: []part{{Text: b.String()}}}}}
	return c.generate(ctx, req)
}

const classifyPrompt = `Analiza esta captura de pantalla de una publicidad digital (ad verification).
Extrae la siguiente información en formato JSON:
- site: El nombre del sitio web donde aparece el anuncio (ej: El País, YouTube, etc).
- title: Un título descriptivo para la verificación (ej: Billboard Desktop en Inicio).
- device: El tipo de dispositivo (Desktop, Mobile, Tablet).
- format: El formato del anuncio (ej: Skin, Intersticial, Robapáginas, Billboard).
- url: La URL probable o detectada del sitio.

Si no puedes determinar algo con exactitud, haz una estimación profesional basada en el aspecto visual.
Responde únicamente con el objeto JSON.`

// Classify extracts structured ad metadata from a screenshot. The model
// is asked for a JSON-only response; a payload that does not decode into
// the expected shape is an error for the caller to absorb.
func (c *Client) Classify(ctx context.Context, imageB64, mimeType string) (domain.VerificationDetails, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{Text: classifyPrompt},
			{InlineData: &inlineData{MimeType: mimeType, Data: imageB64}},
		}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return domain.VerificationDetails{}, err
	}

	var details domain.VerificationDetails
	if err := json.Unmarshal([]byte(stripFence(text)), &details); err != nil {
		return domain.VerificationDetails{}, fmt.Errorf("malformed classification response: %w", err)
	}
	if details.Site == "" && details.Title == "" && details.URL == "" {
		return domain.VerificationDetails{}, fmt.Errorf("classification response missing required fields")
	}
	return details, nil
}

// generate posts a generateContent request and returns the concatenated
// text of the first candidate.
func (c *Client) generate(ctx context.Context, payload generateRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, snippet)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates in response")
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("gemini: empty candidate text")
	}
	return text.String(), nil
}

// stripFence removes a markdown code fence the model sometimes wraps
// around JSON output despite the response MIME type.
func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
