package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"otto/imgutil"
	"otto/models"
	"otto/rdx"
	"otto/utils"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const visionModel = "gpt-4.1-mini"
const imageModel = "dall-e-3"

const analysisCacheTTL = 10 * time.Minute

const analyzePrompt = `Analyze this room/space image and provide a brief JSON response with:
1. roomType: The type of room (living room, bedroom, patio, office, etc.)
2. style: The current style (modern, rustic, minimalist, traditional, etc.)
3. lighting: The lighting conditions (natural, artificial, dim, bright)
4. colors: Main color palette (list 2-3 dominant colors)
5. suggestions: 2-3 brief suggestions for improvement

Respond ONLY with valid JSON, no markdown or explanation.`

// ProductRef is the product shape sent to the generation endpoint.
type ProductRef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Service wraps the upstream OpenAI API for room analysis and image
// generation.
type Service struct{}

func New() *Service {
	return &Service{}
}

func (s *Service) client() (openai.Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return openai.Client{}, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}
	return openai.NewClient(opts...), nil
}

// AnalyzeRoom sends the image to the vision model and best-effort parses the
// reply. The raw model output is always preserved in Analysis; structured
// fields are filled only when the reply parsed as JSON.
func (s *Service) AnalyzeRoom(ctx context.Context, image string) (models.RoomAnalysis, error) {
	dataURL := imgutil.EnsureDataURL(image)

	cacheKey := "vision:" + utils.EncrypIt(dataURL)
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		var out models.RoomAnalysis
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			log.Printf("[vision] analysis cache hit")
			return out, nil
		}
	}

	raw, err := s.visionCompletion(ctx, analyzePrompt, dataURL)
	if err != nil {
		return models.RoomAnalysis{}, err
	}

	out := parseAnalysis(raw)

	if data, err := json.Marshal(out); err == nil {
		if err := rdx.RdxSetWithTTL(cacheKey, string(data), analysisCacheTTL); err != nil {
			log.Printf("[vision] cache write failed: %v", err)
		}
	}
	return out, nil
}

// GenerateVisualization renders the room with the recommended products. A
// provided analysis is reused; otherwise the image is analyzed first to
// anchor the generation prompt.
func (s *Service) GenerateVisualization(ctx context.Context, image, prompt string, products []ProductRef, analysis string) (string, string, error) {
	client, err := s.client()
	if err != nil {
		return "", "", err
	}

	dataURL := imgutil.EnsureDataURL(image)
	productDetails := describeProducts(products)

	analysisText := analysis
	if analysisText == "" {
		describe := fmt.Sprintf(`Analyze this room image briefly and describe:
1. Room type and approximate size
2. Current style and color scheme
3. Lighting conditions
Then provide a concise prompt (max 200 words) for generating an image that shows this room redesigned with these products: %s`, productDetails)

		analysisText, err = s.visionCompletion(ctx, describe, dataURL)
		if err != nil {
			return "", "", err
		}
	}

	fullPrompt := fmt.Sprintf(`Professional interior design photography.
%s
%s
Products to incorporate: %s
Important: Create a photorealistic result that looks like a professional interior design photo.
The furniture should be naturally integrated into the space with proper scale, lighting, and shadows.
Style: Photorealistic, high-end interior design magazine quality, natural lighting.
Technical: High quality, proper perspective, realistic shadows.`, analysisText, prompt, productDetails)

	img, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:  fullPrompt,
		Model:   imageModel,
		N:       openai.Int(1),
		Size:    "1024x1024",
		Quality: "standard",
		Style:   "natural",
	})
	if err != nil {
		return "", "", fmt.Errorf("image generation: %w", err)
	}
	if len(img.Data) == 0 || img.Data[0].URL == "" {
		return "", "", fmt.Errorf("no image generated")
	}

	return img.Data[0].URL, analysisText, nil
}

func (s *Service) visionCompletion(ctx context.Context, prompt, imageDataURL string) (string, error) {
	client, err := s.client()
	if err != nil {
		return "", err
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(prompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageDataURL,
				}),
			}),
		},
		Model:               visionModel,
		MaxCompletionTokens: openai.Int(500),
	})
	if err != nil {
		return "", fmt.Errorf("vision completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseAnalysis strips markdown code fences and tries to decode the model
// reply as JSON. Unparsable replies degrade to generic structured fields
// with the raw text preserved.
func parseAnalysis(raw string) models.RoomAnalysis {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var out models.RoomAnalysis
	if err := json.Unmarshal([]byte(clean), &out); err != nil || !out.Structured() {
		out = models.RoomAnalysis{
			RoomType: "Living space",
			Style:    "Modern",
		}
	}
	out.Analysis = raw
	return out
}

func describeProducts(products []ProductRef) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Description))
	}
	return strings.Join(parts, ". ")
}
