package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"shorts-backend/internal/captions"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const scriptSystemPrompt = `You are a YouTube Shorts script writer. Create engaging, concise scripts for 60-second videos that are perfect for YouTube Shorts format.

Guidelines:
- Keep scripts between 150-200 words (60 seconds when spoken)
- Start with a strong hook in the first 3 seconds
- Use simple, conversational language
- Include natural pauses and emphasis
- End with a call-to-action or engaging question
- Structure for vertical video format (9:16)
- Make it engaging and shareable

Format the response as a clean script without stage directions or formatting markers.`

const improveSystemPrompt = "You are a YouTube Shorts script editor. Improve the given script based on the feedback while maintaining the 60-second format and engaging style."

// OpenAIClient implements ScriptGenerator and Transcriber against the
// OpenAI API (chat completions and Whisper).
type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		model:  openai.ChatModelGPT4oMini,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(scriptSystemPrompt),
			openai.UserMessage(fmt.Sprintf("Create a YouTube Shorts script about: %s", prompt)),
		},
		Model:       c.model,
		MaxTokens:   openai.Int(300),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrScript, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrScript)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Improve(ctx context.Context, script, feedback string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(improveSystemPrompt),
			openai.UserMessage(fmt.Sprintf(
				"Original script: %s\n\nFeedback: %s\n\nPlease improve the script based on this feedback.",
				script, feedback)),
		},
		Model:       c.model,
		MaxTokens:   openai.Int(300),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrScript, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		// Nothing useful came back; hand the original through unchanged.
		return script, nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe runs Whisper with word-level timestamps and groups the words
// into display-sized caption segments.
func (c *OpenAIClient) Transcribe(ctx context.Context, audio []byte, filename string) (Transcription, error) {
	resp, err := c.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:                   openai.File(bytes.NewReader(audio), filename, "application/octet-stream"),
		Model:                  openai.AudioModelWhisper1,
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"word"},
	})
	if err != nil {
		return Transcription{}, fmt.Errorf("%w: %v", ErrTranscribe, err)
	}

	// The typed response only carries the plain-text fields; the verbose
	// payload with word timestamps is only reachable through the raw body.
	var verbose struct {
		Text     string  `json:"text"`
		Language string  `json:"language"`
		Duration float64 `json:"duration"`
		Words    []struct {
			Word  string  `json:"word"`
			Start float64 `json:"start"`
			End   float64 `json:"end"`
		} `json:"words"`
	}
	if err := json.Unmarshal([]byte(resp.RawJSON()), &verbose); err != nil {
		return Transcription{}, fmt.Errorf("%w: %v", ErrTranscribe, err)
	}

	words := make([]captions.Word, 0, len(verbose.Words))
	for _, w := range verbose.Words {
		words = append(words, captions.Word{Start: w.Start, End: w.End, Text: w.Word})
	}

	return Transcription{
		Text:     verbose.Text,
		Segments: captions.GroupWords(words, captions.DefaultGroupSize),
		Language: verbose.Language,
		Duration: verbose.Duration,
	}, nil
}
