package bookguide

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Completer is the boundary to the remote language model: one
// synchronous round-trip given the conversation so far and the next
// user turn.
type Completer interface {
	Complete(ctx context.Context, history []Exchange, input string) (string, error)
}

// App holds client runtime state.
type App struct {
	config    Config
	persona   Persona
	completer Completer
	store     *Store
	ctx       context.Context
	logger    Logger
	verbose   bool
}

// Option configures optional runtime dependencies for App.
type Option func(*appDeps)

type appDeps struct {
	completer Completer
}

// WithCompleter replaces the OpenAI-backed completer, e.g. in tests.
func WithCompleter(c Completer) Option {
	return func(d *appDeps) {
		d.completer = c
	}
}

// New initializes an App with the provided context and config. A
// missing API key is not an error here: it surfaces when the first
// remote call fails.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	cfg = normalizeConfig(cfg)
	debugf(cfg.Verbose, cfg.Logger, "[verbose] app init: transcript=%s persona=%s model=%s base_url=%s", cfg.TranscriptPath, cfg.PersonaPath, cfg.Model, cfg.BaseURL)
	if cfg.Model == "" {
		return nil, errors.New("Model is not set")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	deps := appDeps{}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	persona := DefaultPersona()
	if cfg.PersonaPath != "" {
		loaded, err := LoadPersonaFile(cfg.PersonaPath)
		if err != nil {
			return nil, fmt.Errorf("load persona: %w", err)
		}
		persona = loaded
		debugf(cfg.Verbose, cfg.Logger, "[verbose] persona loaded: examples=%d keywords=%d", len(persona.Examples), len(persona.Keywords))
	}

	completer := deps.completer
	if completer == nil {
		completer = &openaiCompleter{
			client: newOpenAIClient(cfg),
			model:  openai.ChatModel(cfg.Model),
		}
	}

	return &App{
		config:    cfg,
		persona:   persona,
		completer: completer,
		store:     NewStore(cfg.TranscriptPath, cfg.Logger, cfg.Verbose),
		ctx:       ctx,
		logger:    cfg.Logger,
		verbose:   cfg.Verbose,
	}, nil
}

// Persona returns the persona in effect for this app.
func (a *App) Persona() Persona {
	return a.persona
}

// Ask sends one user turn to the remote model. An empty session is
// seeded first: the topic is classified from the input and the persona
// seed becomes the model context. On success the returned session holds
// the full updated log (context + user turn + reply). On failure the
// input session is returned unmodified; the failed turn is discarded
// rather than recorded.
func (a *App) Ask(session Session, input string) (Session, string, error) {
	history := session.Exchanges
	if len(history) == 0 {
		topic := a.persona.Classify(input)
		history = a.persona.BuildSeed(topic)
		debugf(a.verbose, a.logger, "[verbose] ask: new session topic=%s seed=%d", topic, len(history))
	}

	reply, err := a.completer.Complete(a.ctx, history, input)
	if err != nil {
		debugf(a.verbose, a.logger, "[verbose] ask: remote call failed: %v", err)
		return session, "", err
	}

	updated := make([]Exchange, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		Exchange{Role: RoleUser, Content: input},
		Exchange{Role: RoleModel, Content: reply},
	)
	return Session{ID: session.ID, Exchanges: updated}, reply, nil
}

// SaveTranscript snapshots the session into the transcript store.
func (a *App) SaveTranscript(session Session) error {
	return a.store.Save(session.ID, session.Exchanges)
}

// openaiCompleter implements Completer over the OpenAI chat
// completions API.
type openaiCompleter struct {
	client openai.Client
	model  openai.ChatModel
}

func (c *openaiCompleter) Complete(ctx context.Context, history []Exchange, input string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	for _, exchange := range history {
		switch exchange.Role {
		case RoleModel:
			messages = append(messages, openai.AssistantMessage(exchange.Content))
		default:
			messages = append(messages, openai.UserMessage(exchange.Content))
		}
	}
	messages = append(messages, openai.UserMessage(input))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	reply := completion.Choices[0].Message.Content
	if strings.TrimSpace(reply) == "" {
		return "", errors.New("empty completion content")
	}
	return reply, nil
}

func newOpenAIClient(cfg Config) openai.Client {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return openai.NewClient(opts...)
}
