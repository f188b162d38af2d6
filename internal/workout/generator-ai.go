package workout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/kaseltech/ironvow-sub001/internal/errors"
)

// aiRequestTimeout bounds the single text-generation call. After it fires the
// generation is treated as failed and the rule-based path takes over; the
// call is never retried.
const aiRequestTimeout = 30 * time.Second

// textCompleter is the contract with the external text-generation service:
// one prompt in, one response text out.
type textCompleter interface {
	complete(ctx context.Context, prompt string) (string, error)
}

// openaiCompleter implements textCompleter with the OpenAI chat completions API.
type openaiCompleter struct {
	client openai.Client
}

// newOpenAICompleter creates a completer backed by the OpenAI API.
func newOpenAICompleter(apiKey string) *openaiCompleter {
	return &openaiCompleter{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

func (c *openaiCompleter) complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a certified personal trainer. Respond with a single JSON object and nothing else."),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// aiGenerator asks the external text-generation service to compose the
// workout from the filtered candidates. Any failure (transport error,
// timeout, unparseable or invalid response) makes the fallback chain proceed
// to the rule-based generator.
type aiGenerator struct {
	completer textCompleter
	logger    *slog.Logger
}

// newAIGenerator creates an AI-backed workout generator.
func newAIGenerator(completer textCompleter, logger *slog.Logger) *aiGenerator {
	return &aiGenerator{
		completer: completer,
		logger:    logger,
	}
}

func (g *aiGenerator) name() string { return "ai" }

func (g *aiGenerator) generate(ctx context.Context, req Request, candidates []Exercise) (GeneratedWorkout, error) {
	if len(candidates) == 0 {
		// The service must only pick from catalog ids, so there is nothing
		// for it to work with.
		return GeneratedWorkout{}, ErrNoCandidates
	}

	prompt, err := buildPrompt(req, candidates)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("build prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()

	content, err := g.completer.complete(ctx, prompt)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("complete prompt: %w", err)
	}

	plan, err := parseWorkoutPlan(content)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("parse workout plan: %w", err)
	}

	workout, err := plan.toWorkout(req, candidates)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("validate workout plan: %w", err)
	}
	return workout, nil
}

// candidatePayload is the serialized form of a catalog exercise in the prompt.
type candidatePayload struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	PrimaryMuscles   []string `json:"primary_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty"`
	IsCompound       bool     `json:"is_compound"`
	Difficulty       string   `json:"difficulty,omitempty"`
}

// buildPrompt renders the generation constraints and the full candidate list
// into the text sent to the external service.
func buildPrompt(req Request, candidates []Exercise) (string, error) {
	payload := make([]candidatePayload, 0, len(candidates))
	for _, ex := range candidates {
		payload = append(payload, candidatePayload{
			ID:               ex.ID,
			Name:             ex.Name,
			PrimaryMuscles:   ex.PrimaryMuscles,
			SecondaryMuscles: ex.SecondaryMuscles,
			IsCompound:       ex.IsCompound,
			Difficulty:       ex.Difficulty,
		})
	}
	candidatesJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal candidates: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-minute workout for a %s lifter training at the %s.\n",
		req.DurationMinutes, req.Experience, req.Location)
	fmt.Fprintf(&b, "Target muscles: %s.\n", strings.Join(req.TargetMuscles, ", "))
	for _, injury := range req.Injuries {
		fmt.Fprintf(&b, "Injury %s (avoid: %s).\n", injury.BodyPart, strings.Join(injury.AvoidMovements, ", "))
	}
	if len(req.Equipment) > 0 {
		fmt.Fprintf(&b, "Available equipment: %s.\n", strings.Join(req.Equipment, ", "))
	}
	b.WriteString("\nPick exercises ONLY from this catalog, referencing them by id. Never invent exercises:\n")
	b.Write(candidatesJSON)
	b.WriteString(`

Respond with a single JSON object of this shape:
{"name": string, "description": string, "workoutType": "push"|"pull"|"legs"|"upper"|"lower"|"fullbody", "exercises": [{"exerciseId": int, "name": string, "sets": int, "reps": string, "restSeconds": int, "notes": string}]}
Order compound movements before isolation movements.`)

	return b.String(), nil
}

// workoutPlan is the structured response expected from the service.
type workoutPlan struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WorkoutType string `json:"workoutType"`
	Exercises   []struct {
		ExerciseID  int    `json:"exerciseId"`
		Name        string `json:"name"`
		Sets        int    `json:"sets"`
		Reps        string `json:"reps"`
		RestSeconds int    `json:"restSeconds"`
		Notes       string `json:"notes"`
	} `json:"exercises"`
}

// parseWorkoutPlan extracts the first JSON object from the response text and
// decodes it. Models occasionally wrap the object in prose or code fences;
// anything around the object is ignored.
func parseWorkoutPlan(content string) (workoutPlan, error) {
	var plan workoutPlan

	object, err := extractJSONObject(content)
	if err != nil {
		return plan, err
	}
	if err = json.Unmarshal([]byte(object), &plan); err != nil {
		return plan, fmt.Errorf("unmarshal workout plan: %w", err)
	}
	return plan, nil
}

// extractJSONObject returns the first balanced {...} block in s.
func extractJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", errors.New("response contains no JSON object")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errors.New("response contains an unterminated JSON object")
}

// toWorkout validates the plan against the candidate catalog and converts it
// into the domain type. Every referenced id must exist among the candidates.
func (p workoutPlan) toWorkout(req Request, candidates []Exercise) (GeneratedWorkout, error) {
	if p.Name == "" {
		return GeneratedWorkout{}, errors.New("plan is missing a name")
	}
	if len(p.Exercises) == 0 {
		return GeneratedWorkout{}, errors.New("plan has no exercises")
	}

	byID := make(map[int]Exercise, len(candidates))
	for _, ex := range candidates {
		byID[ex.ID] = ex
	}

	exercises := make([]GeneratedExercise, 0, len(p.Exercises))
	for _, planned := range p.Exercises {
		catalogEx, ok := byID[planned.ExerciseID]
		if !ok {
			return GeneratedWorkout{}, fmt.Errorf("plan references unknown exercise id %d", planned.ExerciseID)
		}
		if planned.Sets <= 0 {
			return GeneratedWorkout{}, fmt.Errorf("plan has non-positive sets for exercise id %d", planned.ExerciseID)
		}
		if planned.Reps == "" {
			return GeneratedWorkout{}, fmt.Errorf("plan has empty reps for exercise id %d", planned.ExerciseID)
		}
		if planned.RestSeconds < 0 {
			return GeneratedWorkout{}, fmt.Errorf("plan has negative rest for exercise id %d", planned.ExerciseID)
		}
		exercises = append(exercises, GeneratedExercise{
			Exercise:       catalogEx,
			Sets:           planned.Sets,
			Reps:           planned.Reps,
			TargetWeightKg: nil,
			RestSeconds:    planned.RestSeconds,
			Notes:          planned.Notes,
		})
	}

	workoutType := Type(p.WorkoutType)
	if _, ok := typeNames[workoutType]; !ok {
		workoutType = classifyWorkout(req.TargetMuscles)
	}

	description := p.Description
	if description == "" {
		description = describeWorkout(workoutType, req)
	}

	return GeneratedWorkout{
		Name:            p.Name,
		Description:     description,
		DurationMinutes: req.DurationMinutes,
		Type:            workoutType,
		TargetMuscles:   req.TargetMuscles,
		Exercises:       exercises,
	}, nil
}
