package accountant

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/promptmeter/promptmeter/pkg/bpe"
	"github.com/promptmeter/promptmeter/pkg/model"
	"github.com/promptmeter/promptmeter/pkg/schema"
)

// Count combines eng and cfg to produce a total token estimate plus a
// per-message and per-tool breakdown for messages and tools, per §4.5.
func Count(eng *bpe.Engine, cfg model.Config, messages []Message, tools []Tool) (Result, error) {
	total := cfg.Tokens.BaseOverhead

	messageResults := make([]MessageResult, 0, len(messages))
	for i, msg := range messages {
		mr, err := countMessage(eng, cfg, msg)
		if err != nil {
			return Result{}, fmt.Errorf("accountant: message %d: %w", i, err)
		}
		messageResults = append(messageResults, mr)
		total += mr.Total
	}

	toolsResult, err := countTools(eng, cfg, tools)
	if err != nil {
		return Result{}, err
	}
	total += toolsResult.Total

	return Result{Total: total, Messages: messageResults, Tools: toolsResult}, nil
}

func countMessage(eng *bpe.Engine, cfg model.Config, msg Message) (MessageResult, error) {
	roleTokens, err := eng.Count(string(msg.Role))
	if err != nil {
		return MessageResult{}, err
	}
	m := cfg.Tokens.PerMessage + roleTokens

	var parts []ContentPart
	switch c := msg.Content.(type) {
	case string:
		parts = []ContentPart{TextPart{Text: c}}
	case []ContentPart:
		parts = c
	default:
		return MessageResult{}, fmt.Errorf("content must be string or []ContentPart, got %T", msg.Content)
	}

	results := make([]PartResult, 0, len(parts))
	for i, p := range parts {
		pr, err := countPart(eng, cfg, p)
		if err != nil {
			return MessageResult{}, fmt.Errorf("content part %d: %w", i, err)
		}
		results = append(results, pr)
		m += pr.Total
	}
	return MessageResult{Total: m, Content: results}, nil
}

func countPart(eng *bpe.Engine, cfg model.Config, part ContentPart) (PartResult, error) {
	mult := cfg.Multiplier()
	switch p := part.(type) {
	case TextPart:
		raw, err := eng.Count(p.Text)
		if err != nil {
			return PartResult{}, err
		}
		return PartResult{Type: string(PartText), Total: roundMultiplier(raw, mult)}, nil

	case ToolCallPart:
		inputJSON, err := marshalCompact(p.Input)
		if err != nil {
			return PartResult{}, fmt.Errorf("serializing tool-call input: %w", err)
		}
		rawInput, err := eng.Count(inputJSON)
		if err != nil {
			return PartResult{}, err
		}
		rawName, err := eng.Count(p.ToolName)
		if err != nil {
			return PartResult{}, err
		}
		reported := roundMultiplier(rawInput+rawName, mult)
		inputReported := roundMultiplier(rawInput, mult)
		return PartResult{Type: string(PartToolCall), Total: reported, Input: inputReported}, nil

	case ToolResultPart:
		outputText, ok := p.Output.(string)
		if !ok {
			j, err := marshalCompact(p.Output)
			if err != nil {
				return PartResult{}, fmt.Errorf("serializing tool-result output: %w", err)
			}
			outputText = j
		}
		rawOutput, err := eng.Count(outputText)
		if err != nil {
			return PartResult{}, err
		}
		rawID, err := eng.Count(p.ToolCallID)
		if err != nil {
			return PartResult{}, err
		}
		reported := roundMultiplier(rawOutput+rawID, mult)
		outputReported := roundMultiplier(rawOutput, mult)
		return PartResult{Type: string(PartToolResult), Total: reported, Output: outputReported}, nil

	case ImagePart:
		return PartResult{Type: string(PartText), Total: imageTokens}, nil

	case FilePart:
		return PartResult{Type: string(PartText), Total: fileTokens}, nil

	default:
		return PartResult{}, fmt.Errorf("unknown content part kind %T", part)
	}
}

func countTools(eng *bpe.Engine, cfg model.Config, tools []Tool) (ToolsResult, error) {
	if len(tools) == 0 {
		return ToolsResult{Total: 0, Definitions: map[string]ToolDefResult{}}, nil
	}

	total := cfg.Tokens.ToolsExist
	defs := make(map[string]ToolDefResult, len(tools))
	for i, tool := range tools {
		nameTokens, err := eng.Count(tool.Name)
		if err != nil {
			return ToolsResult{}, fmt.Errorf("tool %q: %w", tool.Name, err)
		}

		descTokens := 0
		if tool.HasDesc {
			d, err := eng.Count(tool.Description)
			if err != nil {
				return ToolsResult{}, fmt.Errorf("tool %q: %w", tool.Name, err)
			}
			descTokens = cfg.Tokens.PerDesc + d
		}

		schemaTokens, err := schema.Walk(eng, cfg.Tokens, tool.InputSchema)
		if err != nil {
			return ToolsResult{}, fmt.Errorf("tool %q: %w", tool.Name, err)
		}

		defs[tool.Name] = ToolDefResult{Name: tool.Name, Description: descTokens, InputSchema: schemaTokens}
		total += nameTokens + descTokens + schemaTokens
		if i > 0 {
			total += cfg.Tokens.PerTool
		}
	}
	return ToolsResult{Total: total, Definitions: defs}, nil
}

// roundMultiplier applies cfg's content multiplier and rounds half away
// from zero, matching math.Round's tie-breaking exactly.
func roundMultiplier(raw int, mult float64) int {
	return int(math.Round(float64(raw) * mult))
}

func marshalCompact(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
