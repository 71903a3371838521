package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/promptmeter/promptmeter/pkg/accountant"
	"github.com/promptmeter/promptmeter/pkg/schema"
)

// promptFile is the on-disk shape an `account` input document is decoded
// from: a list of chat messages plus the tool definitions available to the
// model, using the same vocabulary vendor chat APIs use (role, content
// parts, tool calls/results, JSON-schema tool parameters).
type promptFile struct {
	Messages []rawMessage `json:"messages"`
	Tools    []rawTool    `json:"tools"`
}

type rawMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type rawPart struct {
	Type       string          `json:"type"`
	Text       string          `json:"text,omitempty"`
	ToolCallID string          `json:"toolCallId,omitempty"`
	ToolName   string          `json:"toolName,omitempty"`
	Input      json.RawMessage `json:"input,omitempty"`
	Output     json.RawMessage `json:"output,omitempty"`
}

type rawTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

func decodePromptFile(data []byte) ([]accountant.Message, []accountant.Tool, error) {
	var pf promptFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("promptfile: decoding: %w", err)
	}

	messages := make([]accountant.Message, 0, len(pf.Messages))
	for i, rm := range pf.Messages {
		msg, err := rm.toMessage()
		if err != nil {
			return nil, nil, fmt.Errorf("promptfile: message %d: %w", i, err)
		}
		messages = append(messages, msg)
	}

	tools := make([]accountant.Tool, 0, len(pf.Tools))
	for i, rt := range pf.Tools {
		tool, err := rt.toTool()
		if err != nil {
			return nil, nil, fmt.Errorf("promptfile: tool %d: %w", i, err)
		}
		tools = append(tools, tool)
	}

	return messages, tools, nil
}

func (rm rawMessage) toMessage() (accountant.Message, error) {
	var asString string
	if err := json.Unmarshal(rm.Content, &asString); err == nil {
		return accountant.Message{Role: accountant.Role(rm.Role), Content: asString}, nil
	}

	var rawParts []rawPart
	if err := json.Unmarshal(rm.Content, &rawParts); err != nil {
		return accountant.Message{}, fmt.Errorf("content must be a string or an array of parts: %w", err)
	}
	parts := make([]accountant.ContentPart, 0, len(rawParts))
	for i, rp := range rawParts {
		part, err := rp.toPart()
		if err != nil {
			return accountant.Message{}, fmt.Errorf("content part %d: %w", i, err)
		}
		parts = append(parts, part)
	}
	return accountant.Message{Role: accountant.Role(rm.Role), Content: parts}, nil
}

func (rp rawPart) toPart() (accountant.ContentPart, error) {
	switch accountant.PartKind(rp.Type) {
	case accountant.PartText:
		return accountant.TextPart{Text: rp.Text}, nil
	case accountant.PartToolCall:
		input, err := decodeAny(rp.Input)
		if err != nil {
			return nil, fmt.Errorf("decoding tool-call input: %w", err)
		}
		return accountant.ToolCallPart{ToolCallID: rp.ToolCallID, ToolName: rp.ToolName, Input: input}, nil
	case accountant.PartToolResult:
		output, err := decodeAny(rp.Output)
		if err != nil {
			return nil, fmt.Errorf("decoding tool-result output: %w", err)
		}
		return accountant.ToolResultPart{ToolCallID: rp.ToolCallID, Output: output}, nil
	case accountant.PartImage:
		return accountant.ImagePart{}, nil
	case accountant.PartFile:
		return accountant.FilePart{}, nil
	default:
		return nil, fmt.Errorf("unknown content part type %q", rp.Type)
	}
}

func (rt rawTool) toTool() (accountant.Tool, error) {
	var node schema.Node
	if len(rt.InputSchema) > 0 {
		n, err := schema.FromJSON(rt.InputSchema)
		if err != nil {
			return accountant.Tool{}, fmt.Errorf("decoding inputSchema: %w", err)
		}
		node = n
	} else {
		node = schema.Object{Properties: schema.NewProperties()}
	}
	return accountant.Tool{
		Name:        rt.Name,
		Description: rt.Description,
		HasDesc:     rt.Description != "",
		InputSchema: node,
	}, nil
}

// decodeAny decodes raw into an ordered map when it is a JSON object (so
// its top-level key order survives re-serialization), or into a plain Go
// value otherwise. Only the top level is ordered: nested objects, and
// objects inside a top-level array, decode as plain maps, whose keys
// encoding/json re-serializes in sorted order.
func decodeAny(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '{' {
		om := orderedmap.New[string, any]()
		if err := json.Unmarshal(raw, om); err != nil {
			return nil, err
		}
		return om, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
