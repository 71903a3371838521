// Package accountant implements the Prompt Accountant: combining the BPE
// Engine, a Model Config, and the Schema Walker to estimate the token cost
// of a structured chat prompt.
package accountant

import "github.com/promptmeter/promptmeter/pkg/schema"

// Role is a chat message's role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one chat turn. Content is either a plain string or a
// []ContentPart; any other type is a caller error.
type Message struct {
	Role    Role
	Content any
}

// PartKind discriminates the five content-part shapes.
type PartKind string

const (
	PartText       PartKind = "text"
	PartToolCall   PartKind = "tool-call"
	PartToolResult PartKind = "tool-result"
	PartImage      PartKind = "image"
	PartFile       PartKind = "file"
)

// ContentPart is a tagged-variant element of a structured message body.
type ContentPart interface {
	Kind() PartKind
}

// TextPart is plain text content.
type TextPart struct {
	Text string
}

func (TextPart) Kind() PartKind { return PartText }

// ToolCallPart records an assistant-issued tool invocation. Input should be
// a JSON-marshalable value; when it represents an object with more than one
// key, use *orderedmap.OrderedMap[string, any] rather than a plain map so
// the serialized key order matches what was actually sent, since Go's
// encoding/json sorts plain map keys alphabetically.
type ToolCallPart struct {
	ToolCallID string
	ToolName   string
	Input      any
}

func (ToolCallPart) Kind() PartKind { return PartToolCall }

// ToolResultPart records a tool's response. Output may already be a string
// (used as-is) or any other JSON-marshalable value (serialized); the same
// ordered-map caveat as ToolCallPart.Input applies.
type ToolResultPart struct {
	ToolCallID string
	Output     any
}

func (ToolResultPart) Kind() PartKind { return PartToolResult }

// ImagePart is an image content part, accounted with a fixed approximation.
type ImagePart struct{}

func (ImagePart) Kind() PartKind { return PartImage }

// FilePart is a file content part, accounted with a fixed approximation.
type FilePart struct{}

func (FilePart) Kind() PartKind { return PartFile }

// imageTokens and fileTokens are hard-coded placeholder costs for content
// kinds the BPE engine cannot measure directly.
const (
	imageTokens = 85
	fileTokens  = 100
)

// Tool is one tool definition: a name, optional description, and a typed
// input schema.
type Tool struct {
	Name        string
	Description string
	HasDesc     bool
	InputSchema schema.Node
}

// PartResult is the per-part breakdown recorded against a message.
type PartResult struct {
	Type   string `json:"type"`
	Total  int    `json:"total"`
	Input  int    `json:"input,omitempty"`
	Output int    `json:"output,omitempty"`
}

// MessageResult is the per-message breakdown.
type MessageResult struct {
	Total   int          `json:"total"`
	Content []PartResult `json:"content"`
}

// ToolDefResult is the per-tool breakdown recorded in Tools.Definitions.
type ToolDefResult struct {
	Name        string `json:"name"`
	Description int    `json:"description"`
	InputSchema int    `json:"inputSchema"`
}

// ToolsResult is the aggregate tool-definition breakdown.
type ToolsResult struct {
	Total       int                      `json:"total"`
	Definitions map[string]ToolDefResult `json:"definitions"`
}

// Result is the full accounting: a total plus per-message and per-tool
// breakdowns.
type Result struct {
	Total    int             `json:"total"`
	Messages []MessageResult `json:"messages"`
	Tools    ToolsResult     `json:"tools"`
}
