package accountant

import (
	"testing"

	"github.com/promptmeter/promptmeter/pkg/bpe"
	"github.com/promptmeter/promptmeter/pkg/encoding"
	"github.com/promptmeter/promptmeter/pkg/model"
	"github.com/promptmeter/promptmeter/pkg/schema"
)

func mustEngine(t *testing.T) *bpe.Engine {
	t.Helper()
	tbl, err := encoding.Load(encoding.O200kBase)
	if err != nil {
		t.Fatal(err)
	}
	eng, err := bpe.NewEngine(tbl, bpe.DefaultCacheSize)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func baseConfig() model.Config {
	return model.Config{
		Name:     "test-model",
		Encoding: encoding.O200kBase,
		Tokens: model.TokenCoefficients{
			BaseOverhead:      3,
			PerMessage:        3,
			ToolsExist:        10,
			PerTool:           5,
			PerDesc:           2,
			PerFirstProp:      3,
			PerAdditionalProp: 3,
			PerPropDesc:       2,
			PerEnum:           2,
			PerNestedObject:   2,
			PerArrayOfObjects: 2,
			ContentMultiplier: 1.0,
		},
	}
}

func singleStringTool(name string) Tool {
	props := schema.NewProperties()
	props.Set("location", schema.String{})
	return Tool{
		Name:        name,
		InputSchema: schema.Object{Properties: props},
	}
}

func TestAccountantSumLaw(t *testing.T) {
	eng := mustEngine(t)
	cfg := baseConfig()
	messages := []Message{
		{Role: RoleSystem, Content: "You are a helpful assistant."},
		{Role: RoleUser, Content: "What is the weather in Paris?"},
	}
	tools := []Tool{singleStringTool("getWeather")}

	result, err := Count(eng, cfg, messages, tools)
	if err != nil {
		t.Fatal(err)
	}

	sum := cfg.Tokens.BaseOverhead
	for _, m := range result.Messages {
		sum += m.Total
	}
	sum += result.Tools.Total
	if result.Total != sum {
		t.Errorf("total = %d, want base + messages + tools = %d", result.Total, sum)
	}

	for i, msg := range messages {
		roleTokens, _ := eng.Count(string(msg.Role))
		want := cfg.Tokens.PerMessage + roleTokens
		for _, p := range result.Messages[i].Content {
			want += p.Total
		}
		if result.Messages[i].Total != want {
			t.Errorf("message %d total = %d, want %d", i, result.Messages[i].Total, want)
		}
	}

	minToolsTotal := cfg.Tokens.ToolsExist
	for name, def := range result.Tools.Definitions {
		nameTokens, _ := eng.Count(name)
		minToolsTotal += nameTokens + def.Description + def.InputSchema
	}
	if result.Tools.Total < minToolsTotal {
		t.Errorf("tools.total = %d, want >= %d", result.Tools.Total, minToolsTotal)
	}
}

func TestAccountantNoToolsIsZero(t *testing.T) {
	eng := mustEngine(t)
	cfg := baseConfig()
	result, err := Count(eng, cfg, []Message{{Role: RoleUser, Content: "hi"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Tools.Total != 0 {
		t.Errorf("Tools.Total = %d, want 0 when no tools are present", result.Tools.Total)
	}
}

func TestMultiplierLaw(t *testing.T) {
	eng := mustEngine(t)
	text := "a fairly ordinary sentence about nothing in particular"

	cfg1 := baseConfig()
	cfg1.Tokens.ContentMultiplier = 1.0
	r1, err := Count(eng, cfg1, []Message{{Role: RoleUser, Content: text}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg2 := baseConfig()
	cfg2.Tokens.ContentMultiplier = 2.0
	r2, err := Count(eng, cfg2, []Message{{Role: RoleUser, Content: text}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	part1 := r1.Messages[0].Content[0].Total
	part2 := r2.Messages[0].Content[0].Total
	if part2 != 2*part1 {
		t.Errorf("doubling content_multiplier gave %d, want %d (2x %d)", part2, 2*part1, part1)
	}
}

func TestToolCallAndToolResultParts(t *testing.T) {
	eng := mustEngine(t)
	cfg := baseConfig()

	input := schemaInput()
	messages := []Message{
		{Role: RoleAssistant, Content: []ContentPart{
			ToolCallPart{ToolCallID: "call_1", ToolName: "getWeather", Input: input},
		}},
		{Role: RoleTool, Content: []ContentPart{
			ToolResultPart{ToolCallID: "call_1", Output: "72F and sunny"},
		}},
	}

	result, err := Count(eng, cfg, messages, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Messages[0].Content[0].Type != string(PartToolCall) {
		t.Errorf("part type = %q, want tool-call", result.Messages[0].Content[0].Type)
	}
	if result.Messages[0].Content[0].Input <= 0 {
		t.Error("tool-call Input breakdown should be positive")
	}
	if result.Messages[1].Content[0].Output <= 0 {
		t.Error("tool-result Output breakdown should be positive")
	}
}

func schemaInput() map[string]any {
	return map[string]any{"location": "Paris"}
}

func TestImageAndFilePlaceholders(t *testing.T) {
	eng := mustEngine(t)
	cfg := baseConfig()
	messages := []Message{
		{Role: RoleUser, Content: []ContentPart{ImagePart{}, FilePart{}}},
	}
	result, err := Count(eng, cfg, messages, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Messages[0].Content[0].Total != imageTokens {
		t.Errorf("image total = %d, want %d", result.Messages[0].Content[0].Total, imageTokens)
	}
	if result.Messages[0].Content[1].Total != fileTokens {
		t.Errorf("file total = %d, want %d", result.Messages[0].Content[1].Total, fileTokens)
	}
}

func TestLargeToolResultExceedsThreshold(t *testing.T) {
	eng := mustEngine(t)
	cfg := baseConfig()

	items := make([]map[string]any, 5000)
	for i := range items {
		items[i] = map[string]any{"id": i, "name": "item", "active": true}
	}
	messages := []Message{
		{Role: RoleTool, Content: []ContentPart{
			ToolResultPart{ToolCallID: "call_1", Output: items},
		}},
	}

	result, err := Count(eng, cfg, messages, nil)
	if err != nil {
		t.Fatal(err)
	}
	output := result.Messages[0].Content[0].Output
	if output <= 40000 {
		t.Errorf("output = %d, want > 40000 for a 5000-element array result", output)
	}
	if result.Messages[0].Total < output {
		t.Errorf("message total %d should be >= its own output total %d", result.Messages[0].Total, output)
	}
	if result.Total < output {
		t.Errorf("root total %d should be >= output total %d", result.Total, output)
	}
}
