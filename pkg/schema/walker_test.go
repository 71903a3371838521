package schema

import (
	"testing"

	"github.com/promptmeter/promptmeter/pkg/bpe"
	"github.com/promptmeter/promptmeter/pkg/encoding"
	"github.com/promptmeter/promptmeter/pkg/model"
)

func mustEngine(t *testing.T) *bpe.Engine {
	t.Helper()
	tbl, err := encoding.Load(encoding.CL100kBase)
	if err != nil {
		t.Fatal(err)
	}
	eng, err := bpe.NewEngine(tbl, bpe.DefaultCacheSize)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

var testCoeffs = model.TokenCoefficients{
	PerFirstProp:      3,
	PerAdditionalProp: 3,
	PerPropDesc:       3,
	PerEnum:           3,
	PerNestedObject:   3,
	PerArrayOfObjects: 3,
}

func leafObject() Object {
	props := NewProperties()
	props.Set("x", String{})
	return Object{Properties: props}
}

func TestWalkFlatObject(t *testing.T) {
	eng := mustEngine(t)
	total, err := Walk(eng, testCoeffs, leafObject())
	if err != nil {
		t.Fatal(err)
	}
	xTokens, _ := eng.Count("x")
	want := xTokens + testCoeffs.PerFirstProp
	if total != want {
		t.Errorf("flat total = %d, want %d", total, want)
	}
}

func TestRootMustBeObject(t *testing.T) {
	eng := mustEngine(t)
	_, err := Walk(eng, testCoeffs, String{})
	if err == nil {
		t.Fatal("expected InvalidNodeError for non-object root")
	}
	if _, ok := err.(*InvalidNodeError); !ok {
		t.Errorf("error = %T, want *InvalidNodeError", err)
	}
}

// TestSchemaNestingLaw verifies that wrapping the leaf schema one level
// deeper inside an object property costs exactly per_nested_object beyond
// the wrapper's own name/first-prop overhead.
func TestSchemaNestingLaw(t *testing.T) {
	eng := mustEngine(t)

	flatTotal, err := Walk(eng, testCoeffs, leafObject())
	if err != nil {
		t.Fatal(err)
	}

	wrapperProps := NewProperties()
	wrapperProps.Set("wrapper", Object{Properties: leafObject().Properties})
	nested := Object{Properties: wrapperProps}

	nestedTotal, err := Walk(eng, testCoeffs, nested)
	if err != nil {
		t.Fatal(err)
	}

	wrapperTokens, _ := eng.Count("wrapper")
	gotDelta := nestedTotal - (wrapperTokens + testCoeffs.PerFirstProp) - flatTotal
	if gotDelta != testCoeffs.PerNestedObject {
		t.Errorf("nesting delta = %d, want per_nested_object = %d", gotDelta, testCoeffs.PerNestedObject)
	}
}

func TestEnumContributesValues(t *testing.T) {
	eng := mustEngine(t)
	props := NewProperties()
	props.Set("color", Enum{Values: []string{"red", "green", "blue"}})
	obj := Object{Properties: props}

	total, err := Walk(eng, testCoeffs, obj)
	if err != nil {
		t.Fatal(err)
	}

	nameTokens, _ := eng.Count("color")
	want := nameTokens + testCoeffs.PerFirstProp + testCoeffs.PerEnum
	for _, v := range []string{"red", "green", "blue"} {
		n, _ := eng.Count(v)
		want += n
	}
	if total != want {
		t.Errorf("enum total = %d, want %d", total, want)
	}
}

func TestArrayOfObjectsUsesArrayCoefficient(t *testing.T) {
	eng := mustEngine(t)
	props := NewProperties()
	props.Set("items", Array{Element: leafObject()})
	obj := Object{Properties: props}

	total, err := Walk(eng, testCoeffs, obj)
	if err != nil {
		t.Fatal(err)
	}

	nameTokens, _ := eng.Count("items")
	inner, _ := Walk(eng, testCoeffs, leafObject())
	want := nameTokens + testCoeffs.PerFirstProp + testCoeffs.PerArrayOfObjects + inner
	if total != want {
		t.Errorf("array-of-objects total = %d, want %d", total, want)
	}
}

func TestArrayOfScalarsContributesNothingExtra(t *testing.T) {
	eng := mustEngine(t)
	props := NewProperties()
	props.Set("tags", Array{Element: String{}})
	obj := Object{Properties: props}

	total, err := Walk(eng, testCoeffs, obj)
	if err != nil {
		t.Fatal(err)
	}

	nameTokens, _ := eng.Count("tags")
	want := nameTokens + testCoeffs.PerFirstProp
	if total != want {
		t.Errorf("array-of-scalars total = %d, want %d", total, want)
	}
}

func TestPropertyDescriptionOverhead(t *testing.T) {
	eng := mustEngine(t)
	props := NewProperties()
	props.Set("name", String{Description: "the user's full name", HasDesc: true})
	obj := Object{Properties: props}

	total, err := Walk(eng, testCoeffs, obj)
	if err != nil {
		t.Fatal(err)
	}

	nameTokens, _ := eng.Count("name")
	descTokens, _ := eng.Count("the user's full name")
	want := nameTokens + testCoeffs.PerFirstProp + testCoeffs.PerPropDesc + descTokens
	if total != want {
		t.Errorf("description total = %d, want %d", total, want)
	}
}
