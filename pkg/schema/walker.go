package schema

import (
	"fmt"

	"github.com/promptmeter/promptmeter/pkg/bpe"
	"github.com/promptmeter/promptmeter/pkg/model"
)

// InvalidNodeError reports a schema tree whose shape the walker cannot
// account for: an object with a nil property, or a node of unknown kind.
type InvalidNodeError struct {
	Reason string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("schema: invalid node: %s", e.Reason)
}

// Walk tokenizes root (which must be an Object) per §4.4: property names and
// descriptions are counted via eng, and the per-property/nesting overhead
// coefficients from coeffs are added according to each property's position
// and type.
func Walk(eng *bpe.Engine, coeffs model.TokenCoefficients, root Node) (int, error) {
	obj, ok := root.(Object)
	if !ok {
		return 0, &InvalidNodeError{Reason: fmt.Sprintf("root node must be an object, got %s", root.Kind())}
	}
	return walkObject(eng, coeffs, obj)
}

func walkObject(eng *bpe.Engine, coeffs model.TokenCoefficients, obj Object) (int, error) {
	if obj.Properties == nil {
		return 0, nil
	}
	total := 0
	i := 0
	for pair := obj.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, node := pair.Key, pair.Value
		if node == nil {
			return 0, &InvalidNodeError{Reason: fmt.Sprintf("property %q has no node", name)}
		}

		nameTokens, err := eng.Count(name)
		if err != nil {
			return 0, err
		}
		total += nameTokens

		if i == 0 {
			total += coeffs.PerFirstProp
		} else {
			total += coeffs.PerAdditionalProp
		}

		if desc, has := node.Desc(); has && desc != "" {
			descTokens, err := eng.Count(desc)
			if err != nil {
				return 0, err
			}
			total += coeffs.PerPropDesc + descTokens
		}

		sub, err := walkNode(eng, coeffs, node)
		if err != nil {
			return 0, err
		}
		total += sub
		i++
	}
	return total, nil
}

// walkNode accounts for a node's own structural contribution, independent
// of any property-position overhead its containing object already added.
func walkNode(eng *bpe.Engine, coeffs model.TokenCoefficients, node Node) (int, error) {
	switch n := node.(type) {
	case Enum:
		total := coeffs.PerEnum
		for _, v := range n.Values {
			vTokens, err := eng.Count(v)
			if err != nil {
				return 0, err
			}
			total += vTokens
		}
		return total, nil
	case Object:
		sub, err := walkObject(eng, coeffs, n)
		if err != nil {
			return 0, err
		}
		return coeffs.PerNestedObject + sub, nil
	case Array:
		if elemObj, ok := n.Element.(Object); ok {
			sub, err := walkObject(eng, coeffs, elemObj)
			if err != nil {
				return 0, err
			}
			return coeffs.PerArrayOfObjects + sub, nil
		}
		if n.Element == nil {
			return 0, nil
		}
		return walkNode(eng, coeffs, n.Element)
	case String, Number, Boolean:
		return 0, nil
	default:
		return 0, &InvalidNodeError{Reason: fmt.Sprintf("unknown node kind %s", node.Kind())}
	}
}
