package symart

import (
	"sort"

	"github.com/artgrid/symart/symmetry"
)

// JSON-schema fragments shared by design parameter forms. Designs assemble
// these into the object schema returned by their Schema method.

// SchemaSizeEven describes an even image size in pixels.
func SchemaSizeEven() map[string]any {
	return map[string]any{
		"type":       "integer",
		"title":      "Size",
		"minimum":    2,
		"maximum":    65536,
		"multipleOf": 2,
		"default":    256,
	}
}

// SchemaSize describes an unconstrained image size in pixels.
func SchemaSize() map[string]any {
	return map[string]any{
		"type":    "integer",
		"title":   "Size",
		"minimum": 1,
		"maximum": 65536,
		"default": 256,
	}
}

// SchemaWidth describes an image width in pixels.
func SchemaWidth() map[string]any {
	return map[string]any{
		"type":    "integer",
		"title":   "Width",
		"minimum": 1,
		"maximum": 65536,
		"default": 1600,
	}
}

// SchemaHeight describes an image height in pixels.
func SchemaHeight() map[string]any {
	return map[string]any{
		"type":    "integer",
		"title":   "Height",
		"minimum": 1,
		"maximum": 65536,
		"default": 900,
	}
}

// SchemaNumColors describes the number of tinted layers to composite.
func SchemaNumColors() map[string]any {
	return map[string]any{
		"type":    "integer",
		"title":   "Colors",
		"minimum": 1,
		"maximum": 65536,
		"default": 25,
	}
}

// SchemaSymmetries describes a SymmetryChoice: any of the 17 group names
// plus "Random".
func SchemaSymmetries() map[string]any {
	names := make([]string, 0, symmetry.GroupCount+1)
	for _, g := range symmetry.Groups() {
		names = append(names, g.String())
	}
	names = append(names, "Random")
	return map[string]any{
		"type":    "string",
		"title":   "Symmetry",
		"enum":    names,
		"default": "Random",
	}
}

// SchemaRequireAll marks every property of an object schema as required.
func SchemaRequireAll(obj map[string]any) {
	props, ok := obj["properties"].(map[string]any)
	if !ok {
		return
	}
	required := make([]string, 0, len(props))
	for k := range props {
		required = append(required, k)
	}
	sort.Strings(required)
	obj["required"] = required
}
