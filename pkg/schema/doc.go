// Package schema compiles declarative field-path → rule-set mappings into
// validation chains.
//
// A schema maps dotted paths (with array indices and wildcards) to named
// rule specifications. Rule names resolve through a Registry of factories;
// the built-in registry covers the rules and sanitize packages. Within one
// entry, rules apply in a fixed canonical order - defaults, then sanitizers,
// then presence checks, then type checks, then everything else - so the
// unordered map form stays deterministic. Entry order is preserved: chains
// compile in the order fields were declared.
//
// # Usage
//
//	s := schema.New().
//		Field("email", schema.Spec{"required": true, "isEmail": true, "normalizeEmail": true}).
//		Field("items.*.price", schema.Spec{"isNumeric": true, "min": 0})
//
//	chains, err := schema.Compile(s)
//
// Schemas can also be loaded from YAML with ParseYAML, which preserves the
// document's key order.
//
// # Error Handling
//
// Compile fails with a *CompilationError naming the offending path and rule
// when a path is malformed, a rule name is unknown, or rule parameters fail
// type checking (for example a non-numeric min, or min > max). A failed
// compilation produces zero chains, never a partial set.
package schema
