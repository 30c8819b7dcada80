package parser

import (
	"strings"

	"semu"
)

// builtinFunctions is the table of always-available functions from §4.2.
// QUOTE and nested call expressions may reference either these or a
// program-defined Function; the dispatcher in semu/interp prefers a
// same-named user-defined function.
var builtinFunctions = map[string]bool{
	"CONST0":             true,
	"Minus":              true,
	"Smaller_Than":       true,
	"Smaller_Equal_Than": true,
	"EQUAL":              true,
	"NOT":                true,
	"AND":                true,
}

// validateFunctionReferences checks every QUOTE's functionName, and every
// nested call name inside a functionArguments expression tree, against the
// built-in table and the program's own functions. Unlike the original
// engine (which only scanned the main sequence's top-level functionName),
// this walks main instructions and every function body, and descends into
// nested call expressions, since a function composed from inside another
// function is just as reachable at runtime.
func validateFunctionReferences(instructions []semu.Instruction, functions []semu.Function) error {
	defined := make(map[string]bool, len(functions))
	for _, f := range functions {
		defined[f.Name] = true
	}
	known := func(name string) bool {
		return builtinFunctions[name] || defined[name]
	}

	check := func(seq []semu.Instruction) error {
		for _, ins := range seq {
			if ins.IsBasic || ins.SynOp != semu.OpQuote {
				continue
			}
			name := strings.TrimSpace(ins.Args[semu.ArgFunctionName])
			if name != "" && !known(name) {
				return semu.NewValidationError(ins.Index, "undefined function %q", name)
			}
			for _, nested := range nestedCallNames(ins.Args[semu.ArgFunctionArgs]) {
				if !known(nested) {
					return semu.NewValidationError(ins.Index, "undefined function %q", nested)
				}
			}
		}
		return nil
	}

	if err := check(instructions); err != nil {
		return err
	}
	for _, f := range functions {
		if err := check(f.Instructions); err != nil {
			return err
		}
	}
	return nil
}

// nestedCallNames extracts the call-head name of every "(Name, ...)" term
// appearing anywhere in a functionArguments expression, at any nesting
// depth, without fully parsing the term tree (that's evaluateTerms's job
// at run time; here we only need the names for validation).
func nestedCallNames(expr string) []string {
	var names []string
	for i := 0; i < len(expr); i++ {
		if expr[i] != '(' {
			continue
		}
		rest := expr[i+1:]
		comma := strings.IndexByte(rest, ',')
		paren := strings.IndexByte(rest, ')')
		end := comma
		if end < 0 || (paren >= 0 && paren < end) {
			end = paren
		}
		if end < 0 {
			continue
		}
		name := strings.TrimSpace(rest[:end])
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
