package pwsh

import (
	"bash2pwsh/pkg/shast"
	"bash2pwsh/pkg/shlex"
)

// translateCommandSubstitution re-lexes, re-parses and re-translates a
// $(...) part's raw inner text in a fresh child context (spec.md §9:
// "Recursive quoting inside command substitution"). The child starts with
// empty diagnostics and shares only the tool record and the read-only
// options with the parent; its warnings/unsupported/usedFallbacks
// are absorbed into the parent after translation so effects aggregate
// upward only. On any parser failure, append a warning to the parent and
// fall back to the raw, untranslated passthrough.
func translateCommandSubstitution(cs shast.CommandSubstitution, ctx *TransformContext) string {
	child := ctx.childContext()
	script, err := shast.Parse(shlex.Lex(cs.Raw))
	if err != nil {
		ctx.warn("command substitution could not be parsed: " + err.Error())
		return "$(" + cs.Raw + ")"
	}
	inner := TranslateScript(script, child)
	ctx.absorb(child)
	return "$(" + inner + ")"
}
