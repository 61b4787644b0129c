package pwsh

import "bash2pwsh/pkg/shast"

func registerPredicate() {
	register([]string{"test", "["}, translateTest)
}

// translateTest implements spec.md §4.4's test/[ contract: unary
// predicates, binary comparisons, negation, and compound -a/-o. A
// trailing ] is stripped for the `[` form.
func translateTest(sc *shast.SimpleCommand, ctx *TransformContext) string {
	raws := rawArgs(sc)
	words := sc.Args[1:]
	if len(raws) > 0 && raws[len(raws)-1] == "]" {
		raws = raws[:len(raws)-1]
		words = words[:len(words)-1]
	}
	return testExpr(raws, words, ctx)
}

func testExpr(raws []string, words []*shast.Word, ctx *TransformContext) string {
	if len(raws) == 0 {
		return "$false"
	}

	// Compound: split on top-level -a/-o (test has no grouping parens in
	// the supported subset, so a flat left-to-right split suffices).
	for i, r := range raws {
		if r == "-a" {
			return "(" + testExpr(raws[:i], words[:i], ctx) + " -and " + testExpr(raws[i+1:], words[i+1:], ctx) + ")"
		}
		if r == "-o" {
			return "(" + testExpr(raws[:i], words[:i], ctx) + " -or " + testExpr(raws[i+1:], words[i+1:], ctx) + ")"
		}
	}

	if raws[0] == "!" {
		return "(-not " + testExpr(raws[1:], words[1:], ctx) + ")"
	}

	if len(raws) == 2 {
		return unaryTest(raws[0], testOperand(words[1], ctx))
	}
	if len(raws) == 3 {
		return binaryTest(raws[1], testOperand(words[0], ctx), testOperand(words[2], ctx))
	}
	if len(raws) == 1 {
		return testOperand(words[0], ctx) + " -ne ''"
	}
	return placeholder("test: unsupported expression shape", ctx)
}

func unaryTest(op, operand string) string {
	switch op {
	case "-f":
		return "(Test-Path " + operand + " -PathType Leaf)"
	case "-d":
		return "(Test-Path " + operand + " -PathType Container)"
	case "-e":
		return "(Test-Path " + operand + ")"
	case "-s":
		return "((Test-Path " + operand + ") -and (Get-Item " + operand + ").Length -gt 0)"
	case "-z":
		return "([string]::IsNullOrEmpty(" + operand + "))"
	case "-n":
		return "(-not [string]::IsNullOrEmpty(" + operand + "))"
	case "-L":
		return "((Get-Item " + operand + " -Force).LinkType -ne $null)"
	default:
		return "(" + operand + ")"
	}
}

func binaryTest(op, l, r string) string {
	switch op {
	case "=", "==":
		return "(" + l + " -eq " + r + ")"
	case "!=":
		return "(" + l + " -ne " + r + ")"
	case "-eq":
		return "(" + l + " -eq " + r + ")"
	case "-ne":
		return "(" + l + " -ne " + r + ")"
	case "-gt":
		return "(" + l + " -gt " + r + ")"
	case "-ge":
		return "(" + l + " -ge " + r + ")"
	case "-lt":
		return "(" + l + " -lt " + r + ")"
	case "-le":
		return "(" + l + " -le " + r + ")"
	case "-nt":
		return "((Get-Item " + l + ").LastWriteTime -gt (Get-Item " + r + ").LastWriteTime)"
	case "-ot":
		return "((Get-Item " + l + ").LastWriteTime -lt (Get-Item " + r + ").LastWriteTime)"
	default:
		return "(" + l + " -eq " + r + ")"
	}
}

// testOperand renders a test operand; a bare $-prefixed positional
// special aside, operands that look like $NAME become $env:NAME per
// spec.md's test contract.
func testOperand(w *shast.Word, ctx *TransformContext) string {
	return TranslateWord(w, ctx)
}
