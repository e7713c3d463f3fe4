// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

// cppTypes maps parameter kinds to their scaffold type names.
var cppTypes = map[plugin.ParamKind]string{
	plugin.KindBool:      "bool",
	plugin.KindInt:       "int32",
	plugin.KindFloat:     "float",
	plugin.KindString:    "FString",
	plugin.KindName:      "FName",
	plugin.KindText:      "FText",
	plugin.KindVector:    "FVector",
	plugin.KindRotator:   "FRotator",
	plugin.KindTransform: "FTransform",
	plugin.KindObject:    "UObject*",
}

// CPPType returns the scaffold type of a parameter. Object kinds are pointers
// and array parameters are wrapped in TArray. Unknown kinds render as their
// raw name.
func CPPType(p plugin.Parameter) string {
	t, ok := cppTypes[p.Kind]
	if !ok {
		t = string(p.Kind)
	}
	if plugin.Deref(p.IsArray) {
		return "TArray<" + t + ">"
	}
	return t
}

// Scaffold renders the source header: fixed boilerplate wrapping a node
// declaration region and a command binding region.
func Scaffold(m plugin.Model, opts ScaffoldOptions) string {
	sym := Symbol(m.Meta.Identifier)

	var nodes []string
	var commands []string
	for _, mod := range m.Modules {
		for _, n := range mod.Nodes {
			nodes = append(nodes, nodeBlock(sym, n, opts))
		}
	}
	for _, mod := range m.Modules {
		for _, c := range mod.Commands {
			commands = append(commands, commandBlock(c, opts))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s.h\n", ArtifactBaseName(m))
	fmt.Fprintf(&sb, "// %s %s\n", oneLine(m.Meta.Title), oneLine(m.Meta.Version))
	sb.WriteString("// Generated by plugsmith. Declarations are regenerated on export.\n\n")
	sb.WriteString("#pragma once\n\n")
	sb.WriteString("#include \"CoreMinimal.h\"\n")
	sb.WriteString("#include \"Framework/Commands/Commands.h\"\n")
	sb.WriteString("#include \"Kismet/BlueprintFunctionLibrary.h\"\n")
	fmt.Fprintf(&sb, "#include \"%s.generated.h\"\n\n", sym)

	sb.WriteString("UCLASS()\n")
	fmt.Fprintf(&sb, "class U%sLibrary : public UBlueprintFunctionLibrary\n", sym)
	sb.WriteString("{\n")
	sb.WriteString(opts.Indent + "GENERATED_BODY()\n\n")
	sb.WriteString("public:\n")
	sb.WriteString(indent(strings.Join(nodes, "\n\n"), 1, opts.Indent))
	sb.WriteString("};\n\n")

	fmt.Fprintf(&sb, "class F%sCommands : public TCommands<F%sCommands>\n", sym, sym)
	sb.WriteString("{\n")
	sb.WriteString("public:\n")
	sb.WriteString(opts.Indent + "virtual void RegisterCommands() override\n")
	sb.WriteString(opts.Indent + "{\n")
	sb.WriteString(indent(strings.Join(commands, "\n\n"), 2, opts.Indent))
	sb.WriteString(opts.Indent + "}\n")
	sb.WriteString("};\n")
	return sb.String()
}

func nodeBlock(sym string, n plugin.Node, opts ScaffoldOptions) string {
	args := make([]string, 0, len(n.Inputs)+len(n.Outputs))
	for _, p := range n.Inputs {
		args = append(args, CPPType(p)+" "+Symbol(p.Name))
	}
	for _, p := range n.Outputs {
		args = append(args, CPPType(p)+"& "+Symbol(p.Name))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s\n", oneLine(n.Title))
	if n.Description != "" {
		fmt.Fprintf(&sb, "// %s\n", oneLine(n.Description))
	}
	fmt.Fprintf(&sb, "UFUNCTION(BlueprintCallable, Category = \"%s|%s\")\n", sym, cString(n.Category))
	fmt.Fprintf(&sb, "static void %s(%s);\n", Symbol(n.Title), strings.Join(args, ", "))
	commentBlock(&sb, "Body", []string{n.Body})
	commentBlock(&sb, "Outputs", paramLines(n.Outputs, opts))
	commentBlock(&sb, "Inputs", paramLines(n.Inputs, opts))
	return strings.TrimSuffix(sb.String(), "\n")
}

func paramLines(params []plugin.Parameter, opts ScaffoldOptions) []string {
	if len(params) == 0 {
		return []string{opts.Placeholder}
	}
	lines := make([]string, 0, len(params))
	for _, p := range params {
		line := p.Name + ": " + CPPType(p)
		if def := plugin.Deref(p.DefaultValue); def != "" {
			line += " = " + def
		}
		if desc := plugin.Deref(p.Description); desc != "" {
			line += " // " + oneLine(desc)
		}
		lines = append(lines, line)
	}
	return lines
}

func commandBlock(c plugin.Command, opts ScaffoldOptions) string {
	hotkey := strings.Join(HotkeyTokens(c.Hotkey, opts), opts.Separator)
	if hotkey == "" {
		hotkey = opts.Placeholder
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s [%s]\n", oneLine(c.Name), oneLine(c.Context))
	if c.Description != "" {
		fmt.Fprintf(&sb, "// %s\n", oneLine(c.Description))
	}
	fmt.Fprintf(&sb, "// Hotkey: %s\n", hotkey)
	fmt.Fprintf(&sb, "UI_COMMAND(%s, \"%s\", \"%s\", EUserInterfaceActionType::Button, FInputChord());\n",
		Symbol(c.Name), cString(c.Name), cString(c.Description))
	commentBlock(&sb, "Script", []string{c.Script})
	return strings.TrimSuffix(sb.String(), "\n")
}

// commentTerminator rewrites "*/" inside a fragment so it cannot close the
// enclosing comment.
var commentTerminator = strings.NewReplacer("*/", `*\/`)

// commentBlock writes lines between "/* label:" and "*/". Lines are copied
// verbatim except that "*/" becomes `*\/`.
func commentBlock(sb *strings.Builder, label string, lines []string) {
	fmt.Fprintf(sb, "/* %s:\n", label)
	for _, l := range lines {
		sb.WriteString(commentTerminator.Replace(l))
		sb.WriteString("\n")
	}
	sb.WriteString("*/\n")
}

// indent prefixes every line holding non-whitespace text with level copies
// of unit. Blank and whitespace-only lines are kept as they are. The result
// ends in a newline unless text is empty.
func indent(text string, level int, unit string) string {
	if text == "" {
		return ""
	}
	prefix := strings.Repeat(unit, level)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var cStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func cString(s string) string {
	return cStringEscaper.Replace(s)
}
