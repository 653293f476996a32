package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"graviton/internal/ast"
	"graviton/internal/source"
)

// ParamOutput — параметр функции в выводе AST.
type ParamOutput struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// ASTNodeOutput — узел AST для сериализации и печати. Структура общая для
// всех видов узлов; незаполненные поля опускаются.
type ASTNodeOutput struct {
	Kind     string          `json:"kind"`
	Span     source.Span     `json:"span"`
	Role     string          `json:"role,omitempty"`
	Name     string          `json:"name,omitempty"`
	Value    string          `json:"value,omitempty"`
	LitKind  string          `json:"lit_kind,omitempty"`
	Op       string          `json:"op,omitempty"`
	Mutable  bool            `json:"mutable,omitempty"`
	Type     string          `json:"type,omitempty"`
	Path     string          `json:"path,omitempty"`
	Ret      string          `json:"ret,omitempty"`
	Params   []ParamOutput   `json:"params,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// BuildASTJSON строит дерево вывода для модуля.
func BuildASTJSON(b *ast.Builder, module ast.ModuleID) (ASTNodeOutput, error) {
	m := b.Modules.Get(module)
	if m == nil {
		return ASTNodeOutput{}, fmt.Errorf("invalid module ID %d", module)
	}

	root := ASTNodeOutput{Kind: "Module", Span: m.Span}
	for _, stmt := range m.Stmts {
		root.Children = append(root.Children, buildNode(b, stmt))
	}
	if m.Tail.IsValid() {
		tail := buildNode(b, m.Tail)
		tail.Role = "tail"
		root.Children = append(root.Children, tail)
	}
	return root, nil
}

func buildNode(b *ast.Builder, id ast.ExprID) ASTNodeOutput {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return ASTNodeOutput{Kind: "Invalid"}
	}

	out := ASTNodeOutput{Kind: expr.Kind.String(), Span: expr.Span}

	switch expr.Kind {
	case ast.ExprIdent:
		d, _ := b.Exprs.Ident(id)
		out.Name = b.Lookup(d.Name)

	case ast.ExprLit:
		d, _ := b.Exprs.Literal(id)
		out.LitKind = d.Kind.String()
		out.Value = b.Lookup(d.Value)

	case ast.ExprUnary:
		d, _ := b.Exprs.Unary(id)
		out.Op = d.Op.String()
		out.Children = []ASTNodeOutput{buildNode(b, d.Operand)}

	case ast.ExprBinary:
		d, _ := b.Exprs.Binary(id)
		out.Op = d.Op.String()
		out.Children = []ASTNodeOutput{buildNode(b, d.Left), buildNode(b, d.Right)}

	case ast.ExprBlock:
		d, _ := b.Exprs.Block(id)
		for _, stmt := range d.Stmts {
			out.Children = append(out.Children, buildNode(b, stmt))
		}
		if d.Tail.IsValid() {
			tail := buildNode(b, d.Tail)
			tail.Role = "tail"
			out.Children = append(out.Children, tail)
		}

	case ast.ExprIf:
		d, _ := b.Exprs.If(id)
		for _, br := range d.Branches {
			cond := buildNode(b, br.Cond)
			cond.Role = "cond"
			body := buildNode(b, br.Body)
			body.Role = "then"
			out.Children = append(out.Children, cond, body)
		}
		if d.Else.IsValid() {
			elseBody := buildNode(b, d.Else)
			elseBody.Role = "else"
			out.Children = append(out.Children, elseBody)
		}

	case ast.ExprWhile:
		d, _ := b.Exprs.While(id)
		cond := buildNode(b, d.Cond)
		cond.Role = "cond"
		body := buildNode(b, d.Body)
		body.Role = "body"
		out.Children = []ASTNodeOutput{cond, body}

	case ast.ExprLet:
		d, _ := b.Exprs.Let(id)
		out.Name = b.Lookup(d.Name)
		out.Mutable = d.Mutable
		out.Type = b.Lookup(d.Type)
		if d.Init.IsValid() {
			out.Children = []ASTNodeOutput{buildNode(b, d.Init)}
		}

	case ast.ExprImport:
		d, _ := b.Exprs.Import(id)
		out.Path = b.Lookup(d.Path)

	case ast.ExprFnDef:
		d, _ := b.Exprs.FnDef(id)
		out.Params = buildParams(b, d.Params)
		out.Ret = b.Lookup(d.Ret)
		out.Children = []ASTNodeOutput{buildNode(b, d.Body)}

	case ast.ExprFnExtern:
		d, _ := b.Exprs.FnExtern(id)
		out.Name = b.Lookup(d.Name)
		out.Params = buildParams(b, d.Params)
		out.Ret = b.Lookup(d.Ret)

	case ast.ExprCall:
		d, _ := b.Exprs.Call(id)
		out.Name = b.Lookup(d.Callee)
		for _, arg := range d.Args {
			out.Children = append(out.Children, buildNode(b, arg))
		}

	case ast.ExprReturn:
		d, _ := b.Exprs.Return(id)
		out.Children = []ASTNodeOutput{buildNode(b, d.Value)}

	case ast.ExprStmt:
		d, _ := b.Exprs.Stmt(id)
		out.Children = []ASTNodeOutput{buildNode(b, d.Inner)}
	}

	return out
}

func buildParams(b *ast.Builder, params []ast.FnParam) []ParamOutput {
	if len(params) == 0 {
		return nil
	}
	out := make([]ParamOutput, len(params))
	for i, p := range params {
		out[i] = ParamOutput{
			Name: b.Lookup(p.Name),
			Type: b.Lookup(p.Type),
		}
	}
	return out
}

// FormatASTJSON сериализует модуль в JSON.
func FormatASTJSON(w io.Writer, b *ast.Builder, module ast.ModuleID) error {
	root, err := BuildASTJSON(b, module)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

// FormatASTPretty печатает модуль с отступами и позициями строк/колонок.
func FormatASTPretty(w io.Writer, b *ast.Builder, module ast.ModuleID, fs *source.FileSet) error {
	root, err := BuildASTJSON(b, module)
	if err != nil {
		return err
	}
	printPretty(w, root, fs, 0)
	return nil
}

func printPretty(w io.Writer, node ASTNodeOutput, fs *source.FileSet, depth int) {
	for range depth {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintln(w, describeNode(node, fs))
	for _, child := range node.Children {
		printPretty(w, child, fs, depth+1)
	}
}

// FormatASTTree печатает модуль ветками ├──/└──.
func FormatASTTree(w io.Writer, b *ast.Builder, module ast.ModuleID, fs *source.FileSet) error {
	root, err := BuildASTJSON(b, module)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, describeNode(root, fs))
	printTree(w, root.Children, fs, "")
	return nil
}

func printTree(w io.Writer, children []ASTNodeOutput, fs *source.FileSet, prefix string) {
	for i, child := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, describeNode(child, fs))
		printTree(w, child.Children, fs, childPrefix)
	}
}

func describeNode(node ASTNodeOutput, fs *source.FileSet) string {
	s := node.Kind
	if node.Role != "" {
		s += " <" + node.Role + ">"
	}

	if node.Name != "" {
		s += " " + node.Name
	}
	if node.LitKind != "" {
		s += " " + node.LitKind
	}
	if node.Value != "" {
		s += fmt.Sprintf(" %q", node.Value)
	}
	if node.Op != "" {
		s += " " + node.Op
	}
	if node.Mutable {
		s += " mut"
	}
	if node.Type != "" {
		s += ": " + node.Type
	}
	if node.Path != "" {
		s += fmt.Sprintf(" %q", node.Path)
	}
	if len(node.Params) > 0 {
		s += " ("
		for i, p := range node.Params {
			if i > 0 {
				s += ", "
			}
			s += p.Name
			if p.Type != "" {
				s += ": " + p.Type
			}
		}
		s += ")"
	}
	if node.Ret != "" {
		s += " -> " + node.Ret
	}

	if fs != nil && !(node.Span.Empty() && node.Span.Start == 0) {
		start, end := fs.Resolve(node.Span)
		s += fmt.Sprintf(" @%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return s
}
