package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"adaleph/internal/source"
	"adaleph/internal/tree"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// TreeOutput is the serialisable form of a parse result. Exactly one of
// Node and Nodes is populated, depending on the root that was parsed.
type TreeOutput struct {
	File  string `json:"file,omitempty" msgpack:"file,omitempty"`
	Root  string `json:"root" msgpack:"root"`
	Node  any    `json:"node,omitempty" msgpack:"node,omitempty"`
	Nodes []any  `json:"nodes,omitempty" msgpack:"nodes,omitempty"`
}

// BuildTreeOutput converts a single root node or a node sequence into TreeOutput.
func BuildTreeOutput(file, root string, node tree.Node, nodes []tree.Node) TreeOutput {
	out := TreeOutput{File: file, Root: root}
	if node != nil {
		out.Node = tree.ToValue(node)
	} else {
		out.Nodes = tree.ListValue(nodes)
	}
	return out
}

// FormatTreeJSON пишет дерево в JSON с отступами.
func FormatTreeJSON(w io.Writer, out TreeOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatTreeMsgpack пишет дерево в msgpack (бинарно, для кэша и внешних инструментов).
func FormatTreeMsgpack(w io.Writer, out TreeOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return enc.Encode(out)
}

// FormatTreePretty печатает узлы отступами с ветками ├─ └─.
func FormatTreePretty(w io.Writer, nodes []tree.Node, fs *source.FileSet) error {
	var b strings.Builder
	for i, n := range nodes {
		writePretty(&b, buildTreeNode(n, fs), "", i == len(nodes)-1, true)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePretty(b *strings.Builder, node *treeNode, prefix string, last, top bool) {
	childPrefix := prefix
	if top {
		b.WriteString(node.label)
	} else {
		if last {
			b.WriteString(prefix + "└─ ")
			childPrefix = prefix + "   "
		} else {
			b.WriteString(prefix + "├─ ")
			childPrefix = prefix + "│  "
		}
		b.WriteString(node.label)
	}
	b.WriteByte('\n')
	for i, c := range node.children {
		writePretty(b, c, childPrefix, i == len(node.children)-1, false)
	}
}

// FormatTreeDiagram рисует дерево сверху вниз, по одному блоку на корневой узел.
func FormatTreeDiagram(w io.Writer, nodes []tree.Node) error {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, line := range renderTree(buildTreeNode(n, nil)).lines {
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// buildTreeNode строит дерево подписей; с FileSet к подписи добавляется span.
func buildTreeNode(n tree.Node, fs *source.FileSet) *treeNode {
	if n == nil {
		return &treeNode{label: "<nil>"}
	}
	label := nodeLabel(n)
	if fs != nil {
		label = fmt.Sprintf("%s (span: %s)", label, formatSpan(n.Pos(), fs))
	}
	node := &treeNode{label: label}
	for _, c := range tree.Children(n) {
		node.children = append(node.children, buildTreeNode(c, fs))
	}
	return node
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil || int(sp.File) >= fs.Len() {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func nodeLabel(n tree.Node) string {
	kind := n.Kind().String()
	switch v := n.(type) {
	case *tree.Ident:
		return fmt.Sprintf("%s %s", kind, v.Name)
	case *tree.Literal:
		return fmt.Sprintf("%s %s %s", kind, v.LitKind, v.Raw)
	case *tree.Binary:
		return fmt.Sprintf("%s %q", kind, v.Op.String())
	case *tree.Unary:
		return fmt.Sprintf("%s %q", kind, v.Op.String())
	case *tree.SubprogramSpec:
		return fmt.Sprintf("%s %s", kind, v.Form)
	case *tree.Param:
		return withFlags(strings.TrimSpace(kind+" "+v.Mode.String()), flag{"not null", v.NotNull})
	case *tree.UseClause:
		return withFlags(kind, flag{"type", v.Type})
	case *tree.ObjectDecl:
		return withFlags(kind, flag{"aliased", v.Aliased}, flag{"constant", v.Constant})
	case *tree.SubprogramDecl:
		return withFlags(kind, flag{"null", v.IsNull}, flag{"abstract", v.IsAbstract})
	case *tree.ForScheme:
		return withFlags(kind, flag{"reverse", v.Reverse})
	case *tree.RecordTypeDef:
		return withFlags(kind, flag{"abstract", v.Abstract}, flag{"tagged", v.Tagged},
			flag{"limited", v.Limited}, flag{"null record", v.NullRecord})
	case *tree.AccessTypeDef:
		return withFlags(kind, flag{"not null", v.NotNull}, flag{"all", v.All}, flag{"constant", v.Constant})
	case *tree.DerivedTypeDef:
		return withFlags(kind, flag{"abstract", v.Abstract}, flag{"limited", v.Limited}, flag{"with private", v.WithPrivate})
	case *tree.PrivateTypeDef:
		return withFlags(kind, flag{"abstract", v.Abstract}, flag{"tagged", v.Tagged}, flag{"limited", v.Limited})
	case *tree.SubtypeIndication:
		return withFlags(kind, flag{"not null", v.NotNull})
	}
	return kind
}

type flag struct {
	name string
	on   bool
}

func withFlags(label string, flags ...flag) string {
	var set []string
	for _, f := range flags {
		if f.on {
			set = append(set, f.name)
		}
	}
	if len(set) == 0 {
		return label
	}
	return label + " [" + strings.Join(set, ", ") + "]"
}

// renderTree converts a treeNode into a treeBlock containing an ASCII-art representation.
// Widths are measured in terminal columns so identifiers with wide runes stay aligned.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)

	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	childBlocks := make([]treeBlock, len(node.children))
	maxChildHeight := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		maxChildHeight = max(maxChildHeight, len(childBlocks[i].lines))
	}

	const spacing = 3

	positions := make([]int, len(childBlocks))
	totalWidth := 0
	for i, block := range childBlocks {
		positions[i] = totalWidth + block.root
		totalWidth += block.width
		if i != len(childBlocks)-1 {
			totalWidth += spacing
		}
	}

	childrenCenter := (positions[0] + positions[len(positions)-1]) / 2
	rootPos := labelWidth / 2
	shift := childrenCenter - rootPos

	childPrefix := 0
	if shift < 0 {
		childPrefix = -shift
		for i := range positions {
			positions[i] += childPrefix
		}
		totalWidth += childPrefix
		shift = 0
	} else {
		rootPos += shift
	}

	width := max(totalWidth, shift+labelWidth, rootPos+1)
	rootLine := padRight(strings.Repeat(" ", shift)+label, width)

	connector := []rune(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+maxChildHeight)
	lines = append(lines, rootLine, string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childPrefix))
		for i, block := range childBlocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
			if i != len(childBlocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{
		lines: lines,
		width: width,
		root:  rootPos,
	}
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
