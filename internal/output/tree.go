package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// Column at which file descriptions are aligned.
	descriptionColumn = 34
)

// treeNode is a node in the rendered file tree.
type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

// RenderFileTree renders the materialized project as an indented tree with
// per-file descriptions aligned in a fixed column. files maps slash-separated
// relative paths to their descriptions (empty descriptions are fine).
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}

	for path, desc := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root

		for i, part := range parts {
			isLeaf := i == len(parts)-1

			var child *treeNode
			for _, c := range current.children {
				if c.name == part {
					child = c
					break
				}
			}
			if child == nil {
				child = &treeNode{name: part, isDir: !isLeaf}
				current.children = append(current.children, child)
			}
			if isLeaf {
				child.description = desc
			}
			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	styles := GetStyles()
	sb.WriteString(styles.Bold.Render(root.name + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, root, "", styles)
	return sb.String()
}

// sortTree orders children directories-first, then alphabetically.
func sortTree(node *treeNode) {
	sort.Slice(node.children, func(i, j int) bool {
		if node.children[i].isDir != node.children[j].isDir {
			return node.children[i].isDir
		}
		return node.children[i].name < node.children[j].name
	})
	for _, child := range node.children {
		sortTree(child)
	}
}

func renderChildren(sb *strings.Builder, node *treeNode, prefix string, styles Styles) {
	for i, child := range node.children {
		last := i == len(node.children)-1

		connector := treeEdge
		childPrefix := prefix + treeVert
		if last {
			connector = treeLast
			childPrefix = prefix + treeSpace
		}

		name := child.name
		if child.isDir {
			name += "/"
		}

		line := prefix + connector + name
		if child.description != "" {
			padding := descriptionColumn - len(line)
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + styles.Muted.Render(child.description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")

		renderChildren(sb, child, childPrefix, styles)
	}
}
