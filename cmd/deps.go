package cmd

import (
	"fmt"
	"strings"

	"github.com/zjrosen/pydev/internal/resolve"
	"github.com/zjrosen/pydev/internal/ui/styles"

	"github.com/spf13/cobra"
)

var depsOrder bool

var depsCmd = &cobra.Command{
	Use:   "deps [dir]",
	Short: "Show the local dependency tree",
	Long: `Print the package's dependency tree. Local dependencies (sibling
checkouts) are shown as branches; requirements satisfied from the package
index are listed dimmed. --order prints the flat editable-install order
instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().BoolVar(&depsOrder, "order", false, "print the install order instead of the tree")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	dir := argDir(args)
	tc, err := newToolchain(dir)
	if err != nil {
		return err
	}
	defer tc.close()

	pkg, err := tc.ws.LoadPackage(dir)
	if err != nil {
		return err
	}
	plan, err := resolve.New(tc.ws).Resolve(pkg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if depsOrder {
		fmt.Fprint(out, renderOrder(plan))
		return nil
	}
	fmt.Fprint(out, renderTree(plan.Root))
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Muted.Render("install order:"))
	fmt.Fprint(out, renderOrder(plan))
	return nil
}

// renderTree draws the dependency tree rooted at node with box-drawing
// branches, local packages highlighted and index requirements dimmed.
func renderTree(root *resolve.Node) string {
	var sb strings.Builder
	sb.WriteString(styles.Accent.Render(root.Pkg.Name) + "\n")
	renderChildren(&sb, root, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, node *resolve.Node, prefix string) {
	total := len(node.Local) + len(node.Remote)
	written := 0

	branch := func(last bool) (string, string) {
		if last {
			return prefix + "└── ", prefix + "    "
		}
		return prefix + "├── ", prefix + "│   "
	}

	for _, child := range node.Local {
		written++
		connector, childPrefix := branch(written == total)
		sb.WriteString(connector + styles.Accent.Render(child.Pkg.Name) + "\n")
		renderChildren(sb, child, childPrefix)
	}
	for _, req := range node.Remote {
		written++
		connector, _ := branch(written == total)
		sb.WriteString(connector + styles.Muted.Render(req.String()) + "\n")
	}
}

// renderOrder prints the flat install order, one numbered line per package.
func renderOrder(plan *resolve.Plan) string {
	width := 0
	for _, pkg := range plan.Order {
		if len(pkg.Name) > width {
			width = len(pkg.Name)
		}
	}

	var sb strings.Builder
	for i, pkg := range plan.Order {
		sb.WriteString(fmt.Sprintf("%2d. %s %s\n",
			i+1,
			styles.PadRight(pkg.Name, width),
			styles.Muted.Render(pkg.Dir)))
	}
	return sb.String()
}
