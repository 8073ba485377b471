package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"snag/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new hazard catalog",
	Long: `Initialize a catalog by creating a manifest (snag.toml) and a starter
hazard document (hazards.hz). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory
will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "hazard-catalog"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("catalog already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	docPath := filepath.Join(target, "hazards.hz")
	createdDoc := false
	if _, err := os.Stat(docPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(docPath, []byte(starterDocument), os.FileMode(0o600)); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		createdDoc = true
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
		if createdDoc {
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", docPath)
		}
	}
	return nil
}

func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`[catalog]
name = %q
document = "hazards.hz"

[render]
format = "text"
`, name)
}

const starterDocument = `= Deferred execution order
Deferred calls run when the surrounding function returns, in
last-in first-out order.

` + "```go" + `
func main() {
	defer fmt.Println("first deferred, printed last")
	defer fmt.Println("second deferred, printed first")
}
` + "```" + `
----
= Interfaces and pointer receivers
A method with a pointer receiver belongs to *T, not T. A value of
type T does not satisfy an interface that needs that method.

` + "```go" + `
type Greeter interface{ Greet() }

type Dog struct{}

func (d *Dog) Greet() {}

var _ Greeter = &Dog{} // ok
var _ Greeter = Dog{}  // does not compile
` + "```" + `
`
