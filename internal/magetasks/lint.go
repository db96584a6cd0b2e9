package magetasks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// golangciDisabled lists the golangci-lint linters turned off for this module.
const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign,forcetypeassert"

// LintAll runs all linters.
func LintAll() error {
	var errs []error

	for _, lint := range []func() error{LintFormat, LintVet, LintIsolation} {
		if err := lint(); err != nil {
			errs = append(errs, err)
		}
	}

	// Optional tools
	for _, lint := range []func() error{LintStaticcheck, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

// packageDirs lists the source directories of the module's packages.
func packageDirs() ([]string, error) {
	listing, err := Output("go", "list", "-f", "{{.Dir}}", "./...")
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	return lines(listing), nil
}

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// LintFormat fails when any file of the module is not gofmt-clean.
func LintFormat() error {
	PrintInfo("Checking formatting...")
	dirs, err := packageDirs()
	if err != nil {
		return err
	}
	listing, err := Output("gofmt", append([]string{"-l"}, dirs...)...)
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if files := lines(listing); len(files) > 0 {
		for _, f := range files {
			PrintError("not formatted: " + f)
		}
		return fmt.Errorf("%d file(s) need gofmt", len(files))
	}
	PrintSuccess("Formatting clean")
	return nil
}

// LintFormatFix rewrites the module's files with gofmt.
func LintFormatFix() error {
	dirs, err := packageDirs()
	if err != nil {
		return err
	}
	return Run("Go Format Fix", "gofmt", append([]string{"-w"}, dirs...)...)
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintIsolation fails when a package registers isolated funcs in its tests
// without calling isolate.Main from TestMain.
func LintIsolation() error {
	PrintInfo("Checking isolated test packages...")
	dirs, err := packageDirs()
	if err != nil {
		return err
	}
	var missing []string
	for _, dir := range dirs {
		ok, err := isolationReady(dir)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, dir)
		}
	}
	if len(missing) > 0 {
		for _, dir := range missing {
			PrintError("isolate.Register without isolate.Main: " + dir)
		}
		return fmt.Errorf("%d package(s) never call isolate.Main", len(missing))
	}
	PrintSuccess("Isolated packages call isolate.Main")
	return nil
}

// isolationReady reports whether the tests in dir either register no
// isolated funcs or also call isolate.Main.
func isolationReady(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	var registers, mains bool
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "_test.go") {
			continue
		}
		src, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		registers = registers || strings.Contains(string(src), "isolate.Register(")
		mains = mains || strings.Contains(string(src), "isolate.Main()")
	}
	return !registers || mains, nil
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	if err := Run("Staticcheck", "staticcheck", "./..."); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning("Staticcheck not found (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
			return err
		}
		return fmt.Errorf("staticcheck failed: %w", err)
	}
	return nil
}

func golangci(label string, extra ...string) error {
	args := slices.Concat([]string{"run"}, extra, []string{golangciDisabled, "--timeout=5m", "./..."})
	if err := Run(label, "golangci-lint", args...); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning("Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
			return err
		}
		return fmt.Errorf("golangci-lint failed: %w", err)
	}
	return nil
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return golangci("Golangci-lint")
}

// LintGolangciFix formats the module and runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	if err := LintFormatFix(); err != nil {
		return err
	}
	return golangci("Golangci-lint Fix", "--fix")
}
