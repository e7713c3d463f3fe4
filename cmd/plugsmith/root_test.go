// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plugsmith/plugsmith/internal/config"
	"github.com/plugsmith/plugsmith/internal/issue"
	"github.com/plugsmith/plugsmith/internal/state"
	"github.com/plugsmith/plugsmith/pkg/ident"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

type stubConfigProvider struct {
	cfg *config.Config
}

func (p stubConfigProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	cfg := *p.cfg
	return &cfg, nil
}

type testEnv struct {
	app      *App
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	stateDir string
	outDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.DefaultConfig()
	env := &testEnv{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		stateDir: t.TempDir(),
		outDir:   t.TempDir(),
	}
	cfg.StateDir = config.DirPath(env.stateDir)
	cfg.OutputDir = config.DirPath(env.outDir)
	cfg.Log.Level = config.LogLevelError

	env.app = NewApp(Dependencies{
		Config: stubConfigProvider{cfg: cfg},
		IDs:    ident.NewSequence("id"),
		Stdout: env.stdout,
		Stderr: env.stderr,
	})
	return env
}

// run executes one CLI invocation with fresh output buffers.
func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()

	e.stdout.Reset()
	e.stderr.Reset()
	root := NewRootCommand(e.app)
	root.SetArgs(args)
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	return root.ExecuteContext(t.Context())
}

func (e *testEnv) mustRun(t *testing.T, args ...string) {
	t.Helper()

	if err := e.run(t, args...); err != nil {
		t.Fatalf("plugsmith %s: %v\nstderr: %s", strings.Join(args, " "), err, e.stderr.String())
	}
}

// saved decodes the persisted state document.
func (e *testEnv) saved(t *testing.T) plugin.Model {
	t.Helper()

	data, err := state.NewFileStorage(e.stateDir).Load(t.Context())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m, err := state.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return m
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v is not an *ExitError", err)
	}
	return exitErr.Code
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-03-01T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-03-01T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		// Test binaries report Main.Version == "(devel)".
		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestExitError(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	tests := []struct {
		name    string
		err     *ExitError
		wantMsg string
		wantIs  error
	}{
		{"wraps inner error", &ExitError{Code: ExitUsage, Err: inner}, "boom", inner},
		{"code only", &ExitError{Code: ExitFailure}, "exit status 1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if tt.wantIs != nil && !errors.Is(tt.err, tt.wantIs) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantIs)
			}
			if tt.wantIs == nil && tt.err.Unwrap() != nil {
				t.Errorf("Unwrap() = %v, want nil", tt.err.Unwrap())
			}
		})
	}
}

func TestModuleAdd_PersistsAcrossInvocations(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "module", "add")
	if !strings.Contains(env.stdout.String(), "NewModule2") {
		t.Errorf("stdout = %q, want the new module selected", env.stdout.String())
	}

	m := env.saved(t)
	if len(m.Modules) != 2 {
		t.Fatalf("saved %d modules, want 2", len(m.Modules))
	}
	if m.SelectedModuleID == nil || *m.SelectedModuleID != m.Modules[1].ID {
		t.Errorf("SelectedModuleID = %v, want %q", m.SelectedModuleID, m.Modules[1].ID)
	}

	env.mustRun(t, "module", "list")
	out := env.stdout.String()
	for _, mod := range m.Modules {
		if !strings.Contains(out, mod.ID) {
			t.Errorf("module list missing %q:\n%s", mod.ID, out)
		}
	}
}

func TestModuleSetAndSelect(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "module", "add")
	m := env.saved(t)
	first, second := m.Modules[0].ID, m.Modules[1].ID

	env.mustRun(t, "module", "set", second, "name=Runtime Bits", "type=runtime", "dependencies=Core, Engine")
	m = env.saved(t)
	got := m.Modules[1]
	if got.Name != "Runtime Bits" {
		t.Errorf("Name = %q, want %q", got.Name, "Runtime Bits")
	}
	if len(got.Dependencies) != 2 || got.Dependencies[1] != "Engine" {
		t.Errorf("Dependencies = %v, want [Core Engine]", got.Dependencies)
	}

	env.mustRun(t, "module", "select", first)
	m = env.saved(t)
	if plugin.Deref(m.SelectedModuleID) != first {
		t.Errorf("SelectedModuleID = %v, want %q", m.SelectedModuleID, first)
	}

	env.mustRun(t, "module", "select", noneArg)
	m = env.saved(t)
	if m.SelectedModuleID != nil || m.SelectedNodeID != nil {
		t.Errorf("selection = (%v, %v), want both cleared", m.SelectedModuleID, m.SelectedNodeID)
	}
}

func TestMutate_NothingChanged(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if err := env.run(t, "module", "remove", "does-not-exist"); err != nil {
		t.Fatalf("remove unknown module: %v", err)
	}
	if !strings.Contains(env.stderr.String(), "Nothing changed.") {
		t.Errorf("stderr = %q, want a no-op notice", env.stderr.String())
	}
	first := env.saved(t)
	if len(first.Modules) != 1 {
		t.Fatalf("saved %d modules, want the default model", len(first.Modules))
	}

	if err := env.run(t, "module", "remove", "does-not-exist"); err != nil {
		t.Fatalf("remove unknown module again: %v", err)
	}
	if got := env.saved(t); got.Modules[0].ID != first.Modules[0].ID {
		t.Errorf("module id changed from %q to %q across no-ops", first.Modules[0].ID, got.Modules[0].ID)
	}
}

func TestMutate_SameValueIsAChange(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "module", "list")
	mod := env.saved(t).Modules[0]

	env.mustRun(t, "module", "set", mod.ID, "name="+mod.Name)
	if strings.Contains(env.stderr.String(), "Nothing changed.") {
		t.Errorf("stderr = %q, want no no-op notice", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), mod.ID) {
		t.Errorf("stdout = %q, want the selection", env.stdout.String())
	}
}

func TestFreshState_IDsResolveInTheNextInvocation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "module", "list")
	id := env.saved(t).Modules[0].ID
	if !strings.Contains(env.stdout.String(), id) {
		t.Fatalf("module list = %q, want the saved id %q", env.stdout.String(), id)
	}

	env.mustRun(t, "node", "add", id)
	if strings.Contains(env.stderr.String(), "Nothing changed.") {
		t.Errorf("node add %s was a no-op: %s", id, env.stderr.String())
	}
	m := env.saved(t)
	if m.Modules[0].ID != id || len(m.Modules[0].Nodes) != 2 {
		t.Errorf("module = %s with %d nodes, want %s with 2", m.Modules[0].ID, len(m.Modules[0].Nodes), id)
	}
}

func TestCorruptState_IsReplacedOnce(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if err := os.WriteFile(filepath.Join(env.stateDir, state.Filename), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var ids []string
	for range 2 {
		env.mustRun(t, "show", "--json")
		m, err := state.Decode(env.stdout.Bytes())
		if err != nil {
			t.Fatalf("show --json is not a state document: %v", err)
		}
		ids = append(ids, m.Modules[0].ID)
	}
	if ids[0] != ids[1] {
		t.Errorf("module id changed from %q to %q", ids[0], ids[1])
	}
	if got := env.saved(t).Modules[0].ID; got != ids[0] {
		t.Errorf("saved module id = %q, want %q", got, ids[0])
	}
}

func TestError_RendersCatalogEntryWithColorScheme(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	cfg := config.DefaultConfig()
	cfg.StateDir = config.DirPath(env.stateDir)
	cfg.Log.Level = config.LogLevelError
	cfg.UI.ColorScheme = config.ColorSchemeLight
	env.app.Config = stubConfigProvider{cfg: cfg}

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := env.run(t, "--verbose", "export", "--out", blocker)
	if code := exitCode(t, err); code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}

	want, rerr := issue.Get(issue.ExportFailedId).Render(string(config.ColorSchemeLight))
	if rerr != nil {
		t.Fatalf("Render() error = %v", rerr)
	}
	if !strings.Contains(env.stderr.String(), want) {
		t.Errorf("stderr missing the catalog entry rendered with the light style:\n%s", env.stderr.String())
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown module key", []string{"module", "set", "m", "colour=blue"}},
		{"malformed assignment", []string{"module", "set", "m", "name"}},
		{"duplicate key", []string{"module", "set", "m", "name=a", "name=b"}},
		{"unknown meta field", []string{"meta", "set", "nickname", "x"}},
		{"invalid category", []string{"meta", "set", "category", "Weather"}},
		{"invalid placement", []string{"param", "add", "m", "n", "sideways"}},
		{"unknown artifact kind", []string{"export", "--stdout", "--only", "readme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			err := env.run(t, tt.args...)
			if err == nil {
				t.Fatalf("plugsmith %v succeeded, want usage error", tt.args)
			}
			if code := exitCode(t, err); code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(env.stderr.String(), "Error:") {
				t.Errorf("stderr = %q, want rendered error", env.stderr.String())
			}
		})
	}
}

func TestMetaSetAndShow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "meta", "set", "identifier", "LevelTools")
	env.mustRun(t, "meta", "set", "category", "Gameplay")

	m := env.saved(t)
	if m.Meta.Identifier != "LevelTools" {
		t.Errorf("Identifier = %q, want LevelTools", m.Meta.Identifier)
	}
	if m.Meta.Category != plugin.CategoryGameplay {
		t.Errorf("Category = %q, want Gameplay", m.Meta.Category)
	}

	env.mustRun(t, "meta", "show")
	if !strings.Contains(env.stdout.String(), "LevelTools") {
		t.Errorf("meta show = %q, want identifier", env.stdout.String())
	}
}

func TestNodeAndParamFlow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "module", "add")
	mod := env.saved(t).Modules[1]

	env.mustRun(t, "node", "add", mod.ID)
	m := env.saved(t)
	mod = m.Modules[1]
	if len(mod.Nodes) != 2 {
		t.Fatalf("module has %d nodes, want 2", len(mod.Nodes))
	}
	node := mod.Nodes[1]
	if plugin.Deref(m.SelectedNodeID) != node.ID {
		t.Errorf("SelectedNodeID = %v, want %q", m.SelectedNodeID, node.ID)
	}

	env.mustRun(t, "param", "add", mod.ID, node.ID, "outputs")
	node = env.saved(t).Modules[1].Nodes[1]
	if len(node.Outputs) != 1 {
		t.Fatalf("node has %d outputs, want 1", len(node.Outputs))
	}

	env.mustRun(t, "param", "set", mod.ID, node.ID, "outputs", node.Outputs[0].ID, "name=Total", "type=int")
	node = env.saved(t).Modules[1].Nodes[1]
	if node.Outputs[0].Name != "Total" || node.Outputs[0].Kind != plugin.KindInt {
		t.Errorf("output = %+v, want Total int", node.Outputs[0])
	}

	env.mustRun(t, "node", "remove", mod.ID, node.ID)
	if n := len(env.saved(t).Modules[1].Nodes); n != 1 {
		t.Errorf("module has %d nodes after remove, want 1", n)
	}
}

func TestExport_ToDirectory(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "meta", "set", "identifier", "LevelTools")
	env.mustRun(t, "export")

	for _, name := range []string{"LevelTools.uplugin", "LevelTools.json", "LevelTools.h"} {
		data, err := os.ReadFile(filepath.Join(env.outDir, name))
		if err != nil {
			t.Errorf("ReadFile(%s) error = %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
		if !strings.Contains(env.stderr.String(), name) {
			t.Errorf("stderr = %q, want a line for %s", env.stderr.String(), name)
		}
	}
}

func TestExport_OutFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	out := filepath.Join(t.TempDir(), "build")
	env.mustRun(t, "export", "--out", out, "--only", "descriptor")

	if _, err := os.Stat(filepath.Join(out, "MyPlugin.uplugin")); err != nil {
		t.Errorf("descriptor not written to --out: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "MyPlugin.h")); !os.IsNotExist(err) {
		t.Errorf("scaffold written despite --only descriptor (stat err = %v)", err)
	}
}

func TestExport_Stdout(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "export", "--stdout", "--only", "scaffold")

	out := env.stdout.String()
	if !strings.Contains(out, "#pragma once") {
		t.Errorf("stdout missing scaffold:\n%s", out)
	}
	if strings.Contains(out, "\"FileVersion\"") {
		t.Errorf("stdout contains the descriptor despite --only scaffold")
	}
	entries, err := os.ReadDir(env.outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("--stdout wrote %d files", len(entries))
	}
}

func TestShow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "module", "add")
	want := env.saved(t)

	env.mustRun(t, "show")
	out := env.stdout.String()
	for _, s := range []string{want.Meta.Title, want.Modules[0].Name, want.Modules[1].ID, "Scale Value"} {
		if !strings.Contains(out, s) {
			t.Errorf("show output missing %q:\n%s", s, out)
		}
	}

	env.mustRun(t, "show", "--json")
	got, err := state.Decode(env.stdout.Bytes())
	if err != nil {
		t.Fatalf("show --json is not a state document: %v", err)
	}
	if len(got.Modules) != len(want.Modules) || got.Modules[1].ID != want.Modules[1].ID {
		t.Errorf("show --json modules = %+v, want %+v", got.Modules, want.Modules)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustRun(t, "module", "add")
	env.mustRun(t, "reset")

	m := env.saved(t)
	if len(m.Modules) != 1 {
		t.Errorf("reset left %d modules, want 1", len(m.Modules))
	}
}

func TestConfigDump_FromFile(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.cue")
	content := `scaffold: control_token: "Cmd"
log: level: "error"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{Stdout: &stdout, Stderr: &stderr, IDs: ident.NewSequence("id")})
	root := NewRootCommand(app)
	root.SetArgs([]string{"config", "dump", "--config", cfgPath})
	root.SetErr(&stderr)
	if err := root.ExecuteContext(t.Context()); err != nil {
		t.Fatalf("config dump: %v\nstderr: %s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), `control_token: "Cmd"`) {
		t.Errorf("config dump = %q, want control_token from file", stdout.String())
	}
}

func TestConfigShow_MissingFile(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{Stdout: &stdout, Stderr: &stderr, IDs: ident.NewSequence("id")})
	root := NewRootCommand(app)
	root.SetArgs([]string{"config", "show", "--config", filepath.Join(t.TempDir(), "missing.cue")})
	root.SetErr(&stderr)

	err := root.ExecuteContext(t.Context())
	if err == nil {
		t.Fatal("config show with a missing file succeeded")
	}
	if code := exitCode(t, err); code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}
}

func TestParseAssignments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    map[string]string
		wantErr bool
	}{
		{"single", []string{"name=Foo"}, map[string]string{"name": "Foo"}, false},
		{"value with equals", []string{"body=a = b"}, map[string]string{"body": "a = b"}, false},
		{"empty value", []string{"description="}, map[string]string{"description": ""}, false},
		{"trims key", []string{" name =x"}, map[string]string{"name": "x"}, false},
		{"no args", nil, nil, true},
		{"missing equals", []string{"name"}, nil, true},
		{"empty key", []string{"=x"}, nil, true},
		{"duplicate", []string{"name=a", "name=b"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseAssignments(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAssignments(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseAssignments(%q) = %v, want %v", tt.args, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("field %q = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestSelectionArg(t *testing.T) {
	t.Parallel()

	if got := selectionArg(noneArg); got != nil {
		t.Errorf("selectionArg(%q) = %v, want nil", noneArg, *got)
	}
	if got := selectionArg("id-3"); got == nil || *got != "id-3" {
		t.Errorf("selectionArg(id-3) = %v, want id-3", got)
	}
}

func TestParseKinds(t *testing.T) {
	t.Parallel()

	all, err := parseKinds(nil)
	if err != nil || len(all) != 3 {
		t.Errorf("parseKinds(nil) = %v, %v; want all kinds", all, err)
	}
	if _, err := parseKinds([]string{"scaffold", "manual"}); err == nil {
		t.Error("parseKinds accepted an unknown kind")
	}
}

type failingStorage struct{}

func (failingStorage) Load(context.Context) ([]byte, error) { return nil, state.ErrNotFound }

func (failingStorage) Save(context.Context, []byte) error { return errors.New("disk full") }

func TestMutate_SaveFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.app.Storage = func(string) state.Storage { return failingStorage{} }

	if err := env.run(t, "--verbose", "module", "add"); err != nil {
		t.Fatalf("module add with failing storage: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "NewModule2") {
		t.Errorf("stdout = %q, want the selection after the mutation", env.stdout.String())
	}
	if !strings.Contains(env.stderr.String(), "disk full") {
		t.Errorf("stderr = %q, want the save failure logged", env.stderr.String())
	}
}
