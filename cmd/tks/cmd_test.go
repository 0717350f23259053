// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tks/tks/internal/config"
	"github.com/tks/tks/internal/issue"
	"github.com/tks/tks/internal/kernelinfo"
	"github.com/tks/tks/internal/testutil"
	"github.com/tks/tks/pkg/kversion"
	"github.com/tks/tks/pkg/types"
)

type (
	stubConfig struct {
		res *config.LoadResult
		err error
	}

	stubKernel struct {
		root    string
		info    *kernelinfo.Info
		err     error
		gotOpts kernelinfo.Options
	}

	runResult struct {
		stdout string
		stderr string
		err    error
	}
)

func (s *stubConfig) Load(context.Context, config.LoadOptions) (*config.LoadResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.res == nil {
		return &config.LoadResult{Config: config.DefaultConfig()}, nil
	}
	return s.res, nil
}

func (s *stubKernel) FindRoot(_ context.Context, start string) (string, error) {
	s.gotOpts.StartDir = start
	return s.root, s.err
}

func (s *stubKernel) Load(_ context.Context, opts kernelinfo.Options) (*kernelinfo.Info, error) {
	s.gotOpts = opts
	return s.info, s.err
}

// run executes the command tree without fang and restores the slog default.
func run(t *testing.T, deps Dependencies, args ...string) runResult {
	t.Helper()

	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var stdout, stderr bytes.Buffer
	deps.Stdout, deps.Stderr = &stdout, &stderr
	if deps.Config == nil {
		deps.Config = &stubConfig{}
	}

	rootCmd := NewRootCommand(NewApp(deps))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.ExecuteContext(context.Background())
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func sampleInfo() *kernelinfo.Info {
	v := kversion.Version{Major: 6, Minor: 1, Patch: 0, Extra: "-rc1", HasExtra: true, Name: "Hurr durr I'ma ninja sloth"}
	return &kernelinfo.Info{
		Root:     "/src/linux",
		Makefile: "/src/linux/Makefile",
		Version:  v,
		Display:  v.String(),
		Release:  v.KernelRelease(),
	}
}

func TestRoot_DefaultsToInfo(t *testing.T) {
	kernel := &stubKernel{info: sampleInfo()}
	res := run(t, Dependencies{Kernel: kernel})
	if res.err != nil {
		t.Fatalf("tks error = %v\n%s", res.err, res.stderr)
	}
	for _, want := range []string{"/src/linux", "6.1-rc1", "6.1.0-rc1", "Hurr durr I'ma ninja sloth"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
	if kernel.gotOpts.CompareHost {
		t.Error("CompareHost should default to false")
	}
}

func TestInfo_Flags(t *testing.T) {
	kernel := &stubKernel{info: sampleInfo()}
	res := run(t, Dependencies{Kernel: kernel}, "info", "--dir", "/src/linux/fs", "--host", "-o", "json")
	if res.err != nil {
		t.Fatalf("tks info error = %v", res.err)
	}
	if kernel.gotOpts.StartDir != "/src/linux/fs" || !kernel.gotOpts.CompareHost {
		t.Errorf("Load() options = %+v", kernel.gotOpts)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if got["display"] != "6.1-rc1" || got["root"] != "/src/linux" {
		t.Errorf("json = %v", got)
	}
}

func TestInfo_FormatFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Format = config.OutputFormatYAML
	cfg.KernelDir = "/usr/src/linux"
	kernel := &stubKernel{info: sampleInfo()}

	res := run(t, Dependencies{Kernel: kernel, Config: &stubConfig{res: &config.LoadResult{Config: cfg}}}, "info")
	if res.err != nil {
		t.Fatalf("tks info error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "display: 6.1-rc1") {
		t.Errorf("expected YAML output:\n%s", res.stdout)
	}
	if kernel.gotOpts.StartDir != "/usr/src/linux" {
		t.Errorf("StartDir = %q, want kernel_dir from config", kernel.gotOpts.StartDir)
	}

	// The flag wins over the configuration.
	res = run(t, Dependencies{Kernel: kernel, Config: &stubConfig{res: &config.LoadResult{Config: cfg}}}, "info", "-o", "toml", "-C", "/elsewhere")
	if res.err != nil {
		t.Fatalf("tks info error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "display = '6.1-rc1'") {
		t.Errorf("expected TOML output:\n%s", res.stdout)
	}
	if kernel.gotOpts.StartDir != "/elsewhere" {
		t.Errorf("StartDir = %q, want --dir value", kernel.gotOpts.StartDir)
	}
}

func TestInfo_InvalidFormat(t *testing.T) {
	res := run(t, Dependencies{Kernel: &stubKernel{info: sampleInfo()}}, "info", "-o", "xml")
	var ae *issue.ActionableError
	if !errors.As(res.err, &ae) {
		t.Fatalf("error = %v, want *issue.ActionableError", res.err)
	}
	if res.stdout != "" {
		t.Errorf("stdout should be empty, got %q", res.stdout)
	}
}

func TestInfo_FailuresMapToExitCodes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  types.ExitCode
		wantIssue issue.Id
	}{
		{"not found", kernelinfo.ErrTreeNotFound, types.ExitNotFound, issue.KernelTreeNotFoundId},
		{"parse", &kversion.ParseError{Field: kversion.FieldVersion, Line: 2, Err: kversion.ErrInvalidNumber}, types.ExitParse, issue.VersionParseFailedId},
		{"host", &kernelinfo.HostError{Err: errors.New("uname failed")}, types.ExitFailure, issue.HostKernelUnavailableId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, Dependencies{Kernel: &stubKernel{err: tt.err}}, "info")

			var exitErr *ExitError
			if !errors.As(res.err, &exitErr) {
				t.Fatalf("error = %v, want *ExitError", res.err)
			}
			if exitErr.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", exitErr.Code, tt.wantCode)
			}
			var svcErr *ServiceError
			if !errors.As(res.err, &svcErr) || svcErr.IssueID != tt.wantIssue {
				t.Errorf("ServiceError = %+v, want issue %d", svcErr, tt.wantIssue)
			}
			if !errors.Is(res.err, tt.err) {
				t.Errorf("error chain should contain %v", tt.err)
			}
			if !strings.Contains(res.stderr, "failed to") {
				t.Errorf("stderr should carry the actionable message:\n%s", res.stderr)
			}
			if res.stdout != "" {
				t.Errorf("no partial output expected, got %q", res.stdout)
			}
		})
	}
}

func TestInfo_VerboseShowsCatalog(t *testing.T) {
	res := run(t, Dependencies{Kernel: &stubKernel{err: kernelinfo.ErrTreeNotFound}}, "info", "-v")
	if res.err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(res.stderr, "No kernel source tree found") {
		t.Errorf("verbose stderr should include the catalog entry:\n%s", res.stderr)
	}
	if !strings.Contains(res.stderr, "Error chain:") {
		t.Errorf("verbose stderr should include the error chain:\n%s", res.stderr)
	}
}

func TestInfo_RealTree(t *testing.T) {
	root := testutil.KernelTree(t, filepath.Join(t.TempDir(), "linux"), 6, 9, 2, "", "Baby Opossum Posse")
	sub := filepath.Join(root, "arch", "x86")
	testutil.MustMkdirAll(t, sub, 0o755)

	res := run(t, Dependencies{}, "info", "-C", sub, "-o", "json")
	if res.err != nil {
		t.Fatalf("tks info error = %v\n%s", res.err, res.stderr)
	}
	var got kernelinfo.Info
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if got.Root != root || got.Display != "6.9.2" || got.Version.Name != "Baby Opossum Posse" {
		t.Errorf("info = %+v", got)
	}
}

func TestInfo_RealTreeMalformed(t *testing.T) {
	dir := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(dir, ".git"), 0o755)
	testutil.MustWriteFile(t, filepath.Join(dir, "Makefile"), "VERSION six\n")

	res := run(t, Dependencies{}, "info", "-C", dir)
	var exitErr *ExitError
	if !errors.As(res.err, &exitErr) || exitErr.Code != types.ExitParse {
		t.Fatalf("error = %v, want ExitParse", res.err)
	}
}

func TestRootPath(t *testing.T) {
	kernel := &stubKernel{root: "/src/linux"}
	res := run(t, Dependencies{Kernel: kernel}, "root", "-C", "/src/linux/mm")
	if res.err != nil {
		t.Fatalf("tks root error = %v", res.err)
	}
	if res.stdout != "/src/linux\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if kernel.gotOpts.StartDir != "/src/linux/mm" {
		t.Errorf("FindRoot start = %q", kernel.gotOpts.StartDir)
	}
}

func TestRootPath_NotFound(t *testing.T) {
	res := run(t, Dependencies{Kernel: &stubKernel{err: kernelinfo.ErrTreeNotFound}}, "root")
	var exitErr *ExitError
	if !errors.As(res.err, &exitErr) || exitErr.Code != types.ExitNotFound {
		t.Fatalf("error = %v, want ExitNotFound", res.err)
	}
}

func TestConfigLoadFailureFallsBackToDefaults(t *testing.T) {
	cfgErr := issue.NewErrorContext().WithOperation("load configuration").Wrap(errors.New("bad file")).BuildError()
	kernel := &stubKernel{info: sampleInfo()}

	res := run(t, Dependencies{Kernel: kernel, Config: &stubConfig{err: cfgErr}}, "info")
	if res.err != nil {
		t.Fatalf("tks info error = %v", res.err)
	}
	if !strings.Contains(res.stderr, "Warning:") || !strings.Contains(res.stderr, "bad file") {
		t.Errorf("stderr should warn about the config:\n%s", res.stderr)
	}
	if !strings.Contains(res.stdout, "6.1-rc1") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestInvalidLogFormat(t *testing.T) {
	res := run(t, Dependencies{Kernel: &stubKernel{info: sampleInfo()}}, "--log-format", "xml", "info")
	if res.err == nil {
		t.Fatal("expected error for invalid --log-format")
	}
}

func TestUnknownArgument(t *testing.T) {
	res := run(t, Dependencies{Kernel: &stubKernel{info: sampleInfo()}}, "list")
	if res.err == nil {
		t.Fatal("expected error: list is not a tks command")
	}
}

func TestConfigShowAndDump(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Format = config.OutputFormatJSON
	provider := &stubConfig{res: &config.LoadResult{Config: cfg, Path: "/etc/tks.cue"}}

	res := run(t, Dependencies{Config: provider}, "config", "show")
	if res.err != nil {
		t.Fatalf("config show error = %v", res.err)
	}
	for _, want := range []string{"/etc/tks.cue", "format: json", "color_scheme: auto", "(working directory)"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config show missing %q:\n%s", want, res.stdout)
		}
	}

	res = run(t, Dependencies{Config: provider}, "config", "dump")
	if res.err != nil {
		t.Fatalf("config dump error = %v", res.err)
	}
	if res.stdout != config.GenerateCUE(cfg) {
		t.Errorf("config dump = %q", res.stdout)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tks")
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)

	res := run(t, Dependencies{}, "config", "path")
	if res.err != nil {
		t.Fatalf("config path error = %v", res.err)
	}
	if !strings.Contains(res.stdout, filepath.Join(dir, "config.cue")) {
		t.Errorf("config path = %q", res.stdout)
	}

	res = run(t, Dependencies{}, "config", "init")
	if res.err != nil || !strings.Contains(res.stdout, "Created default configuration") {
		t.Fatalf("config init = %q, %v", res.stdout, res.err)
	}
	res = run(t, Dependencies{}, "config", "init")
	if res.err != nil || !strings.Contains(res.stdout, "already exists") {
		t.Errorf("second config init = %q, %v", res.stdout, res.err)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			res := run(t, Dependencies{}, "completion", shell)
			if res.err != nil {
				t.Fatalf("completion %s error = %v", shell, res.err)
			}
			if !strings.Contains(res.stdout, "tks") {
				t.Errorf("completion %s output does not mention tks", shell)
			}
		})
	}

	if res := run(t, Dependencies{}, "completion", "tcsh"); res.err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	Version, Commit, BuildDate = "v1.2.3", "abc1234", "2026-01-15T10:00:00Z"
	if got, want := getVersionString(), "v1.2.3 (commit: abc1234, built: 2026-01-15T10:00:00Z)"; got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}

	// Test binaries report Main.Version == "(devel)".
	Version = "dev"
	if got, want := getVersionString(), "dev (built from source)"; got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}
}

func TestInfoView_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v           kversion.Version
		wantVersion string
		wantRelease string
	}{
		// Release Makefiles carry an empty EXTRAVERSION.
		{"release tree", kversion.Version{Major: 6, Minor: 1, HasExtra: true, Name: "Hurr durr I'ma ninja sloth"}, "6.1", "6.1.0"},
		{"rc tree", kversion.Version{Major: 6, Minor: 8, Extra: "-rc3", HasExtra: true}, "6.8-rc3", "6.8.0-rc3"},
		{"no extraversion line", kversion.Version{Major: 5, Minor: 15, Patch: 42}, "5.15.42", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text := infoView{&kernelinfo.Info{
				Root:    "/src/linux",
				Version: tt.v,
				Display: tt.v.String(),
				Release: tt.v.KernelRelease(),
			}}.Text()

			fields := textFields(text)
			if got := fields["Version"]; got != tt.wantVersion {
				t.Errorf("Version = %q, want %q\n%s", got, tt.wantVersion, text)
			}
			if got := fields["Release"]; got != tt.wantRelease {
				t.Errorf("Release = %q, want %q\n%s", got, tt.wantRelease, text)
			}
		})
	}
}

// textFields maps each label of a text view to its value.
func textFields(text string) map[string]string {
	fields := make(map[string]string)
	for line := range strings.Lines(text) {
		label, value, ok := strings.Cut(strings.TrimSpace(line), " ")
		if ok {
			fields[label] = strings.TrimSpace(value)
		}
	}
	return fields
}
