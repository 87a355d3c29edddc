package gradle

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Connection = (*Connection)(nil)

// supportedModels are the classes the init script knows how to export.
var supportedModels = map[domain.ModelClass]bool{
	domain.IdeaProjectModel:      true,
	domain.GradleProjectModel:    true,
	domain.BuildEnvironmentModel: true,
}

// Connection runs one gradle invocation per requested model.
type Connection struct {
	cfg        domain.ConnectorConfig
	executable string
	workDir    string
	scriptPath string

	seq       atomic.Uint64
	closeOnce sync.Once
	closed    atomic.Bool
	closeErr  error
}

type reply struct {
	Model json.RawMessage `json:"model"`
}

type unknownReply struct {
	UnknownModel string `json:"unknownModel"`
}

// Model runs gradle and decodes the exported model.
// IdeaProject, GradleProject and BuildEnvironment decode to domain types.
func (c *Connection) Model(ctx context.Context, req domain.ModelRequest) (any, error) {
	if c.closed.Load() {
		return nil, zerr.Wrap(domain.ErrConnectionFailed, "connection is closed")
	}
	if !supportedModels[req.Class] {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownModel, "model is not supported"), "model", string(req.Class))
	}

	output := filepath.Join(c.workDir, "model-"+strconv.FormatUint(c.seq.Add(1), 10)+".json")
	cmd := exec.CommandContext(ctx, c.executable, c.args(req, output)...) //nolint:gosec // launcher resolved from configuration
	cmd.Dir = c.cfg.ProjectDir
	cmd.Env = c.env(req)

	lines := newLineWriter(req.OnProgress)
	cmd.Stdout = lines
	cmd.Stderr = lines

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "failed to start gradle"), "launcher", c.executable), "cause", err.Error())
	}

	runErr := cmd.Wait()
	lines.Flush()

	if runErr != nil {
		if ctx.Err() != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "gradle was interrupted"), "cause", ctx.Err().Error())
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err := zerr.With(zerr.Wrap(domain.ErrBuildFailed, "gradle exited with an error"), "exit_code", exitCode)
		if tail := lines.Tail(); tail != "" {
			err = zerr.With(err, "output", tail)
		}
		return nil, zerr.With(err, "project", c.cfg.ProjectDir)
	}

	return decode(req.Class, output)
}

func (c *Connection) args(req domain.ModelRequest, output string) []string {
	args := []string{
		"--console=plain",
		"--project-dir", c.cfg.ProjectDir,
		"--init-script", c.scriptPath,
	}
	if c.cfg.UserHome != "" {
		args = append(args, "--gradle-user-home", c.cfg.UserHome)
	}
	if javaHome := c.javaHome(req); javaHome != "" {
		args = append(args, "-Dorg.gradle.java.home="+javaHome)
	}
	if jvmArgs := c.jvmArgs(req); len(jvmArgs) > 0 {
		args = append(args, "-Dorg.gradle.jvmargs="+strings.Join(jvmArgs, " "))
	}
	return append(args,
		"-D"+modelProperty+"="+string(req.Class),
		"-D"+outputProperty+"="+output,
		// The task only exists on the root project; a plain name would be
		// looked up in the project of --project-dir.
		":"+exportTask,
	)
}

func (c *Connection) env(req domain.ModelRequest) []string {
	env := os.Environ()
	if javaHome := c.javaHome(req); javaHome != "" {
		env = append(env, "JAVA_HOME="+javaHome)
	}
	return env
}

func (c *Connection) javaHome(req domain.ModelRequest) string {
	if req.JavaHome != "" {
		return req.JavaHome
	}
	return c.cfg.JavaHome
}

func (c *Connection) jvmArgs(req domain.ModelRequest) []string {
	if len(req.JVMArgs) > 0 {
		return req.JVMArgs
	}
	return c.cfg.JVMArgs
}

func decode(class domain.ModelClass, output string) (any, error) {
	data, err := os.ReadFile(output) //nolint:gosec // path created by this connection
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "gradle did not export a model"), "model", string(class)), "cause", err.Error())
	}

	var r reply
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "malformed model export"), "model", string(class)), "cause", err.Error())
	}

	var unknown unknownReply
	if json.Unmarshal(r.Model, &unknown) == nil && unknown.UnknownModel != "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownModel, "model is not supported by the build"), "model", string(class))
	}

	var target any
	switch class {
	case domain.IdeaProjectModel:
		target = &domain.IdeaProject{}
	case domain.GradleProjectModel:
		target = &[]domain.GradleProject{}
	case domain.BuildEnvironmentModel:
		target = &domain.BuildEnvironment{}
	default:
		var generic any
		target = &generic
	}

	if err := json.Unmarshal(r.Model, target); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "malformed model export"), "model", string(class)), "cause", err.Error())
	}

	switch v := target.(type) {
	case *domain.IdeaProject:
		return *v, nil
	case *[]domain.GradleProject:
		return *v, nil
	case *domain.BuildEnvironment:
		return *v, nil
	case *any:
		return *v, nil
	}
	return nil, zerr.Wrap(domain.ErrConnectionFailed, "unreachable model type")
}

// Close removes the connection's scratch files. It is safe to call more than once.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		if err := os.RemoveAll(c.workDir); err != nil {
			c.closeErr = zerr.With(zerr.Wrap(err, "failed to clean up connection"), "dir", c.workDir)
		}
	})
	return c.closeErr
}
