//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/jmgilman/go/ghrest"
)

// stderrStatus matches the status gh prints on failure, e.g.
// "gh: Not Found (HTTP 404)".
var stderrStatus = regexp.MustCompile(`\(HTTP (\d{3})\)`)

// Option configures the CLI transport.
type Option func(*Transport) error

// Transport implements ghrest.Transport by running `gh api`.
//
// The request token is passed to gh as GH_TOKEN, or as GH_ENTERPRISE_TOKEN
// when targeting a GitHub Enterprise Server host. When a request carries no
// token gh falls back to its own stored authentication.
type Transport struct {
	wrapper  *exec.CommandWrapper
	hostname string
}

// New creates a transport using the gh CLI found on PATH.
// Unlike running gh interactively, no `gh auth status` check is made:
// requests normally bring their own token.
//
// Example:
//
//	transport, err := cli.New(cli.WithHostname("github.example.com"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Transport, error) {
	executor := exec.New(exec.WithInheritEnv())

	t := &Transport{
		wrapper: exec.NewWrapper(executor, "gh"),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// WithExecutor sets a custom executor for the CLI transport.
// This is primarily useful for testing with a fake executor.
func WithExecutor(executor exec.Executor) Option {
	return func(t *Transport) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		t.wrapper = exec.NewWrapper(executor, "gh")
		return nil
	}
}

// WithHostname targets a GitHub Enterprise host instead of github.com.
func WithHostname(hostname string) Option {
	return func(t *Transport) error {
		if hostname == "" {
			err := errors.New(errors.CodeInvalidInput, "hostname cannot be empty")
			return errors.WithContext(err, "field", "hostname")
		}
		t.hostname = hostname
		return nil
	}
}

// Do implements ghrest.Transport.
func (t *Transport) Do(ctx context.Context, req *ghrest.Request) (*ghrest.Response, error) {
	args := []string{"api", "--method", req.Method, "--include"}
	if t.hostname != "" {
		args = append(args, "--hostname", t.hostname)
	}

	if req.Body != nil {
		input, cleanup, err := writeInput(req.Body)
		if err != nil {
			return nil, errors.WithContext(err, "path", req.Path)
		}
		defer cleanup()
		args = append(args, "--input", input)
	}

	args = append(args, req.URL())

	executor := t.wrapper.Clone().WithContext(ctx)
	if req.Credentials.Token != "" {
		executor = executor.WithEnv(map[string]string{tokenEnv(t.hostname): req.Credentials.Token})
	}

	result, err := executor.Run(args...)

	var stdout, stderr string
	if result != nil {
		stdout, stderr = result.Stdout, result.Stderr
	}

	statusCode, body, ok := parseIncluded(stdout)
	if !ok && err != nil {
		statusCode = statusFromStderr(stderr)
	}

	if err == nil && ok && statusCode < 300 {
		return &ghrest.Response{StatusCode: statusCode, Body: body}, nil
	}

	if statusCode == 0 {
		return nil, wrapCLIError(err, result, req)
	}

	if req.Accepts(statusCode) {
		return &ghrest.Response{StatusCode: statusCode}, nil
	}

	return nil, ghrest.NewRequestError(statusCode, errorMessage(body, stderr), string(body), req)
}

// tokenEnv names the variable gh reads the token from for hostname. gh only
// honours GH_TOKEN for github.com and ghe.com hosts.
func tokenEnv(hostname string) string {
	host := strings.ToLower(hostname)
	if host == "" || host == "github.com" || host == "ghe.com" || strings.HasSuffix(host, ".ghe.com") {
		return "GH_TOKEN"
	}
	return "GH_ENTERPRISE_TOKEN"
}

// parseIncluded splits `gh api --include` output into the status code and
// body. The status line looks like "HTTP/2.0 200 OK" and the headers end at
// the first blank line.
func parseIncluded(out string) (int, []byte, bool) {
	if out == "" {
		return 0, nil, false
	}

	reader := bufio.NewReader(strings.NewReader(out))
	statusLine, err := reader.ReadString('\n')
	if err != nil && statusLine == "" {
		return 0, nil, false
	}

	fields := strings.Fields(statusLine)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], "HTTP/") {
		return 0, nil, false
	}
	statusCode, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, nil, false
	}

	for {
		line, err := reader.ReadString('\n')
		if strings.TrimRight(line, "\r\n") == "" || err != nil {
			break
		}
	}

	var body bytes.Buffer
	_, _ = body.ReadFrom(reader)

	return statusCode, bytes.TrimSpace(body.Bytes()), true
}

func statusFromStderr(stderr string) int {
	m := stderrStatus.FindStringSubmatch(stderr)
	if m == nil {
		return 0
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return code
}

// errorMessage prefers the API's own message over gh's stderr.
func errorMessage(body []byte, stderr string) string {
	var doc struct {
		Message string `json:"message"`
	}
	if len(body) > 0 && json.Unmarshal(body, &doc) == nil && doc.Message != "" {
		return doc.Message
	}
	return strings.TrimSpace(stderr)
}

// writeInput stores the JSON body in a temporary file for --input, since the
// executor does not expose stdin.
func writeInput(body interface{}) (string, func(), error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to encode request body")
	}

	f, err := os.CreateTemp("", "ghrest-body-*.json")
	if err != nil {
		return "", nil, errors.Wrap(err, errors.CodeInternal, "failed to create request body file")
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, errors.Wrap(err, errors.CodeInternal, "failed to write request body file")
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, errors.Wrap(err, errors.CodeInternal, "failed to write request body file")
	}

	return f.Name(), cleanup, nil
}

// wrapCLIError wraps a gh run that produced no HTTP status at all.
func wrapCLIError(err error, result *exec.Result, req *ghrest.Request) error {
	if err == nil {
		err = errors.New(errors.CodeInvalidInput, "unrecognized gh api output")
	}

	wrapped := errors.Wrap(err, errors.CodeExecutionFailed, "gh api failed")
	wrapped = errors.WithContext(wrapped, "path", req.Path)

	if result != nil && result.Stderr != "" {
		wrapped = errors.WithContext(wrapped, "stderr", result.Stderr)
		wrapped = errors.WithContext(wrapped, "exit_code", result.ExitCode)
	}

	return wrapped
}
