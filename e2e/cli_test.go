package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/playtime/internal/api"
	"github.com/mcoot/playtime/internal/dependencies/recaptcha"
	"github.com/mcoot/playtime/internal/dependencies/riot"
	"github.com/mcoot/playtime/internal/factory"
	"github.com/mcoot/playtime/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "playtime-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/playtime")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

// run executes the CLI with JSON output, returning stdout and stderr separately
func (r *cliRunner) run(args ...string) (string, string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
		"--no-color",
	}, args...)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "PLAYTIME_CAPTCHA=")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server backed by fake upstreams
type testServer struct {
	addr      string
	recaptcha *testutil.FakeRecaptcha
	riot      *testutil.FakeRiot
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().(*net.TCPAddr)
	require.NoError(t, listener.Close())

	fakeRecaptcha := testutil.NewFakeRecaptcha(t)
	fakeRiot := testutil.NewFakeRiot(t)

	rc := recaptcha.DefaultConfig()
	rc.Secret = "e2e-secret"
	rc.VerifyURL = fakeRecaptcha.URL()
	rt := riot.DefaultConfig()
	rt.APIKey = "RGAPI-e2e"
	rt.BaseURL = fakeRiot.BaseURL()

	// Create application
	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{Recaptcha: rc, Riot: rt, Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		PlaytimeService: app.PlaytimeService,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = "127.0.0.1"
	serverConfig.Port = addr.Port
	server := api.NewServer(router, serverConfig, logger)

	// Start server
	go func() {
		if err := server.Start(); err != nil {
			t.Logf("server error: %v", err)
		}
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	// Wait for server to be ready
	serverURL := "http://" + server.Addr()
	waitForServer(t, serverURL+"/api/health")

	return &testServer{
		addr:      serverURL,
		recaptcha: fakeRecaptcha,
		riot:      fakeRiot,
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type healthResponse struct {
	Status string `json:"status"`
}

type playtimeResponse struct {
	Time float64 `json:"time"`
}

type regionsResponse struct {
	Regions []struct {
		Name     string `json:"name"`
		Platform string `json:"platform"`
	} `json:"regions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	cli := newCLIRunner(t, ts.addr)

	stdout, stderr, err := cli.run("health")
	require.NoError(t, err, "stderr: %s", stderr)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_Regions(t *testing.T) {
	ts := startTestServer(t)
	cli := newCLIRunner(t, ts.addr)

	stdout, stderr, err := cli.run("regions")
	require.NoError(t, err, "stderr: %s", stderr)

	var resp regionsResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.NotEmpty(t, resp.Regions)
	assert.Equal(t, "EUW", resp.Regions[0].Name)
	assert.Equal(t, "euw1", resp.Regions[0].Platform)
}

func TestCLI_LookupFlow(t *testing.T) {
	ts := startTestServer(t)
	ts.riot.AddSummoner("na1", "Doublelift", "s-dl", 60000, 30000, 30000)
	ts.recaptcha.Reject("stale-token")
	cli := newCLIRunner(t, ts.addr)

	// Successful lookup
	stdout, stderr, err := cli.run("lookup", "na1", "Doublelift", "--captcha", "fresh-token")
	require.NoError(t, err, "stderr: %s", stderr)
	var resp playtimeResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 100.0, resp.Time)

	// Missing token never reaches the verifier
	_, stderr, err = cli.run("lookup", "na1", "Doublelift")
	require.Error(t, err)
	assertErrorCode(t, stderr, "RECAPTCHA/INVALID")

	// Rejected token
	_, stderr, err = cli.run("lookup", "na1", "Doublelift", "--captcha", "stale-token")
	require.Error(t, err)
	assertErrorCode(t, stderr, "RECAPTCHA/INVALID")

	// Unknown summoner
	_, stderr, err = cli.run("lookup", "na1", "Nobody", "--captcha", "fresh-token")
	require.Error(t, err)
	assertErrorCode(t, stderr, "RIOT/NOT_FOUND")

	// Statistics service down
	ts.riot.SetMasteryStatus(http.StatusServiceUnavailable)
	_, stderr, err = cli.run("lookup", "na1", "Doublelift", "--captcha", "fresh-token")
	require.Error(t, err)
	assertErrorCode(t, stderr, "RIOT/SERVER_ERROR")

	assert.Equal(t, []string{"fresh-token", "stale-token", "fresh-token", "fresh-token"}, ts.recaptcha.Tokens())
}

func TestCLI_LookupTextOutput(t *testing.T) {
	ts := startTestServer(t)
	ts.riot.AddSummoner("kr", "Hide on bush", "s-faker", 30000000)
	cli := newCLIRunner(t, ts.addr)

	cmd := exec.Command(cli.binaryPath, "--server", cli.serverURL, "--no-color",
		"lookup", "kr", "Hide on bush", "--captcha", "token")
	output, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "You have wasted 25000 hours playing League of Legends. Go touch some grass.\n", string(output))
}

func assertErrorCode(t *testing.T, stderr, code string) {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal([]byte(stderr), &resp), "stderr: %s", stderr)
	assert.Equal(t, code, resp.Error)
}
