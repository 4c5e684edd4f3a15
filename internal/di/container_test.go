package di

import (
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	forwardRepo "github.com/reshetovitsme/approval-relay/internal/modules/forward/repository"
	forwardService "github.com/reshetovitsme/approval-relay/internal/modules/forward/service"
	"github.com/reshetovitsme/approval-relay/internal/shared/config"
	apperrors "github.com/reshetovitsme/approval-relay/internal/shared/errors"
	httpServer "github.com/reshetovitsme/approval-relay/internal/transport/http"
	"github.com/reshetovitsme/approval-relay/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		TelegramBotToken:   "1:test",
		MonitoredGroups:    []string{"@COACH_BETA_1"},
		TargetChannel:      "@approvals",
		ApprovedKeywords:   config.DefaultApprovedKeywords,
		Port:               8000,
		HealthMode:         config.HealthModeRaw,
		DataDir:            t.TempDir(),
		Workers:            2,
		DedupBackend:       config.DedupBackendMemory,
		DedupPruneSchedule: "@every 1h",
	}
}

func TestOpenRepository_Backends(t *testing.T) {
	tests := []struct {
		backend config.DedupBackend
		want    interface{}
	}{
		{config.DedupBackendMemory, &forwardRepo.MemoryStorage{}},
		{config.DedupBackendFile, &forwardRepo.FileStorage{}},
		{config.DedupBackendBadger, &forwardRepo.BadgerStorage{}},
	}

	for _, tt := range tests {
		t.Run(tt.backend.String(), func(t *testing.T) {
			cfg := testConfig(t)
			cfg.DedupBackend = tt.backend

			repo, err := openRepository(cfg)
			require.NoError(t, err)
			defer repo.Close()
			require.IsType(t, tt.want, repo)
		})
	}
}

func TestOpenRepository_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.DedupBackend = config.DedupBackend("redis")

	_, err := openRepository(cfg)
	require.ErrorIs(t, err, apperrors.ErrUnknownDedupBackend)
}

func TestSetup_LivenessFollowsHealthMode(t *testing.T) {
	req := require.New(t)

	injector, err := Setup("")
	req.NoError(err)
	cfg := testConfig(t)
	do.OverrideValue(injector, cfg)

	liveness, err := do.Invoke[httpServer.Liveness](injector)
	req.NoError(err)
	req.IsType(&httpServer.Responder{}, liveness)

	injector, err = Setup("")
	req.NoError(err)
	cfg = testConfig(t)
	cfg.HealthMode = config.HealthModeHttp
	do.OverrideValue(injector, cfg)

	liveness, err = do.Invoke[httpServer.Liveness](injector)
	req.NoError(err)
	req.IsType(&httpServer.Server{}, liveness)
}

func TestSetup_StorageServices(t *testing.T) {
	req := require.New(t)

	injector, err := Setup("")
	req.NoError(err)
	do.OverrideValue(injector, testConfig(t))

	repo, err := do.Invoke[forwardRepo.Repository](injector)
	req.NoError(err)
	req.IsType(&forwardRepo.MemoryStorage{}, repo)

	pruner, err := do.Invoke[*forwardService.Pruner](injector)
	req.NoError(err)
	req.False(pruner.Enabled())

	poller, err := do.Invoke[*telegram.Poller](injector)
	req.NoError(err)
	req.NotNil(poller)
}

func TestShutdown_LeavesBotSessionOnServer(t *testing.T) {
	req := require.New(t)

	var mu sync.Mutex
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		methods = append(methods, path.Base(r.URL.Path))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"relay"}}`))
	}))
	defer srv.Close()

	injector, err := Setup("")
	req.NoError(err)
	cfg := testConfig(t)
	cfg.TelegramAPIURL = srv.URL
	do.OverrideValue(injector, cfg)

	_, err = do.Invoke[*bot.Bot](injector)
	req.NoError(err)
	_, err = do.Invoke[forwardRepo.Repository](injector)
	req.NoError(err)

	req.NoError(Shutdown(injector))

	mu.Lock()
	defer mu.Unlock()
	req.NotContains(methods, "close")
	req.NotContains(methods, "logOut")
}
