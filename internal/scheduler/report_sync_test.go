package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/affiliate-insights-api/internal/config"
	"github.com/vfg2006/affiliate-insights-api/internal/domain"
	"github.com/vfg2006/affiliate-insights-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncTestConfig() *config.Config {
	return &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule: "0 */6 * * *",
			LookbackDays: 30,
			Enabled:      false,
		},
	}
}

func TestReportSyncService_SyncNow(t *testing.T) {
	t.Run("Deve derivar os cursores since da janela de lookback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)

		expectedSince := time.Now().AddDate(0, 0, -30).Format(time.DateOnly)

		mockReporter.EXPECT().
			SyncReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters *domain.ReportFilters) (*domain.AffiliateReport, error) {
				assert.Equal(t, expectedSince, filters.OrdersSince)
				assert.Equal(t, expectedSince, filters.AffiliatesSince)
				return &domain.AffiliateReport{}, nil
			})

		service := NewReportSyncService(mockReporter, newSyncTestConfig())

		err := service.SyncNow(context.Background())
		assert.NoError(t, err)

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.NotNil(t, status["last_sync_started_at"])
		assert.NotNil(t, status["last_sync_completed_at"])
		assert.NotEmpty(t, status["last_run_id"])
		assert.Equal(t, "", status["last_sync_error"])
	})

	t.Run("Deve registrar o erro da sincronização no status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReporter := mocks.NewMockReporter(ctrl)
		mockReporter.EXPECT().
			SyncReport(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		service := NewReportSyncService(mockReporter, newSyncTestConfig())

		err := service.SyncNow(context.Background())
		assert.Error(t, err)

		status := service.GetStatus()
		assert.Equal(t, assert.AnError.Error(), status["last_sync_error"])
	})

	t.Run("Execuções concorrentes não se sobrepõem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		release := make(chan struct{})
		started := make(chan struct{})

		mockReporter := mocks.NewMockReporter(ctrl)
		mockReporter.EXPECT().
			SyncReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.ReportFilters) (*domain.AffiliateReport, error) {
				close(started)
				<-release
				return &domain.AffiliateReport{}, nil
			}).
			Times(1)

		service := NewReportSyncService(mockReporter, newSyncTestConfig())

		done := make(chan error)
		go func() {
			done <- service.SyncNow(context.Background())
		}()

		<-started

		// Segunda chamada enquanto a primeira roda: retorna sem chamar o reporter
		err := service.SyncNow(context.Background())
		assert.NoError(t, err)

		close(release)
		assert.NoError(t, <-done)
	})
}

func TestReportSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	service := NewReportSyncService(mockReporter, newSyncTestConfig())

	status := service.GetStatus()

	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, "0 */6 * * *", status["cron_schedule"])
	assert.Equal(t, 30, status["lookback_days"])
	assert.Equal(t, false, status["sync_running"])
	assert.Nil(t, status["last_sync_started_at"])
	assert.Nil(t, status["last_sync_completed_at"])
}

func TestReportSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	service := NewReportSyncService(mockReporter, newSyncTestConfig())

	// Desabilitado por configuração: Start não agenda nada nem falha
	err := service.Start(context.Background())
	assert.NoError(t, err)
}
