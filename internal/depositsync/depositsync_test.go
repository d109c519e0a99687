package depositsync

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/dailymine/internal/config"
	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/GlebRadaev/dailymine/internal/metrics"
	"github.com/GlebRadaev/dailymine/internal/pg"
	"github.com/GlebRadaev/dailymine/pkg/clients"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	deposits *MockRepo
	wallets  *MockWalletRepo
	tx       *pg.MockTXManager
	client   *clients.MockHTTPClientI
}

func NewMock(t *testing.T) (*Service, *mocks) {
	cfg := &config.Config{DepositGatewayAddress: "http://localhost:8081", DepositSyncInterval: time.Second}
	ctrl := gomock.NewController(t)
	m := &mocks{
		deposits: NewMockRepo(ctrl),
		wallets:  NewMockWalletRepo(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
		client:   clients.NewMockHTTPClientI(ctrl),
	}
	service := New(cfg, m.deposits, m.wallets, m.tx, m.client)
	service.retryInterval = time.Millisecond
	t.Cleanup(service.workerPool.Close)
	return service, m
}

func (m *mocks) expectTx() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestService_StartDisabledWithoutGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := New(&config.Config{}, NewMockRepo(ctrl), NewMockWalletRepo(ctrl), pg.NewMockTXManager(ctrl), clients.NewMockHTTPClientI(ctrl))
	defer service.workerPool.Close()

	service.Start(context.Background())
	assert.Equal(t, defaultInterval, service.updateInterval)
}

func TestService_Start(t *testing.T) {
	service, m := NewMock(t)
	service.updateInterval = 5 * time.Millisecond
	m.deposits.EXPECT().FindPending(gomock.Any(), uint32(batchLimit)).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		service.Start(ctx)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestService_processDeposits(t *testing.T) {
	tests := []struct {
		name        string
		findResult  []domain.Deposit
		findErr     error
		addTaskErr  error
		expectTasks int
	}{
		{
			name: "Dispatches every pending deposit",
			findResult: []domain.Deposit{
				{ID: 1, UserID: 1, Status: domain.DepositStatusPending, Amount: 100},
				{ID: 2, UserID: 2, Status: domain.DepositStatusPending, Amount: 50},
			},
			expectTasks: 2,
		},
		{
			name:    "Repository error",
			findErr: errors.New("database error"),
		},
		{
			name:        "Worker pool refuses task",
			findResult:  []domain.Deposit{{ID: 1, UserID: 1, Status: domain.DepositStatusPending, Amount: 100}},
			addTaskErr:  context.Canceled,
			expectTasks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			depositRepo := NewMockRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			depositRepo.EXPECT().FindPending(gomock.Any(), uint32(2)).Return(tt.findResult, tt.findErr)
			workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(tt.addTaskErr).Times(tt.expectTasks)

			service := &Service{
				deposits:   depositRepo,
				workerPool: workerPool,
				limit:      2,
			}
			service.processDeposits(context.Background())

			for _, d := range tt.findResult {
				_, inFlight := service.inFlight.Load(d.ID)
				assert.Equal(t, tt.addTaskErr == nil, inFlight)
			}
		})
	}
}

func TestService_processDepositsSkipsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	depositRepo := NewMockRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	depositRepo.EXPECT().FindPending(gomock.Any(), gomock.Any()).Return([]domain.Deposit{{ID: 7}, {ID: 8}}, nil)
	workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	service := &Service{deposits: depositRepo, workerPool: workerPool, limit: 10}
	service.inFlight.Store(7, struct{}{})
	service.processDeposits(context.Background())
}

func TestService_handleDeposit(t *testing.T) {
	deposit := domain.Deposit{ID: 12, UserID: 3, Status: domain.DepositStatusPending, Amount: 200}
	url := "http://localhost:8081/api/deposits/12"

	tests := []struct {
		name          string
		cancelContext bool
		prepareMock   func(m *mocks)
		expectedError string
	}{
		{
			name: "Approved deposit credits wallet",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).
					Return(http.StatusOK, []byte(`{"deposit":12,"status":"approved"}`), http.Header{}, nil)
				m.expectTx()
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 12, domain.DepositStatusApproved).Return(true, nil)
				m.wallets.EXPECT().AddToWalletBalance(gomock.Any(), 3, 200.0).Return(&domain.User{ID: 3, WalletBalance: 200}, nil)
			},
		},
		{
			name: "Transport error retried then succeeds",
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(0, nil, nil, errors.New("connection reset")),
					m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).
						Return(http.StatusOK, []byte(`{"deposit":12,"status":"pending"}`), http.Header{}, nil),
				)
			},
		},
		{
			name: "Transport error after retries",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).
					Return(0, nil, nil, errors.New("server error")).Times(maxRetries)
			},
			expectedError: "failed to check deposit 12 after 3 retries: server error",
		},
		{
			name: "Unknown deposit after retries",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).
					Return(http.StatusNoContent, nil, http.Header{}, nil).Times(maxRetries)
			},
			expectedError: "deposit 12 not found after 3 retries",
		},
		{
			name: "Rate limit then approved",
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).
						Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"0"}}, nil),
					m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).
						Return(http.StatusOK, []byte(`{"deposit":12,"status":"rejected"}`), http.Header{}, nil),
				)
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 12, domain.DepositStatusRejected).Return(true, nil)
			},
		},
		{
			name: "Unexpected status code",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).
					Return(http.StatusTeapot, nil, http.Header{}, nil)
			},
			expectedError: ErrUnexpectedStatus.Error(),
		},
		{
			name:          "Context canceled",
			cancelContext: true,
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(0, nil, nil, context.Canceled)
			},
			expectedError: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelContext {
				cancel()
			}

			err := service.handleDeposit(ctx, deposit)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_applyStatus(t *testing.T) {
	deposit := domain.Deposit{ID: 5, UserID: 9, Status: domain.DepositStatusPending, Amount: 75.5}

	tests := []struct {
		name        string
		body        string
		prepareMock func(m *mocks)
		expectErr   bool
	}{
		{
			name: "Approved",
			body: `{"deposit":5,"status":"approved"}`,
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 5, domain.DepositStatusApproved).Return(true, nil)
				m.wallets.EXPECT().AddToWalletBalance(gomock.Any(), 9, 75.5).Return(&domain.User{}, nil)
			},
		},
		{
			name: "Approved twice credits once",
			body: `{"deposit":5,"status":"approved"}`,
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 5, domain.DepositStatusApproved).Return(false, nil)
			},
		},
		{
			name: "Credit failure rolls back",
			body: `{"deposit":5,"status":"approved"}`,
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 5, domain.DepositStatusApproved).Return(true, nil)
				m.wallets.EXPECT().AddToWalletBalance(gomock.Any(), 9, 75.5).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Rejected",
			body: `{"deposit":5,"status":"rejected"}`,
			prepareMock: func(m *mocks) {
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 5, domain.DepositStatusRejected).Return(true, nil)
			},
		},
		{
			name:        "Still pending",
			body:        `{"deposit":5,"status":"pending"}`,
			prepareMock: func(m *mocks) {},
		},
		{
			name:        "Unknown status ignored",
			body:        `{"deposit":5,"status":"frozen"}`,
			prepareMock: func(m *mocks) {},
		},
		{
			name:        "Invalid body",
			body:        `{invalid json}`,
			prepareMock: func(m *mocks) {},
			expectErr:   true,
		},
		{
			name:        "Deposit id mismatch",
			body:        `{"deposit":6,"status":"approved"}`,
			prepareMock: func(m *mocks) {},
			expectErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.applyStatus(context.Background(), deposit, []byte(tt.body))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_applyStatusCountsOutcome(t *testing.T) {
	service, m := NewMock(t)
	m.deposits.EXPECT().UpdateStatus(gomock.Any(), 5, domain.DepositStatusRejected).Return(true, nil)

	before := testutil.ToFloat64(metrics.DepositSync.WithLabelValues(domain.DepositStatusRejected))
	err := service.applyStatus(context.Background(), domain.Deposit{ID: 5}, []byte(`{"deposit":5,"status":"rejected"}`))

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.DepositSync.WithLabelValues(domain.DepositStatusRejected)))
}

func TestService_applyStatusSkipsResolvedDeposits(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		prepareMock func(m *mocks)
	}{
		{
			name:   "Approved elsewhere",
			status: domain.DepositStatusApproved,
			prepareMock: func(m *mocks) {
				m.expectTx()
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 5, domain.DepositStatusApproved).Return(false, nil)
			},
		},
		{
			name:   "Rejected elsewhere",
			status: domain.DepositStatusRejected,
			prepareMock: func(m *mocks) {
				m.deposits.EXPECT().UpdateStatus(gomock.Any(), 5, domain.DepositStatusRejected).Return(false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			before := testutil.ToFloat64(metrics.DepositSync.WithLabelValues(tt.status))
			err := service.applyStatus(context.Background(), domain.Deposit{ID: 5, UserID: 3, Amount: 100},
				[]byte(`{"deposit":5,"status":"`+tt.status+`"}`))

			assert.NoError(t, err)
			assert.Equal(t, before, testutil.ToFloat64(metrics.DepositSync.WithLabelValues(tt.status)))
		})
	}
}

func TestService_retryAfter(t *testing.T) {
	service := &Service{retryInterval: time.Second}

	assert.Equal(t, 4*time.Second, service.retryAfter(http.Header{"Retry-After": []string{"4"}}, 1))
	assert.Equal(t, 2*time.Second, service.retryAfter(http.Header{"Retry-After": []string{"soon"}}, 2))
	assert.Equal(t, time.Second, service.retryAfter(http.Header{}, 1))
}
