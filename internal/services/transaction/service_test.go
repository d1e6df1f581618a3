package transaction

import (
	"context"
	"testing"
	"time"

	"cardledger/internal/models"
	"cardledger/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(txns *MockTransactionRepo, cards *MockCardRepo, customers *MockCustomerRepo, statements *MockStatementRepo) *service {
	if txns == nil {
		txns = new(MockTransactionRepo)
	}
	if cards == nil {
		cards = new(MockCardRepo)
	}
	if customers == nil {
		customers = new(MockCustomerRepo)
	}
	if statements == nil {
		statements = new(MockStatementRepo)
	}
	return NewService(txns, cards, customers, statements, noopCache{}).(*service)
}

func TestAuthorize(t *testing.T) {
	authTime := time.Date(2024, 6, 10, 14, 30, 45, 0, time.UTC)
	nextYear := authTime.AddDate(1, 0, 0)

	tests := []struct {
		name       string
		cardNumber string
		amount     float64
		setupMock  func(*MockTransactionRepo, *MockCardRepo)
		wantStatus models.TransactionStatus
		wantAmount float64
		wantErr    error
	}{
		{
			name:       "within limit succeeds",
			cardNumber: "C001",
			amount:     150,
			setupMock: func(txns *MockTransactionRepo, cards *MockCardRepo) {
				card := &models.Card{CardNumber: "C001", CreditLimit: 1000, UsedLimit: 800, ExpiryDate: nextYear}
				cards.On("FindByNumber", "C001").Return(card, nil)
				cards.On("Reserve", "C001", 150.0).Return(true, nil)
				txns.On("Create", mock.Anything).Return(nil)
			},
			wantStatus: models.StatusSuccessful,
			wantAmount: 150,
		},
		{
			name:       "projected usage at limit fails",
			cardNumber: "C001",
			amount:     100,
			setupMock: func(txns *MockTransactionRepo, cards *MockCardRepo) {
				card := &models.Card{CardNumber: "C001", CreditLimit: 1000, UsedLimit: 950, ExpiryDate: nextYear}
				cards.On("FindByNumber", "C001").Return(card, nil)
				cards.On("Reserve", "C001", 100.0).Return(false, nil)
				txns.On("Create", mock.Anything).Return(nil)
			},
			wantStatus: models.StatusFailed,
			wantAmount: 0,
		},
		{
			name:       "expired card rejected",
			cardNumber: "C002",
			amount:     10,
			setupMock: func(txns *MockTransactionRepo, cards *MockCardRepo) {
				card := &models.Card{
					CardNumber:  "C002",
					CreditLimit: 1000,
					ExpiryDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				}
				cards.On("FindByNumber", "C002").Return(card, nil)
			},
			wantErr: ErrCardExpired,
		},
		{
			name:       "missing card number",
			cardNumber: "",
			amount:     10,
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "unknown card",
			cardNumber: "C404",
			amount:     10,
			setupMock: func(txns *MockTransactionRepo, cards *MockCardRepo) {
				cards.On("FindByNumber", "C404").Return(nil, repositories.ErrCardNotFound)
			},
			wantErr: ErrCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := new(MockTransactionRepo)
			cards := new(MockCardRepo)
			if tt.setupMock != nil {
				tt.setupMock(txns, cards)
			}

			s := newTestService(txns, cards, nil, nil)
			s.now = func() time.Time { return authTime }

			got, err := s.Authorize(context.Background(), tt.cardNumber, tt.amount, "grocery")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				txns.AssertNotCalled(t, "Create", mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, got.Status)
				assert.Equal(t, tt.wantAmount, got.Amount)
				assert.Equal(t, tt.cardNumber, got.CardNumber)
				assert.Equal(t, uint(0), got.TransactionID)
				assert.Equal(t, "grocery", got.Description)
				assert.NotEmpty(t, got.Reference)
				// Date and time come from the authorization moment.
				assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got.Date)
				assert.Equal(t, "14:30:45", got.Time)
			}

			txns.AssertExpectations(t)
			cards.AssertExpectations(t)
		})
	}
}

func TestAuthorize_FailedAttemptStillRecorded(t *testing.T) {
	txns := new(MockTransactionRepo)
	cards := new(MockCardRepo)

	card := &models.Card{CardNumber: "C001", CreditLimit: 1000, UsedLimit: 950, ExpiryDate: time.Now().AddDate(1, 0, 0)}
	cards.On("FindByNumber", "C001").Return(card, nil)
	cards.On("Reserve", "C001", 100.0).Return(false, nil)

	var recorded *models.Transaction
	txns.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(0).(*models.Transaction)
	}).Return(nil)

	s := newTestService(txns, cards, nil, nil)
	got, err := s.Authorize(context.Background(), "C001", 100, "electronics")

	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, models.StatusFailed, recorded.Status)
	assert.Equal(t, float64(0), recorded.Amount)
	assert.Equal(t, got.Reference, recorded.Reference)
}

func TestAdd(t *testing.T) {
	t.Run("nil input is a no-op", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		s := newTestService(txns, nil, nil, nil)

		got, err := s.Add(context.Background(), nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
		txns.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate id rejected and storage untouched", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(7)).Return(true, nil)

		s := newTestService(txns, nil, nil, nil)
		got, err := s.Add(context.Background(), &Transaction{TransactionID: 7})

		assert.ErrorIs(t, err, ErrDuplicateTransaction)
		assert.Contains(t, err.Error(), "7")
		assert.Nil(t, got)
		txns.AssertNotCalled(t, "Create", mock.Anything)
		txns.AssertExpectations(t)
	})

	t.Run("new transaction persisted", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(7)).Return(false, nil)
		txns.On("Create", mock.Anything).Return(nil)

		s := newTestService(txns, nil, nil, nil)
		got, err := s.Add(context.Background(), &Transaction{TransactionID: 7, CardNumber: "C001", Amount: 25})

		require.NoError(t, err)
		assert.Equal(t, uint(7), got.TransactionID)
		assert.Equal(t, "C001", got.CardNumber)
		txns.AssertExpectations(t)
	})
}

func TestSave(t *testing.T) {
	t.Run("nil input rejected", func(t *testing.T) {
		s := newTestService(nil, nil, nil, nil)
		_, err := s.Save(context.Background(), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("upsert without existence check", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("Save", mock.Anything).Return(nil)

		s := newTestService(txns, nil, nil, nil)
		got, err := s.Save(context.Background(), &Transaction{TransactionID: 3, Amount: 12.5})

		require.NoError(t, err)
		assert.Equal(t, 12.5, got.Amount)
		txns.AssertNotCalled(t, "ExistsByID", mock.Anything)
		txns.AssertExpectations(t)
	})
}

func TestFindByID(t *testing.T) {
	t.Run("zero id rejected", func(t *testing.T) {
		s := newTestService(nil, nil, nil, nil)
		_, err := s.FindByID(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown id not found", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(9)).Return(false, nil)

		s := newTestService(txns, nil, nil, nil)
		_, err := s.FindByID(context.Background(), 9)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("store inconsistency yields absent result", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(9)).Return(true, nil)
		txns.On("FindByID", uint(9)).Return(nil, repositories.ErrTransactionNotFound)

		s := newTestService(txns, nil, nil, nil)
		got, err := s.FindByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("found and mapped", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(9)).Return(true, nil)
		txns.On("FindByID", uint(9)).Return(&models.Transaction{
			TransactionID: 9,
			CardNumber:    "C001",
			Amount:        42,
			Status:        models.StatusSuccessful,
		}, nil)

		s := newTestService(txns, nil, nil, nil)
		got, err := s.FindByID(context.Background(), 9)

		require.NoError(t, err)
		assert.Equal(t, uint(9), got.TransactionID)
		assert.Equal(t, models.StatusSuccessful, got.Status)
	})
}

func TestDeleteByID(t *testing.T) {
	t.Run("zero id rejected", func(t *testing.T) {
		s := newTestService(nil, nil, nil, nil)
		err := s.DeleteByID(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown id not found", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(4)).Return(false, nil)

		s := newTestService(txns, nil, nil, nil)
		err := s.DeleteByID(context.Background(), 4)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
		txns.AssertNotCalled(t, "DeleteByID", mock.Anything)
	})

	t.Run("existing id deleted", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(4)).Return(true, nil)
		txns.On("DeleteByID", uint(4)).Return(nil)

		s := newTestService(txns, nil, nil, nil)
		assert.NoError(t, s.DeleteByID(context.Background(), 4))
		txns.AssertExpectations(t)
	})
}

func TestExistsByID(t *testing.T) {
	t.Run("zero id rejected", func(t *testing.T) {
		s := newTestService(nil, nil, nil, nil)
		_, err := s.ExistsByID(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("delegates to storage", func(t *testing.T) {
		txns := new(MockTransactionRepo)
		txns.On("ExistsByID", uint(2)).Return(true, nil)

		s := newTestService(txns, nil, nil, nil)
		exists, err := s.ExistsByID(context.Background(), 2)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestFindAll(t *testing.T) {
	txns := new(MockTransactionRepo)
	txns.On("FindAll").Return([]models.Transaction{
		{TransactionID: 1, CardNumber: "C001"},
		{TransactionID: 2, CardNumber: "C002"},
	}, nil)

	s := newTestService(txns, nil, nil, nil)
	all, err := s.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, uint(1), all[0].TransactionID)
	assert.Equal(t, uint(2), all[1].TransactionID)
}
