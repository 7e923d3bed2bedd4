package billing_test

import (
	"context"
	"errors"
	"testing"

	"directorybolt/internal/billing"
	mockqueue "directorybolt/internal/queue/mock"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/payments"
	mockpayments "directorybolt/pkg/payments/mock"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"
	mockstorage "directorybolt/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testBilling struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	provider *mockpayments.MockProvider
	queue    *mockqueue.MockService
	service  billing.Service
}

func newTestBilling(t *testing.T) *testBilling {
	t.Helper()

	ctrl := gomock.NewController(t)
	tb := &testBilling{
		ctrl:     ctrl,
		storage:  mockstorage.NewMockStorage(ctrl),
		provider: mockpayments.NewMockProvider(ctrl),
		queue:    mockqueue.NewMockService(ctrl),
	}
	tb.service = billing.New(tb.storage, tb.provider, tb.queue, billing.Options{Currency: "usd"})

	return tb
}

func (tb *testBilling) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	tb.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(tb.ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func TestBilling_CreateCheckout(t *testing.T) {
	tb := newTestBilling(t)
	ctx := context.Background()

	customerID := domain.CustomerID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())

	tb.storage.EXPECT().CustomerByID(gomock.Any(), customerID).
		Return(&domain.Customer{ID: customerID}, nil)
	tb.storage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Purchase) (*domain.Purchase, error) {
			require.Equal(t, domain.TierGrowth, p.Tier)
			require.EqualValues(t, 29900, p.AmountCents)
			require.Equal(t, "usd", p.Currency)
			require.Equal(t, "owner@example.com", p.CustomerEmail)
			require.Equal(t, domain.PurchaseStatusPending, p.Status)
			require.Equal(t, customerID, *p.CustomerID)
			p.ID = purchaseID

			return &p, nil
		})
	tb.provider.EXPECT().CreateCheckout(gomock.Any(), payments.CheckoutRequest{
		PurchaseID:  purchaseID,
		Tier:        domain.TierGrowth,
		Email:       "owner@example.com",
		AmountCents: 29900,
		Currency:    "usd",
	}).Return(&payments.Checkout{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil)
	tb.storage.EXPECT().SetPurchaseCheckoutSession(gomock.Any(), purchaseID, "cs_1").Return(nil)

	out, err := tb.service.CreateCheckout(ctx, billing.CheckoutRequest{
		Tier:       "growth",
		Email:      "Owner@Example.com",
		CustomerID: &customerID,
	})
	require.NoError(t, err)
	require.Equal(t, "https://pay.example/cs_1", out.URL)
}

func TestBilling_CreateCheckout_UsesAccountEmail(t *testing.T) {
	tb := newTestBilling(t)

	userID := domain.UserID(uuid.New())
	tb.storage.EXPECT().UserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Email: "member@example.com"}, nil)
	tb.storage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Purchase) (*domain.Purchase, error) {
			require.Equal(t, "member@example.com", p.CustomerEmail)
			require.Equal(t, userID, *p.UserID)
			p.ID = domain.PurchaseID(uuid.New())

			return &p, nil
		})
	tb.provider.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(&payments.Checkout{ID: "cs_2"}, nil)
	tb.storage.EXPECT().SetPurchaseCheckoutSession(gomock.Any(), gomock.Any(), "cs_2").Return(nil)

	_, err := tb.service.CreateCheckout(context.Background(), billing.CheckoutRequest{Tier: "starter", UserID: &userID})
	require.NoError(t, err)
}

func TestBilling_CreateCheckout_Validation(t *testing.T) {
	tb := newTestBilling(t)
	ctx := context.Background()

	_, err := tb.service.CreateCheckout(ctx, billing.CheckoutRequest{Tier: "platinum", Email: "a@example.com"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = tb.service.CreateCheckout(ctx, billing.CheckoutRequest{Tier: "free", Email: "a@example.com"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = tb.service.CreateCheckout(ctx, billing.CheckoutRequest{Tier: "starter"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = tb.service.CreateCheckout(ctx, billing.CheckoutRequest{Tier: "starter", Email: "not-an-email"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	owner := domain.UserID(uuid.New())
	customerID := domain.CustomerID(uuid.New())
	tb.storage.EXPECT().CustomerByID(gomock.Any(), customerID).
		Return(&domain.Customer{ID: customerID, UserID: &owner}, nil)
	_, err = tb.service.CreateCheckout(ctx, billing.CheckoutRequest{
		Tier: "starter", Email: "a@example.com", CustomerID: &customerID,
	})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	tb.storage.EXPECT().CustomerByID(gomock.Any(), customerID).Return(nil, nil)
	_, err = tb.service.CreateCheckout(ctx, billing.CheckoutRequest{
		Tier: "starter", Email: "a@example.com", CustomerID: &customerID,
	})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestBilling_CreateCheckout_ProviderDown(t *testing.T) {
	tb := newTestBilling(t)

	purchaseID := domain.PurchaseID(uuid.New())
	tb.storage.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Purchase) (*domain.Purchase, error) {
			p.ID = purchaseID

			return &p, nil
		})
	tb.provider.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	tb.storage.EXPECT().MarkPurchaseFailed(gomock.Any(), purchaseID).Return(&domain.Purchase{ID: purchaseID}, nil)

	_, err := tb.service.CreateCheckout(context.Background(), billing.CheckoutRequest{Tier: "starter", Email: "a@example.com"})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestBilling_HandleWebhook_CheckoutCompleted(t *testing.T) {
	tb := newTestBilling(t)
	purchaseID := domain.PurchaseID(uuid.New())

	event := &payments.Event{
		ID:                "evt_1",
		Type:              payments.EventCheckoutCompleted,
		PurchaseID:        purchaseID.String(),
		CheckoutSessionID: "cs_1",
		PaymentIntentID:   "pi_1",
		ProcessorCustomer: "cus_1",
		Email:             "owner@example.com",
	}
	tb.provider.EXPECT().ParseWebhook([]byte("payload"), "sig").Return(event, nil).Times(2)

	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchasePaid(gomock.Any(), purchaseID, "cs_1", "pi_1").
			Return(&domain.Purchase{ID: purchaseID, Status: domain.PurchaseStatusPaid}, true, nil)
		tx.EXPECT().AddJob(gomock.Any(), billing.FulfilArgs{
			PurchaseID:       purchaseID.String(),
			Email:            "owner@example.com",
			StripeCustomerID: "cus_1",
		}, (*river.InsertOpts)(nil)).Return(true, nil)
	})
	require.NoError(t, tb.service.HandleWebhook(context.Background(), []byte("payload"), "sig"))

	// redelivery is acknowledged without a second fulfilment
	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchasePaid(gomock.Any(), purchaseID, "cs_1", "pi_1").
			Return(&domain.Purchase{ID: purchaseID, Status: domain.PurchaseStatusPaid}, false, nil)
	})
	require.NoError(t, tb.service.HandleWebhook(context.Background(), []byte("payload"), "sig"))
}

func TestBilling_HandleWebhook_UnknownPurchase(t *testing.T) {
	tb := newTestBilling(t)
	purchaseID := domain.PurchaseID(uuid.New())

	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(&payments.Event{
		Type:       payments.EventCheckoutCompleted,
		PurchaseID: purchaseID.String(),
	}, nil)
	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchasePaid(gomock.Any(), purchaseID, "", "").Return(nil, false, nil)
	})

	err := tb.service.HandleWebhook(context.Background(), nil, "")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestBilling_HandleWebhook_Failures(t *testing.T) {
	tb := newTestBilling(t)
	ctx := context.Background()
	purchaseID := domain.PurchaseID(uuid.New())

	failed := &payments.Event{Type: payments.EventPaymentFailed, PurchaseID: purchaseID.String()}

	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(failed, nil)
	tb.storage.EXPECT().MarkPurchaseFailed(gomock.Any(), purchaseID).
		Return(&domain.Purchase{ID: purchaseID, Status: domain.PurchaseStatusFailed}, nil)
	require.NoError(t, tb.service.HandleWebhook(ctx, nil, ""))

	// already paid
	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(failed, nil)
	tb.storage.EXPECT().MarkPurchaseFailed(gomock.Any(), purchaseID).Return(nil, nil)
	tb.storage.EXPECT().PurchaseByID(gomock.Any(), purchaseID).
		Return(&domain.Purchase{ID: purchaseID, Status: domain.PurchaseStatusPaid}, nil)
	require.NoError(t, tb.service.HandleWebhook(ctx, nil, ""))

	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(failed, nil)
	tb.storage.EXPECT().MarkPurchaseFailed(gomock.Any(), purchaseID).Return(nil, nil)
	tb.storage.EXPECT().PurchaseByID(gomock.Any(), purchaseID).Return(nil, nil)
	require.ErrorIs(t, tb.service.HandleWebhook(ctx, nil, ""), serrors.ErrNotFound)
}

func TestBilling_HandleWebhook_IgnoredAndRejected(t *testing.T) {
	tb := newTestBilling(t)
	ctx := context.Background()

	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
		Return(&payments.Event{Type: "invoice.paid"}, nil)
	require.NoError(t, tb.service.HandleWebhook(ctx, nil, ""))

	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
		Return(&payments.Event{Type: payments.EventCheckoutCompleted}, nil)
	require.NoError(t, tb.service.HandleWebhook(ctx, nil, ""))

	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
		Return(&payments.Event{Type: payments.EventCheckoutCompleted, PurchaseID: "not-a-uuid"}, nil)
	require.NoError(t, tb.service.HandleWebhook(ctx, nil, ""))

	tb.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrInvalidSignature)
	require.ErrorIs(t, tb.service.HandleWebhook(ctx, nil, "bad"), serrors.ErrUnauthorized)
}

func TestBilling_Fulfil_NewAccountAndQueue(t *testing.T) {
	tb := newTestBilling(t)
	ctx := context.Background()

	purchaseID := domain.PurchaseID(uuid.New())
	customerID := domain.CustomerID(uuid.New())
	userID := domain.UserID(uuid.New())

	tb.storage.EXPECT().PurchaseByID(gomock.Any(), purchaseID).Return(&domain.Purchase{
		ID:            purchaseID,
		CustomerID:    &customerID,
		Tier:          domain.TierProfessional,
		CustomerEmail: "owner@example.com",
		Status:        domain.PurchaseStatusPaid,
	}, nil)
	tb.storage.EXPECT().UserByEmail(gomock.Any(), "owner@example.com").Return(nil, nil)
	tb.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.Empty(t, u.PasswordHash)
			u.ID = userID

			return &u, nil
		})
	tb.storage.EXPECT().LinkPurchaseUser(gomock.Any(), purchaseID, userID).Return(nil)
	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchaseGranted(gomock.Any(), purchaseID).Return(true, nil)
		tx.EXPECT().UpdateUserBilling(gomock.Any(), userID, storage.UserBillingUpdates{
			Tier:              domain.TierProfessional,
			StripeCustomerID:  "cus_1",
			CreditDirectories: 300,
		}).Return(&domain.User{ID: userID}, nil)
	})
	tb.storage.EXPECT().UpdateCustomer(gomock.Any(), customerID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.CustomerID, u storage.CustomerUpdates) (*domain.Customer, error) {
			require.Equal(t, userID, *u.UserID)
			require.Equal(t, domain.TierProfessional, *u.Tier)

			return &domain.Customer{ID: customerID}, nil
		})
	tb.queue.EXPECT().Enqueue(gomock.Any(), customerID).
		Return(&domain.QueueJob{ID: domain.QueueJobID(uuid.New())}, nil)

	require.NoError(t, tb.service.Fulfil(ctx, billing.FulfilArgs{
		PurchaseID:       purchaseID.String(),
		StripeCustomerID: "cus_1",
	}))
}

func TestBilling_Fulfil_ExistingAccountNoDowngrade(t *testing.T) {
	tb := newTestBilling(t)

	purchaseID := domain.PurchaseID(uuid.New())
	userID := domain.UserID(uuid.New())

	tb.storage.EXPECT().PurchaseByID(gomock.Any(), purchaseID).Return(&domain.Purchase{
		ID:     purchaseID,
		UserID: &userID,
		Tier:   domain.TierStarter,
		Status: domain.PurchaseStatusPaid,
	}, nil)
	tb.storage.EXPECT().UserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Tier: domain.TierEnterprise}, nil)
	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchaseGranted(gomock.Any(), purchaseID).Return(true, nil)
		tx.EXPECT().UpdateUserBilling(gomock.Any(), userID, storage.UserBillingUpdates{CreditDirectories: 50}).
			Return(&domain.User{ID: userID}, nil)
	})

	require.NoError(t, tb.service.Fulfil(context.Background(), billing.FulfilArgs{PurchaseID: purchaseID.String()}))
}

func TestBilling_Fulfil_AlreadyQueued(t *testing.T) {
	tb := newTestBilling(t)

	purchaseID := domain.PurchaseID(uuid.New())
	customerID := domain.CustomerID(uuid.New())
	userID := domain.UserID(uuid.New())

	tb.storage.EXPECT().PurchaseByID(gomock.Any(), purchaseID).Return(&domain.Purchase{
		ID:         purchaseID,
		UserID:     &userID,
		CustomerID: &customerID,
		Tier:       domain.TierGrowth,
		Status:     domain.PurchaseStatusPaid,
	}, nil)
	tb.storage.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Tier: domain.TierFree}, nil)
	// a retried job finds the allowance already credited
	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchaseGranted(gomock.Any(), purchaseID).Return(false, nil)
		tx.EXPECT().UpdateUserBilling(gomock.Any(), userID, storage.UserBillingUpdates{Tier: domain.TierGrowth}).
			Return(&domain.User{ID: userID}, nil)
	})
	tb.storage.EXPECT().UpdateCustomer(gomock.Any(), customerID, gomock.Any()).Return(&domain.Customer{}, nil)
	tb.queue.EXPECT().Enqueue(gomock.Any(), customerID).
		Return(nil, serrors.With(serrors.ErrConflict, "customer already has an active queue job"))

	require.NoError(t, tb.service.Fulfil(context.Background(), billing.FulfilArgs{PurchaseID: purchaseID.String()}))
}

func TestBilling_Fulfil_RepeatPurchaseCreditsAllowance(t *testing.T) {
	tb := newTestBilling(t)

	purchaseID := domain.PurchaseID(uuid.New())
	customerID := domain.CustomerID(uuid.New())
	userID := domain.UserID(uuid.New())

	tb.storage.EXPECT().PurchaseByID(gomock.Any(), purchaseID).Return(&domain.Purchase{
		ID:         purchaseID,
		UserID:     &userID,
		CustomerID: &customerID,
		Tier:       domain.TierStarter,
		Status:     domain.PurchaseStatusPaid,
	}, nil)
	tb.storage.EXPECT().UserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Tier: domain.TierStarter, DirectoriesUsed: 50}, nil)
	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchaseGranted(gomock.Any(), purchaseID).Return(true, nil)
		tx.EXPECT().UpdateUserBilling(gomock.Any(), userID, storage.UserBillingUpdates{CreditDirectories: 50}).
			Return(&domain.User{ID: userID, Tier: domain.TierStarter}, nil)
	})
	tb.storage.EXPECT().UpdateCustomer(gomock.Any(), customerID, gomock.Any()).Return(&domain.Customer{}, nil)
	tb.queue.EXPECT().Enqueue(gomock.Any(), customerID).
		Return(&domain.QueueJob{ID: domain.QueueJobID(uuid.New()), DirectoryLimit: 50}, nil)

	require.NoError(t, tb.service.Fulfil(context.Background(), billing.FulfilArgs{PurchaseID: purchaseID.String()}))
}

func TestBilling_Fulfil_GrantFails(t *testing.T) {
	tb := newTestBilling(t)

	purchaseID := domain.PurchaseID(uuid.New())
	userID := domain.UserID(uuid.New())

	tb.storage.EXPECT().PurchaseByID(gomock.Any(), purchaseID).Return(&domain.Purchase{
		ID:     purchaseID,
		UserID: &userID,
		Tier:   domain.TierGrowth,
		Status: domain.PurchaseStatusPaid,
	}, nil)
	tb.storage.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Tier: domain.TierFree}, nil)
	dbErr := errors.New("connection reset")
	tb.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().MarkPurchaseGranted(gomock.Any(), purchaseID).Return(false, dbErr)
	})

	require.ErrorIs(t, tb.service.Fulfil(context.Background(), billing.FulfilArgs{PurchaseID: purchaseID.String()}), dbErr)
}

func TestBilling_Fulfil_Errors(t *testing.T) {
	tb := newTestBilling(t)
	ctx := context.Background()

	require.ErrorIs(t, tb.service.Fulfil(ctx, billing.FulfilArgs{PurchaseID: "x"}), serrors.ErrBadRequest)

	id := domain.PurchaseID(uuid.New())
	tb.storage.EXPECT().PurchaseByID(gomock.Any(), id).Return(nil, nil)
	require.ErrorIs(t, tb.service.Fulfil(ctx, billing.FulfilArgs{PurchaseID: id.String()}), serrors.ErrNotFound)

	tb.storage.EXPECT().PurchaseByID(gomock.Any(), id).
		Return(&domain.Purchase{ID: id, Status: domain.PurchaseStatusPending}, nil)
	require.ErrorIs(t, tb.service.Fulfil(ctx, billing.FulfilArgs{PurchaseID: id.String()}), serrors.ErrConflict)
}
