package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	cr "github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
)

func strPtr(s string) *string { return &s }

func TestPricingUseCaseReadCreatesDefaults(t *testing.T) {
	f := newFixture()

	view, err := f.pricingUC.Read(context.Background())
	require.NoError(t, err)

	want := model.PricingView{
		PricingSnapshot: model.PricingSnapshot{
			StoreName:     model.DefaultStoreName,
			Currency:      model.DefaultCurrency,
			PricePerPhoto: model.DefaultPricePerPhoto,
			ReceiptFooter: model.DefaultReceiptFooter,
		},
		UpdatedAt: baseTime,
	}
	if diff := cmp.Diff(want, *view); diff != "" {
		t.Fatalf("unexpected view (-want +got):\n%s", diff)
	}

	_, err = f.pricingUC.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.settings.Inserts, "defaults are inserted once")
}

func TestPricingUseCaseBackfillsLegacyPIN(t *testing.T) {
	f := newFixture()
	f.settings.Record = &model.Settings{StoreName: "Legacy", Currency: "USD", PricePerPhoto: 1, UpdatedAt: baseTime}
	f.clock.Add(time.Hour)

	ok, err := f.pricingUC.VerifyPIN(context.Background(), model.DefaultAdminPIN)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, f.settings.Record.AdminPIN)
	assert.Equal(t, model.DefaultAdminPIN, *f.settings.Record.AdminPIN)
	assert.Equal(t, 1, f.settings.Backfills)

	_, err = f.pricingUC.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.settings.Backfills, "backfill is idempotent")
	assert.Equal(t, 0, f.settings.Inserts)
}

func TestPricingUseCaseConcurrentBackfillConverges(t *testing.T) {
	f := newFixture()
	f.settings.Record = &model.Settings{StoreName: "Legacy", UpdatedAt: baseTime}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := f.pricingUC.VerifyPIN(context.Background(), model.DefaultAdminPIN)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, f.settings.Backfills)
}

func TestPricingUseCaseBackfillFailureFallsBackToDefault(t *testing.T) {
	f := newFixture()
	f.settings.Record = &model.Settings{StoreName: "Legacy", UpdatedAt: baseTime}
	f.settings.BackfillErr = errors.New("read only")

	ok, err := f.pricingUC.VerifyPIN(context.Background(), model.DefaultAdminPIN)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, f.settings.Record.AdminPIN)
}

func TestPricingUseCaseVerifyPIN(t *testing.T) {
	f := newFixture()
	f.settings.Record = &model.Settings{StoreName: "Shop", AdminPIN: strPtr("9876"), UpdatedAt: baseTime}

	ok, err := f.pricingUC.VerifyPIN(context.Background(), "9876")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.pricingUC.VerifyPIN(context.Background(), "1234")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.pricingUC.VerifyPIN(context.Background(), " 9876")
	require.NoError(t, err)
	assert.False(t, ok, "comparison is verbatim")
}

func TestPricingUseCaseReadPropagatesStoreError(t *testing.T) {
	f := newFixture()
	f.settings.GetErr = errors.New("db down")

	_, err := f.pricingUC.Read(context.Background())
	assert.EqualError(t, err, "db down")
	_, err = f.pricingUC.Snapshot(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestPricingUseCaseUpdate(t *testing.T) {
	f := newFixture()
	f.clock.Add(time.Minute)

	price := 3.75
	view, err := f.pricingUC.Update(context.Background(), model.SettingsPatch{
		StoreName:     strPtr("Foto Express"),
		PricePerPhoto: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Foto Express", view.StoreName)
	assert.Equal(t, 3.75, view.PricePerPhoto)
	assert.Equal(t, model.DefaultCurrency, view.Currency)
	assert.Equal(t, baseTime.Add(time.Minute), view.UpdatedAt)

	f.clock.Add(time.Minute)
	view, err = f.pricingUC.Update(context.Background(), model.SettingsPatch{})
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(time.Minute), view.UpdatedAt, "empty patch changes nothing")

	_, err = f.pricingUC.Update(context.Background(), model.SettingsPatch{AdminPIN: strPtr("4321")})
	require.NoError(t, err)
	ok, err := f.pricingUC.VerifyPIN(context.Background(), "4321")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPricingUseCaseUpdateValidation(t *testing.T) {
	f := newFixture()

	for _, price := range []float64{-0.01, math.NaN(), math.Inf(1)} {
		p := price
		_, err := f.pricingUC.Update(context.Background(), model.SettingsPatch{PricePerPhoto: &p})
		assert.True(t, cr.Is(err, domainErrors.ErrInvalidInput), "price %v: got %v", price, err)
	}

	_, err := f.pricingUC.Update(context.Background(), model.SettingsPatch{AdminPIN: strPtr("")})
	assert.True(t, cr.Is(err, domainErrors.ErrInvalidSettings), "got %v", err)

	zero := 0.0
	view, err := f.pricingUC.Update(context.Background(), model.SettingsPatch{PricePerPhoto: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.PricePerPhoto)
}
