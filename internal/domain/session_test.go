package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorio/booking-service/pkg/types"
)

func testSession(t *testing.T) *Session {
	t.Helper()

	startTime, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	return NewSession(
		"sess-1",
		Activity{ID: "act-jetski", Name: "Jet Ski Rental", Currency: "EUR", Price: 50},
		Provider{ID: "pr-blue-lagoon", Name: "Blue Lagoon Watersports"},
		BookingSelection{
			Adults:       2,
			Children:     0,
			Participants: "2 Adults",
			Date:         time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Time:         startTime,
		},
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	)
}

// advanceTo проводит сессию по happy path до указанного шага
func advanceTo(t *testing.T, s *Session, target Step, withPhone bool) {
	t.Helper()

	guest := GuestInfo{FirstName: "Anna", LastName: "Georgiou", Email: "anna@example.com"}
	if withPhone {
		guest.Phone = "+35799123456"
	}

	steps := []func() error{
		func() error { return s.ContinueToGuestInfo() },
		func() error { return s.SubmitGuestInfo(guest) },
		func() error { return s.MarkEmailVerified("123456") },
	}
	if withPhone {
		steps = append(steps, func() error { return s.MarkPhoneVerified("654321") })
	}
	steps = append(steps, func() error {
		return s.Confirm(&BookingRecord{ID: "BK0000000001"}, true)
	})

	for _, step := range steps {
		if s.Step == target {
			return
		}
		require.NoError(t, step())
	}
	require.Equal(t, target, s.Step)
}

func TestNewSession_StartsAtAddOns(t *testing.T) {
	s := testSession(t)

	assert.Equal(t, StepAddOns, s.Step)
	assert.NotNil(t, s.Selection.AddOnQuantities)
	assert.Nil(t, s.Record)
}

func TestSetAddOnQuantity(t *testing.T) {
	s := testSession(t)

	require.NoError(t, s.SetAddOnQuantity("addon-photos", 2))
	assert.Equal(t, 2, s.Selection.AddOnQuantities["addon-photos"])

	// Отрицательное значение обрезается до нуля
	require.NoError(t, s.SetAddOnQuantity("addon-photos", -5))
	assert.Equal(t, 0, s.Selection.AddOnQuantities["addon-photos"])
}

func TestAdjustAddOnQuantity(t *testing.T) {
	s := testSession(t)

	require.NoError(t, s.AdjustAddOnQuantity("addon-gopro", 1))
	require.NoError(t, s.AdjustAddOnQuantity("addon-gopro", 1))
	assert.Equal(t, 2, s.Selection.AddOnQuantities["addon-gopro"])

	require.NoError(t, s.AdjustAddOnQuantity("addon-gopro", -1))
	assert.Equal(t, 1, s.Selection.AddOnQuantities["addon-gopro"])

	// Счётчик не уходит ниже нуля
	require.NoError(t, s.AdjustAddOnQuantity("addon-gopro", -5))
	assert.Equal(t, 0, s.Selection.AddOnQuantities["addon-gopro"])
}

func TestAddOnMutations_WrongStep(t *testing.T) {
	s := testSession(t)
	require.NoError(t, s.ContinueToGuestInfo())

	assert.ErrorIs(t, s.SetAddOnQuantity("addon-photos", 1), ErrWrongStep)
	assert.ErrorIs(t, s.AdjustAddOnQuantity("addon-photos", 1), ErrWrongStep)
}

func TestHappyPath_WithPhone(t *testing.T) {
	s := testSession(t)

	require.NoError(t, s.ContinueToGuestInfo())
	assert.Equal(t, StepGuestInfo, s.Step)

	guest := GuestInfo{FirstName: "Anna", LastName: "Georgiou", Email: "anna@example.com", Phone: "+35799123456"}
	require.NoError(t, s.SubmitGuestInfo(guest))
	assert.Equal(t, StepEmailVerification, s.Step)

	require.NoError(t, s.MarkEmailVerified("123456"))
	assert.Equal(t, StepPhoneVerification, s.Step)
	assert.True(t, s.Verification.EmailVerified)

	require.NoError(t, s.MarkPhoneVerified("654321"))
	assert.Equal(t, StepPayment, s.Step)
	assert.True(t, s.Verification.PhoneVerified)

	record := &BookingRecord{ID: "BK0000000001"}
	require.NoError(t, s.Confirm(record, true))
	assert.Equal(t, StepConfirmed, s.Step)
	assert.True(t, s.TermsAccepted)
	assert.Equal(t, record, s.Record)
}

func TestHappyPath_WithoutPhone_SkipsPhoneVerification(t *testing.T) {
	s := testSession(t)

	require.NoError(t, s.ContinueToGuestInfo())
	require.NoError(t, s.SubmitGuestInfo(GuestInfo{
		FirstName: "Anna", LastName: "Georgiou", Email: "anna@example.com",
	}))
	require.NoError(t, s.MarkEmailVerified("123456"))

	// Телефон не указан: шаг верификации телефона пропускается
	assert.Equal(t, StepPayment, s.Step)
	assert.False(t, s.Verification.PhoneVerified)
}

func TestSubmitGuestInfo_Invalid(t *testing.T) {
	s := testSession(t)
	require.NoError(t, s.ContinueToGuestInfo())

	tests := []struct {
		name  string
		guest GuestInfo
	}{
		{"missing first name", GuestInfo{LastName: "Georgiou", Email: "anna@example.com"}},
		{"missing last name", GuestInfo{FirstName: "Anna", Email: "anna@example.com"}},
		{"missing email", GuestInfo{FirstName: "Anna", LastName: "Georgiou"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.SubmitGuestInfo(tt.guest), ErrInvalidGuestInfo)
			assert.Equal(t, StepGuestInfo, s.Step)
		})
	}
}

func TestConfirm_RequiresTerms(t *testing.T) {
	s := testSession(t)
	advanceTo(t, s, StepPayment, false)

	err := s.Confirm(&BookingRecord{ID: "BK0000000001"}, false)
	assert.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.Equal(t, StepPayment, s.Step)
	assert.Nil(t, s.Record)
}

func TestPreviousStep_Table(t *testing.T) {
	tests := []struct {
		step      Step
		withPhone bool
		want      Step
		wantErr   error
	}{
		{StepAddOns, false, "", ErrNoPreviousStep},
		{StepGuestInfo, false, StepAddOns, nil},
		{StepEmailVerification, false, StepGuestInfo, nil},
		{StepPhoneVerification, true, StepEmailVerification, nil},
		{StepPayment, false, StepEmailVerification, nil},
		{StepPayment, true, StepPhoneVerification, nil},
		{StepConfirmed, false, "", ErrSessionConfirmed},
	}

	for _, tt := range tests {
		t.Run(string(tt.step), func(t *testing.T) {
			s := testSession(t)
			advanceTo(t, s, tt.step, tt.withPhone)
			require.Equal(t, tt.step, s.Step)

			prev, err := s.PreviousStep()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, prev)
		})
	}
}

func TestBack_PreservesState(t *testing.T) {
	s := testSession(t)
	require.NoError(t, s.SetAddOnQuantity("addon-photos", 2))
	advanceTo(t, s, StepEmailVerification, false)

	require.NoError(t, s.Back())
	assert.Equal(t, StepGuestInfo, s.Step)

	// Данные гостя и выбор add-on'ов не теряются при возврате
	assert.Equal(t, "Anna", s.Guest.FirstName)
	assert.Equal(t, 2, s.Selection.AddOnQuantities["addon-photos"])

	// Повторный forward возвращает сессию в эквивалентное состояние
	require.NoError(t, s.SubmitGuestInfo(s.Guest))
	assert.Equal(t, StepEmailVerification, s.Step)
}

func TestBack_FromFirstStep(t *testing.T) {
	s := testSession(t)
	assert.ErrorIs(t, s.Back(), ErrNoPreviousStep)
}

func TestConfirmedSession_IsTerminal(t *testing.T) {
	s := testSession(t)
	advanceTo(t, s, StepConfirmed, true)

	assert.ErrorIs(t, s.SetAddOnQuantity("addon-photos", 1), ErrSessionConfirmed)
	assert.ErrorIs(t, s.ContinueToGuestInfo(), ErrSessionConfirmed)
	assert.ErrorIs(t, s.SubmitGuestInfo(s.Guest), ErrSessionConfirmed)
	assert.ErrorIs(t, s.MarkEmailVerified("123456"), ErrSessionConfirmed)
	assert.ErrorIs(t, s.MarkPhoneVerified("654321"), ErrSessionConfirmed)
	assert.ErrorIs(t, s.Confirm(&BookingRecord{}, true), ErrSessionConfirmed)
	assert.ErrorIs(t, s.Back(), ErrSessionConfirmed)
}

func TestCanBuildRecord(t *testing.T) {
	s := testSession(t)
	assert.False(t, s.CanBuildRecord())

	advanceTo(t, s, StepPayment, true)
	assert.True(t, s.CanBuildRecord())

	// Неподтверждённый телефон при указанном номере блокирует сборку
	s.Verification.PhoneVerified = false
	assert.False(t, s.CanBuildRecord())
}
