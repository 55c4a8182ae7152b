package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeliveryPicksNextMonday(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "midweek",
			now:  time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC), // Wednesday
			want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "on a monday it skips to the following one",
			now:  time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday",
			now:  time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultDelivery(tc.now)
			assert.Equal(t, tc.want, got.Date)
			assert.Equal(t, time.Monday, got.Date.Weekday())
			assert.Equal(t, DefaultDeliveryHour, got.Time)
		})
	}
}

func TestDeliveryValidate(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	ok := DeliverySelection{Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), Time: "18:00"}
	assert.NoError(t, ok.Validate(now))

	past := DeliverySelection{Date: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), Time: "18:00"}
	assert.Error(t, past.Validate(now))

	badTime := DeliverySelection{Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), Time: "25:99"}
	assert.Error(t, badTime.Validate(now))
}

func TestDeliveryAt(t *testing.T) {
	s := DeliverySelection{Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Time: "19:30"}
	at := s.At()
	assert.Equal(t, 19, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, "2024-06-10", s.DateString())
}

func TestCartItemSnapshot(t *testing.T) {
	d := Dish{DishID: 7, Name: "回锅肉", NameEn: "Twice Cooked Pork", Price: 13.5, Category: CategoryPork}
	item := d.CartItem()

	assert.Equal(t, "7", item.ID)
	assert.Equal(t, "Twice Cooked Pork", item.NameEn)
	assert.False(t, item.IsCustom)

	custom := NewCustomItem("Secret dish")
	require.True(t, custom.IsCustom)
	assert.Equal(t, CategoryCustom, custom.Category)
	assert.Zero(t, custom.Price)
	assert.NotEmpty(t, custom.ID)
	assert.NotEqual(t, NewCustomItem("Secret dish").ID, custom.ID)
}
