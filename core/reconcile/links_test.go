package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParcelURL(t *testing.T) {
	url := ParcelURL("638981240146803746", "1234567")
	assert.Contains(t, url, "txtMaskedPin=1234567")
	assert.Contains(t, url, "PinValue=1234567")
	assert.Contains(t, url, "windowId=638981240146803746")

	assert.Empty(t, ParcelURL("", "1234567"))
	assert.Empty(t, ParcelURL("638981240146803746", ""))
	assert.Empty(t, ParcelURL("  ", "1234567"))
}

func TestZillowURL(t *testing.T) {
	tests := []struct {
		name               string
		address, city, zip string
		want               string
	}{
		{
			name:    "Simple address",
			address: "123 Main St", city: "Canton", zip: "44702",
			want: "https://www.zillow.com/homes/123-Main-St-Canton-OH-44702_rb/",
		},
		{
			name:    "Unit suffix stripped",
			address: "123 Main St Apt 4B", city: "Canton", zip: "44702",
			want: "https://www.zillow.com/homes/123-Main-St-Canton-OH-44702_rb/",
		},
		{
			name:    "Punctuation stripped and spaces hyphenated",
			address: "45 St. Clair Ave.", city: "North Canton", zip: "44720",
			want: "https://www.zillow.com/homes/45-St-Clair-Ave-North-Canton-OH-44720_rb/",
		},
		{
			name:    "Zip+4 truncated",
			address: "1 Oak Dr", city: "Alliance", zip: "44601-1234",
			want: "https://www.zillow.com/homes/1-Oak-Dr-Alliance-OH-44601_rb/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ZillowURL(tt.address, tt.city, tt.zip))
		})
	}
}

func TestZillowURL_MissingComponents(t *testing.T) {
	assert.Empty(t, ZillowURL("", "Canton", "44702"))
	assert.Empty(t, ZillowURL("123 Main St", "", "44702"))
	assert.Empty(t, ZillowURL("123 Main St", "Canton", ""))
	assert.Empty(t, ZillowURL("  ", "Canton", "44702"))
}
