package guidance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoadSegments(t *testing.T) {
	testCases := []struct {
		name          string
		start, end    string
		intermediates []string
		distanceKm    float64
		want          []string
	}{
		{
			name: "short trip has one generic segment", start: "Kediri", end: "Blitar", distanceKm: 10,
			want: []string{"Jalan Raya Kediri", "Jalan Provinsi Kediri-Blitar", "Jalan Masuk Blitar"},
		},
		{
			name: "90 km gives three generic segments", start: "Kediri", end: "Blitar", distanceKm: 90,
			want: []string{
				"Jalan Raya Kediri",
				"Jalan Provinsi Kediri-Blitar",
				"Jalan Kabupaten 2",
				"Jalan Lintas Kediri-Blitar (Segmen 3)",
				"Jalan Masuk Blitar",
			},
		},
		{
			name: "intermediate cities", start: "Surabaya", end: "Malang", distanceKm: 95,
			intermediates: []string{"Sidoarjo", "Porong", "Pandaan", "Lawang"},
			want: []string{
				"Jalan Raya Surabaya",
				"Jalan Raya Surabaya-Sidoarjo",
				"Jalan Raya Sidoarjo-Porong",
				"Tol Porong-Pandaan",
				"Jalan Raya Pandaan-Lawang",
				"Jalan Masuk Malang",
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateRoadSegments(tt.start, tt.end, tt.intermediates, tt.distanceKm)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumGenericSegments(t *testing.T) {
	testCases := []struct {
		name       string
		distanceKm float64
		want       int
	}{
		{name: "zero", distanceKm: 0, want: 1},
		{name: "negative", distanceKm: -5, want: 1},
		{name: "nan", distanceKm: math.NaN(), want: 1},
		{name: "rounds half up", distanceKm: 45, want: 2},
		{name: "rounds down", distanceKm: 44, want: 1},
		{name: "capped", distanceKm: 1000, want: 10},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumGenericSegments(tt.distanceKm))
		})
	}
}

func TestRewriteTollSegments(t *testing.T) {
	in := []string{"Jalan Ahmad Yani", "Tol Waru-Sidoarjo", "Jalan Raya Malang"}
	got := RewriteTollSegments(in)

	assert.Equal(t, []string{"Jalan Ahmad Yani", "Jalan Alternatif Waru-Sidoarjo", "Jalan Raya Malang"}, got)
	assert.Len(t, got, len(in))
	assert.Equal(t, "Tol Waru-Sidoarjo", in[1], "input is not modified")
}
