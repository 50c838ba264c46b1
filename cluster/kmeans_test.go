package cluster

import (
	"math/rand"
	"testing"
)

func TestKMeansSeparatesObviousClusters(t *testing.T) {
	samples := [][3]float64{
		{0, 0, 0}, {1, 1, 1}, {2, 0, 1},
		{250, 250, 250}, {249, 251, 248}, {252, 250, 249},
	}
	rng := rand.New(rand.NewSource(1))
	res, err := KMeans(samples, 2, 20, 1.0, 10, rng)
	if err != nil {
		t.Fatal(err)
	}
	lowLabel := res.Labels[0]
	highLabel := res.Labels[3]
	if lowLabel == highLabel {
		t.Fatal("expected dark and light samples in different clusters")
	}
	for i := 0; i < 3; i++ {
		if res.Labels[i] != lowLabel {
			t.Fatalf("sample %d not grouped with the dark cluster", i)
		}
	}
	for i := 3; i < 6; i++ {
		if res.Labels[i] != highLabel {
			t.Fatalf("sample %d not grouped with the light cluster", i)
		}
	}
}

func TestKMeansEmptyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := KMeans(nil, 2, 20, 1.0, 10, rng); err == nil {
		t.Fatal("expected an error for empty samples")
	}
}

func TestKMeansKClampedToSampleCount(t *testing.T) {
	samples := [][3]float64{{0, 0, 0}, {10, 10, 10}}
	rng := rand.New(rand.NewSource(1))
	res, err := KMeans(samples, 32, 20, 1.0, 5, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Centers) != 2 {
		t.Fatalf("expected k clamped to 2, got %d centers", len(res.Centers))
	}
}
