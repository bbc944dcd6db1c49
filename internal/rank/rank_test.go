package rank

import (
	"math"
	"testing"
	"time"

	"token-radar/internal/domain"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func token(id string, mcap *float64, age time.Duration, volume float64) domain.TokenRecord {
	created := now.Add(-age)
	return domain.TokenRecord{
		ID:        id,
		MarketCap: mcap,
		CreatedAt: &created,
		Volume24h: volume,
	}
}

func mc(v float64) *float64 { return &v }

func TestCapFilter(t *testing.T) {
	tokens := []domain.TokenRecord{
		token("below", mc(99), time.Hour, 0),
		token("atMin", mc(100), time.Hour, 0),
		token("mid", mc(500), time.Hour, 0),
		token("atMax", mc(1000), time.Hour, 0),
		token("above", mc(1001), time.Hour, 0),
		token("noCap", nil, time.Hour, 0),
	}

	got := CapFilter(tokens, 100, 1000)
	want := []string{"atMin", "mid", "atMax"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestFilteredAscending_StableSort(t *testing.T) {
	tokens := []domain.TokenRecord{
		token("c500a", mc(500), time.Hour, 0),
		token("c200", mc(200), time.Hour, 0),
		token("c500b", mc(500), time.Hour, 0),
		token("c100", mc(100), time.Hour, 0),
	}

	got := FilteredAscending(tokens, 0, 1000)
	want := []string{"c100", "c200", "c500a", "c500b"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	for i := 1; i < len(got); i++ {
		if *got[i].MarketCap < *got[i-1].MarketCap {
			t.Errorf("view not non-decreasing at position %d", i)
		}
	}
}

func TestAvgCap(t *testing.T) {
	tokens := []domain.TokenRecord{
		token("a", mc(100), time.Hour, 0),
		token("b", mc(300), time.Hour, 0),
		token("noCap", nil, time.Hour, 0),
	}

	avg, n := AvgCap(tokens)
	if n != 2 {
		t.Fatalf("expected 2 contributing tokens, got %d", n)
	}
	if math.Abs(avg-200) > 1e-9 {
		t.Errorf("expected average 200, got %v", avg)
	}
}

func TestAvgCap_Empty(t *testing.T) {
	if _, n := AvgCap(nil); n != 0 {
		t.Errorf("expected zero count on empty input, got %d", n)
	}
	if _, n := AvgCap([]domain.TokenRecord{token("noCap", nil, time.Hour, 0)}); n != 0 {
		t.Errorf("expected zero count when no token carries a cap, got %d", n)
	}
}

func TestAvgCapRecent_WindowCutoff(t *testing.T) {
	tokens := []domain.TokenRecord{
		token("fresh", mc(100), time.Hour, 0),
		token("edge", mc(200), 24*time.Hour, 0), // exactly at the cutoff: included
		token("stale", mc(900), 25*time.Hour, 0),
		{ID: "noCreated", MarketCap: mc(900)},
	}

	avg, n := AvgCapRecent(tokens, now)
	if n != 2 {
		t.Fatalf("expected 2 recent tokens, got %d", n)
	}
	if math.Abs(avg-150) > 1e-9 {
		t.Errorf("expected average 150, got %v", avg)
	}
}

func TestTopByCap(t *testing.T) {
	tokens := []domain.TokenRecord{
		token("t1", mc(100), time.Hour, 0),
		token("t2", mc(700), time.Hour, 0),
		token("stale", mc(9999), 48*time.Hour, 0),
		token("t3", mc(300), time.Hour, 0),
		token("t4", mc(500), time.Hour, 0),
		token("t5", mc(400), time.Hour, 0),
		token("t6", mc(200), time.Hour, 0),
		token("noCap", nil, time.Hour, 0),
	}

	got := TopByCap(tokens, now)
	want := []string{"t2", "t4", "t5", "t3", "t6"}
	if len(got) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	for i := 1; i < len(got); i++ {
		if *got[i].MarketCap > *got[i-1].MarketCap {
			t.Errorf("view not non-increasing at position %d", i)
		}
	}
}

func TestTopByCap_TiesKeepOriginalOrder(t *testing.T) {
	tokens := []domain.TokenRecord{
		token("first", mc(500), time.Hour, 0),
		token("second", mc(500), time.Hour, 0),
		token("third", mc(500), time.Hour, 0),
	}

	got := TopByCap(tokens, now)
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestTopByVolume(t *testing.T) {
	tokens := []domain.TokenRecord{
		token("quiet", mc(100), time.Hour, 0), // zero volume: excluded
		token("v300", mc(100), time.Hour, 300),
		token("stale", mc(100), 48*time.Hour, 9999),
		token("v700", mc(100), time.Hour, 700),
		token("capless", nil, time.Hour, 500), // volume view does not need a cap
	}

	got := TopByVolume(tokens, now)
	want := []string{"v700", "capless", "v300"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestTopByVolume_CapsAtFive(t *testing.T) {
	var tokens []domain.TokenRecord
	for i := 0; i < 8; i++ {
		tokens = append(tokens, token(string(rune('a'+i)), mc(1), time.Hour, float64(i+1)))
	}
	if got := TopByVolume(tokens, now); len(got) != 5 {
		t.Errorf("expected 5 tokens, got %d", len(got))
	}
}
