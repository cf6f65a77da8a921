package save

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileStartsFresh(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "save.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.CoinsCount != 0 {
		t.Fatalf("expected 0 coins, got %d", s.CoinsCount)
	}
}

func TestAddCoinsPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.AddCoins(5); err != nil {
		t.Fatalf("AddCoins: %v", err)
	}
	if err := s.AddCoins(2); err != nil {
		t.Fatalf("AddCoins: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CoinsCount != 7 {
		t.Fatalf("expected 7 coins after reload, got %d", reloaded.CoinsCount)
	}
}

func TestMemorySaveNeverWrites(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.AddCoins(3); err != nil {
		t.Fatalf("AddCoins: %v", err)
	}
	if s.CoinsCount != 3 {
		t.Fatalf("expected 3 coins, got %d", s.CoinsCount)
	}
}
