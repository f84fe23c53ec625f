package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRecentAttempts(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, millis := range []int{253, 400, 198} {
		if _, err := store.SaveAttempt("alice", millis); err != nil {
			t.Fatalf("SaveAttempt() failed: %v", err)
		}
	}
	if _, err := store.SaveAttempt("bob", 310); err != nil {
		t.Fatalf("SaveAttempt() failed: %v", err)
	}

	attempts, err := store.RecentAttempts("alice", 10)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("Expected 3 attempts for alice, got %d", len(attempts))
	}

	// Newest first
	if attempts[0].Millis != 198 {
		t.Errorf("Expected newest attempt 198ms first, got %d", attempts[0].Millis)
	}

	bobAttempts, err := store.RecentAttempts("bob", 10)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(bobAttempts) != 1 {
		t.Errorf("Expected 1 attempt for bob, got %d", len(bobAttempts))
	}
}

func TestRecentAttemptsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 8; i++ {
		store.SaveAttempt("alice", 200+i)
	}

	attempts, err := store.RecentAttempts("alice", 3)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(attempts) != 3 {
		t.Errorf("Expected 3 attempts with limit, got %d", len(attempts))
	}
}

func TestStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No attempts yet
	stats, err := store.Stats("alice")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Attempts != 0 || stats.BestMillis != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveAttempt("alice", 300)
	store.SaveAttempt("alice", 200)
	store.SaveAttempt("alice", 400)

	stats, err = store.Stats("alice")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", stats.Attempts)
	}
	if stats.BestMillis != 200 {
		t.Errorf("Expected best 200ms, got %d", stats.BestMillis)
	}
	if stats.AvgMillis != 300 {
		t.Errorf("Expected average 300ms, got %v", stats.AvgMillis)
	}
}

func TestAllStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveAttempt("alice", 250)
	store.SaveAttempt("alice", 220)
	store.SaveAttempt("bob", 310)

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 players, got %d", len(all))
	}
	if all["alice"].BestMillis != 220 {
		t.Errorf("Expected alice best 220ms, got %d", all["alice"].BestMillis)
	}
	if all["bob"].Attempts != 1 {
		t.Errorf("Expected 1 attempt for bob, got %d", all["bob"].Attempts)
	}
}

func TestClearAttempts(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveAttempt("alice", 250)
	store.SaveAttempt("bob", 310)

	if err := store.ClearAttempts("alice"); err != nil {
		t.Fatalf("ClearAttempts() failed: %v", err)
	}

	aliceAttempts, _ := store.RecentAttempts("alice", 10)
	if len(aliceAttempts) != 0 {
		t.Errorf("Expected 0 attempts for alice after clear, got %d", len(aliceAttempts))
	}

	bobAttempts, _ := store.RecentAttempts("bob", 10)
	if len(bobAttempts) != 1 {
		t.Error("Clearing alice should not affect bob")
	}
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
