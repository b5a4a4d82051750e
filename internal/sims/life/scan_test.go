package life

import "testing"

func TestRunSoupDiesOutWithoutSurvival(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = "B/S"
	cfg.SoupRadius = 3
	cfg.SoupDensity = 1
	res := RunSoup(cfg, 9, 50)
	if res.InitialActive != 49 {
		t.Fatalf("expected a full 7x7 soup, got %d", res.InitialActive)
	}
	if res.FinalActive != 0 || res.SettledAt != 2 {
		t.Fatalf("expected extinction settling at epoch 2, got %+v", res)
	}
	// Both epochs examine the 9x9 ring of blocks around the soup.
	if res.Examined != 2*81 {
		t.Fatalf("expected 162 examined cells, got %d", res.Examined)
	}
	if res.Rule != "B/S" {
		t.Fatalf("expected canonical rule name, got %q", res.Rule)
	}
}

func TestRunSoupEmptySettlesImmediately(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SoupDensity = 0
	res := RunSoup(cfg, 1, 10)
	if res.Steps != 1 || res.SettledAt != 1 || res.Examined != 0 {
		t.Fatalf("expected an empty plane to settle at once, got %+v", res)
	}
	if res.Efficiency(100) != 0 {
		t.Fatalf("expected zero work, got %f", res.Efficiency(100))
	}
}

func TestRunSoupFreezesWithoutBirths(t *testing.T) {
	// B/S012345678 keeps everything alive and births nothing.
	cfg := DefaultConfig()
	cfg.Rule = "B/S012345678"
	cfg.SoupRadius = 1
	cfg.SoupDensity = 1
	res := RunSoup(cfg, 3, 5)
	if res.SettledAt != 1 || res.FinalActive != 9 {
		t.Fatalf("expected the 3x3 soup to freeze at once, got %+v", res)
	}
	if res.Examined != 25 {
		t.Fatalf("expected the 5x5 frontier to be examined, got %d", res.Examined)
	}
	if got := res.Efficiency(9); got != 25.0/9 {
		t.Fatalf("expected efficiency %f, got %f", 25.0/9, got)
	}
}

func TestRunSoupIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SoupRadius = 12
	a := RunSoup(cfg, 77, 60)
	b := RunSoup(cfg, 77, 60)
	if a != b {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
}
